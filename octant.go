package octpoly

// sideOf classifies a unit vector into one of the 8 octahedron faces
// using the same >=0 convention as side() in plane.go, so that splitting
// a ring by Y then X then Z and numbering the resulting quadrant by
// side(Y)*4 + side(X)*2 + side(Z) lands each piece in the face its
// vertices actually belong to.
func sideOf(v Vec3) int {
	return side(v, axisY)*4 + side(v, axisX)*2 + side(v, axisZ)
}

// projectOnFace maps a unit vector already known to lie in the given
// octant onto that face's plane sx*x+sy*y+sz*z=1 (sideDirections[side]
// supplies the signs), then returns the (x,y) coordinates of the
// projected point, dropping z: since sz is always +-1, z is always
// recoverable from (x,y), so (x,y) is a faithful 2D chart for the face
// and can be handed to the planar tessellator unchanged.
func projectOnFace(side int, v Vec3) (x, y float64) {
	d := sideDirections[side]
	scale := 1 / v.Dot(d)
	p := v.Mul(scale)
	return p.X, p.Y
}

// unprojectFromFace is the inverse of projectOnFace: given 2D face
// coordinates, it reconstructs the point on the octahedron face and
// radially projects it back onto the unit sphere.
func unprojectFromFace(side int, x, y float64) Vec3 {
	d := sideDirections[side]
	z := (1 - d.X*x - d.Y*y) / d.Z
	return Vec3{X: x, Y: y, Z: z}.Normalize()
}
