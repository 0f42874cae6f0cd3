package octpoly

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// wireVertex and wireFace are the gob wire representation of a polygon.
// gob is used rather than a cross-language format because nothing
// outside this module's own future versions needs to read this data:
// gob is explicitly a Go-to-Go format with no promise of long-term wire
// stability, which matches how this module's own serialisation
// contract is scoped.
type wireVertex struct {
	X, Y, Z  float64
	EdgeFlag bool
}

type wireFace struct {
	Vertices []wireVertex
	Sign     int
}

type wirePolygon struct {
	Sides [8][]wireFace
	Rule  int
}

// Serialize encodes the polygon's per-face contour lists in gob format.
// The cached fill/outline are not serialised: they are cheap to rebuild
// and tying the wire format to their shape would make it brittle across
// versions of the tessellator.
func (p *OctahedronPolygon) Serialize() ([]byte, error) {
	var wp wirePolygon
	wp.Rule = int(p.rule)
	for s := 0; s < 8; s++ {
		for _, sc := range p.sides[s] {
			wf := wireFace{Sign: sc.sign, Vertices: make([]wireVertex, len(sc.contour))}
			for i, ev := range sc.contour {
				wf.Vertices[i] = wireVertex{X: ev.Vertex.X, Y: ev.Vertex.Y, Z: ev.Vertex.Z, EdgeFlag: ev.EdgeFlag}
			}
			wp.Sides[s] = append(wp.Sides[s], wf)
		}
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&wp); err != nil {
		return nil, errors.Wrap(err, "encoding polygon")
	}
	return buf.Bytes(), nil
}

// Deserialize decodes a polygon previously written by Serialize.
func Deserialize(data []byte) (*OctahedronPolygon, error) {
	var wp wirePolygon
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&wp); err != nil {
		return nil, errors.Wrap(err, "decoding polygon")
	}
	p := New()
	p.rule = windingRule(wp.Rule)
	for s := 0; s < 8; s++ {
		for _, wf := range wp.Sides[s] {
			c := make(SubContour, len(wf.Vertices))
			for i, wv := range wf.Vertices {
				c[i] = EdgeVertex{Vertex: Vec3{X: wv.X, Y: wv.Y, Z: wv.Z}, EdgeFlag: wv.EdgeFlag}
			}
			p.sides[s] = append(p.sides[s], signedContour{contour: c, sign: wf.Sign})
		}
	}
	return p, nil
}

// vertexTriple renders one vertex as the raw JSON array
// "[ra_deg,dec_deg,edgeFlag]", RA/Dec to 12 significant digits.
func vertexTriple(ev EdgeVertex) json.RawMessage {
	ra, dec := rectToSphere(ev.Vertex)
	return json.RawMessage(fmt.Sprintf("[%s,%s,%t]",
		strconv.FormatFloat(ra*180/math.Pi, 'g', 12, 64),
		strconv.FormatFloat(dec*180/math.Pi, 'g', 12, 64),
		ev.EdgeFlag))
}

// subContourJSON renders a sub-contour as the raw JSON array of its
// vertex triples.
func subContourJSON(c SubContour) json.RawMessage {
	var b strings.Builder
	b.WriteByte('[')
	for i, ev := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.Write(vertexTriple(ev))
	}
	b.WriteByte(']')
	return json.RawMessage(b.String())
}

// DebugJSON renders the polygon as the fixed 8-slot
// "[ [face0_subs], ..., [face7_subs] ]" structure: index i is face i's
// list of sub-contours, each sub-contour a list of
// "[ra_deg,dec_deg,edgeFlag]" triples. This is a diagnostic format, not
// meant for interoperability with other tools; it is not the same
// thing Serialize/Deserialize round-trip.
func (p *OctahedronPolygon) DebugJSON() (string, error) {
	var faces [8][]json.RawMessage
	for s := 0; s < 8; s++ {
		faces[s] = make([]json.RawMessage, 0, len(p.sides[s]))
		for _, sc := range p.sides[s] {
			faces[s] = append(faces[s], subContourJSON(sc.contour))
		}
	}
	b, err := json.MarshalIndent(&faces, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "marshalling debug json")
	}
	return string(b), nil
}
