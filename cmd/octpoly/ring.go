package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/skyregion/octpoly"
)

// readRing reads a ring file: one "ra_deg dec_deg" pair per line,
// blank lines and lines starting with "#" ignored, and returns the
// polygon it traces.
func readRing(path string) (*octpoly.OctahedronPolygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	var points []octpoly.Vec3
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, errors.Errorf("%s:%d: expected \"ra dec\", got %q", path, lineNo, line)
		}
		ra, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad ra", path, lineNo)
		}
		dec, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad dec", path, lineNo)
		}
		points = append(points, octpoly.PointFromRADec(ra, dec))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(points) < 3 {
		return nil, errors.Errorf("%s: need at least 3 points, got %d", path, len(points))
	}
	return octpoly.FromRing(points), nil
}

func writePolygon(path string, p *octpoly.OctahedronPolygon) error {
	data, err := p.Serialize()
	if err != nil {
		return errors.Wrap(err, "serializing polygon")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "writing %s", path)
}

func readPolygon(path string) (*octpoly.OctahedronPolygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	p, err := octpoly.Deserialize(data)
	return p, errors.Wrapf(err, "deserializing %s", path)
}

func fmtSteradians(area float64) string {
	return fmt.Sprintf("%.10g sr", area)
}
