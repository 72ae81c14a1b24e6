// Package tile converts between geographic coordinates and XYZ tile
// indexes on the standard web-mercator grid.
package tile

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MaxLatitude is the web-mercator projection limit.
const MaxLatitude = 85.05112878

// refPattern matches tile references of the form "z/x/y"
var refPattern = regexp.MustCompile(`^(\d+)/(\d+)/(\d+)$`)

// Ref identifies one tile on the XYZ grid.
type Ref struct {
	Z int
	X int
	Y int
}

// Parse extracts a tile reference from a "z/x/y" string like "13/7312/3008".
func Parse(s string) (Ref, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Ref{}, fmt.Errorf("tile reference cannot be empty")
	}

	matches := refPattern.FindStringSubmatch(raw)
	if matches == nil {
		return Ref{}, fmt.Errorf("invalid tile reference %q: expected z/x/y", raw)
	}

	z, err := strconv.Atoi(matches[1])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid zoom: %w", err)
	}
	x, err := strconv.Atoi(matches[2])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid x: %w", err)
	}
	y, err := strconv.Atoi(matches[3])
	if err != nil {
		return Ref{}, fmt.Errorf("invalid y: %w", err)
	}

	ref := Ref{Z: z, X: x, Y: y}
	if err := ref.Validate(); err != nil {
		return Ref{}, err
	}
	return ref, nil
}

// Validate checks that the indexes fit the grid at zoom Z.
func (r Ref) Validate() error {
	if r.Z < 0 || r.Z > 24 {
		return fmt.Errorf("zoom %d out of range 0-24", r.Z)
	}
	n := 1 << r.Z
	if r.X < 0 || r.X >= n {
		return fmt.Errorf("x %d out of range 0-%d at zoom %d", r.X, n-1, r.Z)
	}
	if r.Y < 0 || r.Y >= n {
		return fmt.Errorf("y %d out of range 0-%d at zoom %d", r.Y, n-1, r.Z)
	}
	return nil
}

// String renders the "z/x/y" form.
func (r Ref) String() string {
	return fmt.Sprintf("%d/%d/%d", r.Z, r.X, r.Y)
}

// FromLatLon returns the tile containing the coordinate at zoom z.
func FromLatLon(lat, lon float64, z int) (Ref, error) {
	if z < 0 || z > 24 {
		return Ref{}, fmt.Errorf("zoom %d out of range 0-24", z)
	}
	if math.Abs(lat) > MaxLatitude {
		return Ref{}, fmt.Errorf("latitude %g out of web-mercator range ±%g", lat, MaxLatitude)
	}
	if math.Abs(lon) > 180 {
		return Ref{}, fmt.Errorf("longitude %g out of range ±180", lon)
	}

	n := float64(int(1) << z)
	x := int(math.Floor((lon + 180) / 360 * n))
	rad := lat * math.Pi / 180
	y := int(math.Floor((1 - math.Log(math.Tan(rad)+1/math.Cos(rad))/math.Pi) / 2 * n))

	// The antimeridian and the projection limit land exactly on the grid edge.
	max := int(n) - 1
	if x > max {
		x = max
	}
	if y > max {
		y = max
	}
	return Ref{Z: z, X: x, Y: y}, nil
}

// LatLon returns the north-west corner of the tile.
func (r Ref) LatLon() (lat, lon float64) {
	n := float64(int(1) << r.Z)
	lon = float64(r.X)/n*360 - 180
	lat = math.Atan(math.Sinh(math.Pi*(1-2*float64(r.Y)/n))) * 180 / math.Pi
	return lat, lon
}

// Range is an inclusive run of tile indexes along one axis.
type Range struct {
	Lo int
	Hi int
}

// ParseRange parses "7270:7273" or a single index "7270".
func ParseRange(s string) (Range, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Range{}, fmt.Errorf("tile range cannot be empty")
	}

	lo, hi, found := strings.Cut(raw, ":")
	if !found {
		hi = lo
	}

	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil || low < 0 {
		return Range{}, fmt.Errorf("invalid tile range %q", raw)
	}
	high, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil || high < 0 {
		return Range{}, fmt.Errorf("invalid tile range %q", raw)
	}
	if high < low {
		return Range{}, fmt.Errorf("tile range %q is inverted", raw)
	}
	return Range{Lo: low, Hi: high}, nil
}

// Count returns the number of indexes in the range.
func (r Range) Count() int {
	return r.Hi - r.Lo + 1
}

// Values expands the range into individual indexes.
func (r Range) Values() []int {
	out := make([]int, 0, r.Count())
	for i := r.Lo; i <= r.Hi; i++ {
		out = append(out, i)
	}
	return out
}
