package polytope

import (
	"math"

	"github.com/katalvlaran/polytope/vector"
)

// DefaultEpsilon is the tolerance used by Circumcenter and
// Circumradius to decide whether a point extends the affine span and
// whether distances agree.
const DefaultEpsilon = 1e-9

// Circumcenter returns the point equidistant from all vertices within
// DefaultEpsilon, or ok=false when no such point exists. A polytope
// with a single vertex is its own circumcenter; one with no vertices
// has none.
func (p *Polytope) Circumcenter() (vector.Vector, bool) {
	return CircumcenterOf(p.verts, DefaultEpsilon)
}

// Circumradius returns the common distance from the circumcenter to
// the vertices, or ErrNoCircumcenter when Circumcenter reports none.
func (p *Polytope) Circumradius() (float64, error) {
	c, ok := p.Circumcenter()
	if !ok {
		return 0, ErrNoCircumcenter
	}
	return c.Distance(p.verts[0]), nil
}

// CircumcenterOf computes the circumcenter of an arbitrary point set
// by incremental Gram–Schmidt: each point either extends the affine
// span (the center moves along the new orthogonal direction to regain
// equidistance) or must already be equidistant within eps.
//
// Complexity: O(n·k·d) for n points spanning k dimensions in d-space.
func CircumcenterOf(points []vector.Vector, eps float64) (vector.Vector, bool) {
	if len(points) == 0 {
		return nil, false
	}
	origin := points[0]
	center := vector.New(origin.Dim()) // relative to origin
	var basis []vector.Vector
	for _, pt := range points[1:] {
		q := pt.Clone().Sub(origin)
		r := q.Clone()
		for _, b := range basis {
			r.Sub(r.Project(b))
		}
		if r.Magnitude() > eps {
			// q leaves the current span: slide the center along r
			// until it is as far from q as from the origin.
			k := (center.SqDistance(q) - center.SqMagnitude()) / (2 * q.Dot(r))
			center.AddScaled(k, r)
			basis = append(basis, r)
			continue
		}
		if math.Abs(center.Distance(q)-center.Magnitude()) > eps {
			return nil, false
		}
	}
	return center.Add(origin), true
}
