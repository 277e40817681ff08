package polytope

import "github.com/katalvlaran/polytope/vector"

// Scale multiplies every vertex by r in place. Scaling by r1 then r2
// equals scaling once by r1·r2.
func (p *Polytope) Scale(r float64) {
	for _, v := range p.verts {
		v.Scale(r)
	}
}

// Move translates every vertex by mult·v in place. The offset's
// dimension must match the ambient space; a mismatch panics.
func (p *Polytope) Move(v vector.Vector, mult float64) {
	for _, w := range p.verts {
		w.AddScaled(mult, v)
	}
}

// Gravicenter returns the arithmetic mean of the vertices, or
// ErrNoVertices when there are none.
func (p *Polytope) Gravicenter() (vector.Vector, error) {
	if len(p.verts) == 0 {
		return nil, ErrNoVertices
	}
	c := vector.New(p.spaceDim)
	for _, v := range p.verts {
		c.Add(v)
	}
	c.Scale(1 / float64(len(p.verts)))
	return c, nil
}
