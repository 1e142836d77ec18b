package iconic

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Transform is a 2D affine operation that can occupy an element's render
// transform slot or be a child of a TransformGroup.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
type Transform interface {
	Matrix() [6]float64
}

// Rotate rotates by Angle degrees, clockwise on screen (Y points down).
type Rotate struct {
	Angle float64
}

// Matrix implements Transform.
func (r *Rotate) Matrix() [6]float64 {
	sin, cos := math.Sincos(r.Angle * math.Pi / 180)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// Scale scales by ScaleX and ScaleY. Negative factors mirror the axis.
type Scale struct {
	ScaleX, ScaleY float64
}

// Matrix implements Transform.
func (s *Scale) Matrix() [6]float64 {
	return [6]float64{s.ScaleX, 0, 0, s.ScaleY, 0, 0}
}

// Translate offsets by X and Y.
type Translate struct {
	X, Y float64
}

// Matrix implements Transform.
func (t *Translate) Matrix() [6]float64 {
	return [6]float64{1, 0, 0, 1, t.X, t.Y}
}

// TransformGroup is an ordered list of transforms applied first to last.
// Components are mutated in place and never reordered.
type TransformGroup struct {
	children []Transform
}

// NewTransformGroup creates a group holding the given children in order.
func NewTransformGroup(children ...Transform) *TransformGroup {
	g := &TransformGroup{}
	for _, c := range children {
		g.Add(c)
	}
	return g
}

// Add appends t to the end of the group.
// Panics if t is nil.
func (g *TransformGroup) Add(t Transform) {
	if t == nil {
		panic("iconic: cannot add nil transform")
	}
	g.children = append(g.children, t)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (g *TransformGroup) Children() []Transform {
	return g.children
}

// Len returns the number of children.
func (g *TransformGroup) Len() int {
	return len(g.children)
}

// Rotation returns the first Rotate child, or nil.
func (g *TransformGroup) Rotation() *Rotate {
	r, _ := findComponent[*Rotate](g)
	return r
}

// Scale returns the first Scale child, or nil.
func (g *TransformGroup) Scale() *Scale {
	s, _ := findComponent[*Scale](g)
	return s
}

// Matrix implements Transform by composing children in list order.
func (g *TransformGroup) Matrix() [6]float64 {
	m := identityTransform
	for _, c := range g.children {
		m = multiplyAffine(c.Matrix(), m)
	}
	return m
}

// findComponent returns the first child whose dynamic type is C.
func findComponent[C Transform](g *TransformGroup) (C, bool) {
	for _, t := range g.children {
		if c, ok := t.(C); ok {
			return c, true
		}
	}
	var zero C
	return zero, false
}

// findOrAddComponent returns the first child of type C, appending the result
// of create when none exists.
func findOrAddComponent[C Transform](g *TransformGroup, create func() C) C {
	if c, ok := findComponent[C](g); ok {
		return c
	}
	c := create()
	g.Add(c)
	return c
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// computeWorldTransform computes the element's matrix in scene space:
//
//	Translate(-origin) -> RenderTransform -> Translate(origin) -> Translate(X, Y)
//
// where origin is RenderTransformOrigin scaled by the element's size.
func computeWorldTransform(e *Element) [6]float64 {
	if e.renderTransform == nil {
		return [6]float64{1, 0, 0, 1, e.X, e.Y}
	}
	ox := e.renderTransformOrigin.X * e.Width
	oy := e.renderTransformOrigin.Y * e.Height
	m := [6]float64{1, 0, 0, 1, -ox, -oy}
	m = multiplyAffine(e.renderTransform.Matrix(), m)
	m[4] += ox + e.X
	m[5] += oy + e.Y
	return m
}

// --- Coordinate conversion ---

// WorldTransform returns the element's current scene-space matrix.
func (e *Element) WorldTransform() [6]float64 {
	return computeWorldTransform(e)
}

// GeoM returns the element's scene-space matrix as an ebiten.GeoM.
func (e *Element) GeoM() ebiten.GeoM {
	return geoM(computeWorldTransform(e))
}

// WorldToLocal converts a scene-space point to this element's local coordinate space.
func (e *Element) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(computeWorldTransform(e))
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to scene space.
func (e *Element) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(computeWorldTransform(e), lx, ly)
}
