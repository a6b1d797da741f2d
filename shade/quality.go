// Package shade implements the recursive shading engine: given a closest
// intersection from the bvh package, it evaluates pigment, direct
// lighting, reflection, and transmission to produce a final pixel color.
package shade

// Quality is a bitmask of which shading passes run, letting a caller
// trade fidelity for speed (e.g. a pigment-only preview pass).
type Quality uint

const (
	QPigment Quality = 1 << iota
	QLights
	QFinish
	QReflection
	QTransparency
)

// QAll enables every pass — a full-quality render.
const QAll = QPigment | QLights | QFinish | QReflection | QTransparency

func (q Quality) Has(flag Quality) bool { return q&flag != 0 }
