package pair

// Adder adds to a base value.
type Adder struct {
	base int
}

// NewAdder creates an adder.
//
//sure:fixture [1]
func NewAdder(base int) *Adder {
	return &Adder{base: base}
}

// Add adds value to the base.
//
//sure:scenario description="add2" args=[2] expect=3
func (a *Adder) Add(value int) int {
	return a.base + value
}
