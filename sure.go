// Package sure holds the user-facing half of the contract verifier: the
// phantom return type used to attach scenarios through the type system, and
// the Registry that hands live constructors to the execution engine.
//
// # Comment directives
//
// Scenarios and fixtures can be written as directive lines in a doc comment:
//
//	// NewCalculator creates a calculator with a base value.
//	//
//	//sure:fixture [10]
//	//sure:fixture base5 [5]
//	func NewCalculator(base int) *Calculator
//
//	// Add adds value to the base.
//	//
//	//sure:scenario description="add5" args=[5] expect=15
//	func (c *Calculator) Add(value int) int
//
// # Type-encoded metadata
//
// The same metadata can be carried by the return type, using Typed as a
// transparent wrapper. The second type argument is a struct literal whose
// fields are decoded structurally; a struct made only of blank fields is a
// tuple, and a field tagged `sure:"..."` holds a literal:
//
//	func (c *Calculator) Multiply(value int) sure.Typed[int, struct {
//		Scenarios struct {
//			_ struct {
//				Description sure.Lit `sure:"multiply3"`
//				Args        sure.Lit `sure:"[3]"`
//				Expect      sure.Lit `sure:"15"`
//				Instance    sure.Lit `sure:"base5"`
//			}
//		}
//	}]
//
// Constructors are decoded from comments only.
package sure

// Typed is T. The metadata parameter M has no runtime representation and is
// only read from source.
type Typed[T, M any] = T

// Lit is the conventional field type for tagged literal leaves inside the
// metadata struct of Typed.
type Lit struct{}
