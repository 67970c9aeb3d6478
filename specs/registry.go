// Package specs contains the spec files bundled with the oneproof runner. Each one exercises a
// different dialect, and together they show that the dialects share a single engine.
package specs

import (
	"github.com/oneproof4all/oneproof/dialect"
	"github.com/oneproof4all/oneproof/framework"
)

// File is a named spec file. Run registers and runs its groups against the engine; the host
// resets the engine before each file.
type File struct {
	Name string
	Run  func(d dialect.All)
}

// All returns the bundled spec files in run order.
func All() []File {
	return []File{
		{Name: "sanity.spec", Run: SanitySpec},
		{Name: "math.spec", Run: MathSpec},
		{Name: "narrative.spec", Run: NarrativeSpec},
		{Name: "imperative.spec", Run: ImperativeSpec},
		{Name: "classic.spec", Run: ClassicSpec},
		{Name: "shopping-cart.spec", Run: ShoppingCartSpec},
	}
}

// RunFile runs one spec file on e with all dialects bound to it.
func RunFile(e *framework.Engine, f File) {
	f.Run(dialect.New(e))
}
