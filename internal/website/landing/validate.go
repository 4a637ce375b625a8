package landing

import (
	"fmt"

	"github.com/jhrdina/pocketmesh-site/internal/website"
)

// Problem describes a block whose contents do not fill its layout.
type Problem struct {
	Index   int
	Layout  website.Layout
	Count   int
	Message string
}

func (p Problem) String() string {
	return p.Message
}

// Validate reports blocks with a column layout whose content count is not a
// multiple of the column count. Rendering does not depend on it; callers
// decide whether a problem is worth more than a warning.
func Validate(blocks []website.Block) []Problem {
	var problems []Problem
	for i, b := range blocks {
		cols := b.Layout.Columns()
		if cols == 1 {
			continue
		}
		if n := len(b.Contents); n == 0 || n%cols != 0 {
			problems = append(problems, Problem{
				Index:   i,
				Layout:  b.Layout,
				Count:   n,
				Message: fmt.Sprintf("block %d: layout %s expects a multiple of %d contents, got %d", i, b.Layout, cols, n),
			})
		}
	}
	return problems
}
