package mapcolor

import (
	"context"

	"github.com/go-arc/arco/pkg/arco"
	"github.com/go-arc/arco/pkg/arco/input"
)

// Regions are the Australian states and territories, in the order the
// solver considers them.
var Regions = []arco.Identifier{"WA", "NT", "Q", "NSW", "V", "SA", "T"}

// Borders lists the adjacent region pairs. Tasmania borders nothing and
// may take any color.
var Borders = []arco.Edge{
	{A: "SA", B: "WA"},
	{A: "SA", B: "NT"},
	{A: "SA", B: "Q"},
	{A: "SA", B: "NSW"},
	{A: "SA", B: "V"},
	{A: "WA", B: "NT"},
	{A: "NT", B: "Q"},
	{A: "Q", B: "NSW"},
	{A: "NSW", B: "V"},
}

var _ input.Source[string] = &Australia{}

// Australia models the map coloring problem over the given palette:
// every region takes one color and bordering regions must differ.
type Australia struct {
	colors []string
}

func NewAustralia(colors ...string) *Australia {
	return &Australia{
		colors: colors,
	}
}

func (a *Australia) GetModel(_ context.Context) (*input.Model[string], error) {
	m := input.NewModel[string]()
	for _, region := range Regions {
		m.AddVariable(region, a.colors...)
	}
	for _, border := range Borders {
		m.AddEdge(border.A, border.B)
	}
	return m, nil
}
