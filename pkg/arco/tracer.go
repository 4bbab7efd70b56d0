package arco

import (
	"fmt"
	"io"
)

// Tracer receives progress notifications from the propagation and search
// passes. Implementations must be cheap: the engine calls them on every
// revision and every assignment.
type Tracer interface {
	// Pruned is called after a revision removes values from a variable's
	// domain, with the number removed and the number remaining.
	Pruned(id Identifier, removed, remaining int)
	// Assigned is called when search tentatively extends the assignment.
	Assigned(id Identifier, value any, depth int)
	// Backtracked is called when search undoes a tentative assignment.
	Backtracked(id Identifier, value any, depth int)
}

type DefaultTracer struct{}

func (DefaultTracer) Pruned(_ Identifier, _, _ int) {
}

func (DefaultTracer) Assigned(_ Identifier, _ any, _ int) {
}

func (DefaultTracer) Backtracked(_ Identifier, _ any, _ int) {
}

// LoggingTracer writes one line per event to Writer.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Pruned(id Identifier, removed, remaining int) {
	fmt.Fprintf(t.Writer, "prune %s: -%d (%d left)\n", id, removed, remaining)
}

func (t LoggingTracer) Assigned(id Identifier, value any, depth int) {
	fmt.Fprintf(t.Writer, "%*sassign %s = %v\n", depth, "", id, value)
}

func (t LoggingTracer) Backtracked(id Identifier, value any, depth int) {
	fmt.Fprintf(t.Writer, "%*sundo %s = %v\n", depth, "", id, value)
}
