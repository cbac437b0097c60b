// Package viz renders a population's state as a Graphviz DOT document for
// visual inspection. Rendering is read-only and never invoked by the
// simulation core during a run.
//
// Node palette: susceptible individuals stay in the neutral base color,
// incubating are yellow with an orange fill, sick are orange with a red
// fill, recovered are black. Nodes are drawn as points so that large
// networks stay legible under force-directed layouts (neato).
//
// Determinism: nodes and edges are emitted in the network's sorted order,
// so two identical states produce byte-identical documents.
package viz

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/contagion/epidemic"
)

// ErrNilPopulation indicates a nil population was passed.
var ErrNilPopulation = errors.New("viz: population is nil")

// Base palette, matching the muted background the state colors pop against.
const (
	baseColor      = "#b0b0b0b0"
	graphName      = "contagion"
	indentSpaces   = "  "
	nodeShape      = "point"
	colorIncub     = "yellow"
	fillIncub      = "orange"
	colorSick      = "orange"
	fillSick       = "red"
	colorRecover   = "black"
	edgeOperator   = " -- "
	lineTerminator = ";\n"
)

// DOT returns the DOT document for pop's current state.
//
// Errors: ErrNilPopulation.
func DOT(pop *epidemic.Population) (string, error) {
	var sb strings.Builder
	if err := WriteDOT(&sb, pop); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// WriteDOT writes the DOT document for pop's current state to w.
//
// Errors: ErrNilPopulation; write errors from w.
// Complexity: O(V log V + E log E).
func WriteDOT(w io.Writer, pop *epidemic.Population) error {
	if pop == nil {
		return ErrNilPopulation
	}

	var sb strings.Builder
	sb.WriteString("graph " + graphName + " {\n")
	sb.WriteString(indentSpaces + "node [shape=" + nodeShape + ", color=\"" + baseColor + "\"]" + lineTerminator)
	sb.WriteString(indentSpaces + "edge [color=\"" + baseColor + "\"]" + lineTerminator)

	net := pop.Network()
	var (
		attrs string
		ok    bool
		st    epidemic.Health
	)
	for _, id := range net.Nodes() {
		st, ok = pop.StateOf(id)
		if !ok {
			continue
		}
		switch st {
		case epidemic.Incubating:
			attrs = " [color=\"" + colorIncub + "\", fillcolor=\"" + fillIncub + "\"]"
		case epidemic.Sick:
			attrs = " [color=\"" + colorSick + "\", fillcolor=\"" + fillSick + "\"]"
		case epidemic.Recovered:
			attrs = " [color=\"" + colorRecover + "\"]"
		default:
			attrs = ""
		}
		sb.WriteString(indentSpaces + quote(id) + attrs + lineTerminator)
	}
	for _, e := range net.Edges() {
		sb.WriteString(indentSpaces + quote(e.U) + edgeOperator + quote(e.V) + lineTerminator)
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("viz: write: %w", err)
	}

	return nil
}

// quote wraps an ID in double quotes, escaping embedded quotes.
func quote(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `\"`) + `"`
}
