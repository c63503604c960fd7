// codec.go implements a bit-exact wire-format read/write contract for
// the Graph Store: line-oriented `XP`/`XN`/`v`/`d`/`u`/`e`
// statements, `%` comments, quoted or bare tokens, signed numeric labels.
//
// The tokenizer/grammar is grounded on the pack's own line-oriented graph
// grammar, lnz-BalancedGo/lib/parser.go, which builds a participle parser
// over a struct-tagged grammar and calls Parser.ParseString once per whole
// document rather than line-by-line. We follow the same shape: strip `%`
// comments in a thin pre-pass (participle's default lexer understands
// `//`/`/* */`, not `%`, so this one pre-pass step is unavoidable), then
// hand the cleaned text to a single participle-built parser for the whole
// document.
package gstore

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"

	"github.com/katalvlaran/subdue/label"
)

// labelLit is the grammar for one label literal: an optional leading '-'
// (a "signed decimal floating-point number"), followed by a quoted
// string, a float, an int, or a bare token.
type labelLit struct {
	Neg bool     `@"-"?`
	Str *string  `(  @String`
	Flt *float64 ` | @Float`
	Int *int     ` | @Int`
	Tok *string  ` | @Ident )`
}

func (l labelLit) resolve() label.Label {
	switch {
	case l.Str != nil:
		return label.String(*l.Str)
	case l.Flt != nil:
		v := *l.Flt
		if l.Neg {
			v = -v
		}
		return label.Numeric(v)
	case l.Int != nil:
		v := float64(*l.Int)
		if l.Neg {
			v = -v
		}
		return label.Numeric(v)
	default:
		return label.String(*l.Tok)
	}
}

type headerStmt struct {
	Pos  lexer.Position
	Kind string `@("XP" | "XN")`
}

type vertexStmt struct {
	Pos   lexer.Position
	Num   int      `"v" @Int`
	Value labelLit `@@`
}

type edgeStmt struct {
	Pos   lexer.Position
	Kind  string   `@("d" | "u" | "e")`
	A     int      `@Int`
	B     int      `@Int`
	Value labelLit `@@`
}

type statement struct {
	Header *headerStmt `(  @@`
	Vertex *vertexStmt ` | @@`
	Edge   *edgeStmt   ` | @@ )`
}

type document struct {
	Statements []statement `@@*`
}

var docParser = participle.MustBuild(&document{})

// stripComments removes everything from an unquoted '%' to end of line,
// preserving line structure so reported line numbers stay meaningful.
// A '%' inside a double-quoted token is not a comment marker.
func stripComments(src string) string {
	var out strings.Builder
	inQuote := false
	lines := strings.Split(src, "\n")
	for li, line := range lines {
		inQuote = false
		cut := len(line)
		for i := 0; i < len(line); i++ {
			switch line[i] {
			case '"':
				inQuote = !inQuote
			case '%':
				if !inQuote {
					cut = i
				}
			}
			if cut != len(line) {
				break
			}
		}
		out.WriteString(line[:cut])
		if li != len(lines)-1 {
			out.WriteByte('\n')
		}
	}

	return out.String()
}

// ParseResult is everything Parse recovers from one wire-format document:
// the positive graph, the optional negative graph, the shared label table,
// and the per-example vertex-index tables Parameters needs for
// SET_COVER scoring.
type ParseResult struct {
	Pos              *Graph
	Neg              *Graph
	Labels           *label.Table
	PosExampleStarts []int
	NegExampleStarts []int
}

// Parse reads a complete wire-format document from r. directedDefault is
// the corpus-level default directedness `e` edges adopt.
//
// A document with no XP/XN header is interpreted as a single positive
// example; vertex numbers are one-based and reset to 1 at the
// start of every example, and the first vertex of each example must be
// `v 1`, else Parse returns a parse error naming the violating line.
func Parse(r io.Reader, directedDefault bool) (*ParseResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gstore: Parse: read: %w", err)
	}
	cleaned := stripComments(string(raw))

	var doc document
	if err := docParser.ParseString(cleaned, &doc); err != nil {
		return nil, fmt.Errorf("gstore: Parse: %w", err)
	}

	res := &ParseResult{
		Pos:    Allocate(0, 0),
		Neg:    Allocate(0, 0),
		Labels: label.NewTable(),
	}

	const (
		posExample = iota
		negExample
	)
	current := posExample
	localToGlobal := map[int]int{}
	expectNext := 1

	currentGraph := func() *Graph {
		if current == negExample {
			return res.Neg
		}
		return res.Pos
	}
	recordExampleStart := func() {
		g := currentGraph()
		start := len(g.Vertices)
		if current == negExample {
			res.NegExampleStarts = append(res.NegExampleStarts, start)
		} else {
			res.PosExampleStarts = append(res.PosExampleStarts, start)
		}
	}

	for _, st := range doc.Statements {
		switch {
		case st.Header != nil:
			if st.Header.Kind == "XN" {
				current = negExample
			} else {
				current = posExample
			}
			localToGlobal = map[int]int{}
			expectNext = 1

		case st.Vertex != nil:
			// A document with no header at all is a single positive example
			// current already defaults to posExample, so no
			// special case is needed here.
			if st.Vertex.Num != expectNext {
				return nil, fmt.Errorf("gstore: Parse: line %d: vertex numbers must be monotonic starting at 1, got %d expected %d",
					st.Vertex.Pos.Line, st.Vertex.Num, expectNext)
			}
			if st.Vertex.Num == 1 {
				localToGlobal = map[int]int{}
				recordExampleStart()
			}
			labelIdx := res.Labels.Store(st.Vertex.Value.resolve())
			g := currentGraph()
			gidx := g.AddVertex(labelIdx)
			localToGlobal[st.Vertex.Num] = gidx
			expectNext++

		case st.Edge != nil:
			a, ok1 := localToGlobal[st.Edge.A]
			b, ok2 := localToGlobal[st.Edge.B]
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("gstore: Parse: line %d: edge references undefined vertex number", st.Edge.Pos.Line)
			}
			directed := directedDefault
			switch st.Edge.Kind {
			case "d":
				directed = true
			case "u":
				directed = false
			}
			labelIdx := res.Labels.Store(st.Edge.Value.resolve())
			g := currentGraph()
			if _, err := g.AddEdge(a, b, directed, labelIdx); err != nil {
				return nil, fmt.Errorf("gstore: Parse: line %d: %w", st.Edge.Pos.Line, err)
			}
		}
	}

	if len(res.Neg.Vertices) == 0 {
		res.Neg = nil
	}

	return res, nil
}

// Render writes pos (and, if non-nil, neg) back out in wire format, using
// posStarts/negStarts (as produced by Parse) to renumber vertices
// one-based within each example, and labels to resolve label indices to
// text. Vertex numbers are always renumbered on write.
func Render(w io.Writer, pos, neg *Graph, labels *label.Table, posStarts, negStarts []int) error {
	if err := renderGraph(w, "XP", pos, labels, posStarts); err != nil {
		return err
	}
	if neg != nil {
		if err := renderGraph(w, "XN", neg, labels, negStarts); err != nil {
			return err
		}
	}

	return nil
}

func renderGraph(w io.Writer, header string, g *Graph, labels *label.Table, starts []int) error {
	if g == nil || len(g.Vertices) == 0 {
		return nil
	}
	if len(starts) == 0 {
		starts = []int{0}
	}

	global := make([]int, len(g.Vertices)) // global vertex index -> local (1-based) number within its example
	for ei, start := range starts {
		end := len(g.Vertices)
		if ei+1 < len(starts) {
			end = starts[ei+1]
		}
		for gi := start; gi < end; gi++ {
			global[gi] = gi - start + 1
		}
	}

	for ei, start := range starts {
		end := len(g.Vertices)
		if ei+1 < len(starts) {
			end = starts[ei+1]
		}
		if _, err := fmt.Fprintf(w, "%s\n", header); err != nil {
			return err
		}
		for gi := start; gi < end; gi++ {
			lbl, err := labels.At(g.Vertices[gi].Label)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "v %d %s\n", global[gi], lbl.Text()); err != nil {
				return err
			}
		}
		for _, e := range g.Edges {
			if e.From < start || e.From >= end {
				continue
			}
			kind := "u"
			if e.Directed {
				kind = "d"
			}
			lbl, err := labels.At(e.Label)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s %d %d %s\n", kind, global[e.From], global[e.To], lbl.Text()); err != nil {
				return err
			}
		}
	}

	return nil
}
