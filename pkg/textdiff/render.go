package textdiff

import (
	"html"
	"strings"
)

// Renderer turns edit scripts into annotated text. Marker strings wrap
// deleted and inserted tokens; Escape prepares every token for the
// output medium. The zero value is not useful; start from NewRenderer
// and override fields as needed.
type Renderer struct {
	DeleteOpen  string
	DeleteClose string
	InsertOpen  string
	InsertClose string
	Escape      func(string) string
}

// NewRenderer returns an HTML renderer using <del>/<ins> markers and
// HTML escaping.
func NewRenderer() *Renderer {
	return &Renderer{
		DeleteOpen:  "<del>",
		DeleteClose: "</del>",
		InsertOpen:  "<ins>",
		InsertClose: "</ins>",
		Escape:      html.EscapeString,
	}
}

// Highlight renders a token-level diff of two documents with the
// default HTML renderer.
func Highlight(original, rewritten string) string {
	return NewRenderer().Highlight(original, rewritten)
}

// Highlight renders the diff line by line. The output has
// max(lines(original), lines(rewritten)) lines; the shorter document is
// padded with empty lines before alignment.
func (r *Renderer) Highlight(original, rewritten string) string {
	aLines := strings.Split(original, "\n")
	bLines := strings.Split(rewritten, "\n")

	count := max(len(aLines), len(bLines))
	out := make([]string, count)
	for i := 0; i < count; i++ {
		var aLine, bLine string
		if i < len(aLines) {
			aLine = aLines[i]
		}
		if i < len(bLines) {
			bLine = bLines[i]
		}
		out[i] = r.renderLine(aLine, bLine)
	}
	return strings.Join(out, "\n")
}

func (r *Renderer) renderLine(aLine, bLine string) string {
	// Identical-after-trim lines skip alignment entirely.
	if strings.TrimSpace(aLine) == strings.TrimSpace(bLine) {
		return r.Escape(bLine)
	}

	aToks := Tokenize(aLine)
	bToks := Tokenize(bLine)
	if len(aToks) > MaxAlignTokens || len(bToks) > MaxAlignTokens {
		// Alignment would be quadratic here; show the rewritten line plain.
		return r.Escape(bLine)
	}
	return r.renderOps(Align(aToks, bToks))
}

// renderOps concatenates tokens with a single separating space, except
// before tokens that are purely punctuation, to keep spacing natural.
func (r *Renderer) renderOps(ops []Op) string {
	var b strings.Builder
	for i, op := range ops {
		if i > 0 && !isPunctToken(op.Token) {
			b.WriteByte(' ')
		}
		tok := r.Escape(op.Token)
		switch op.Kind {
		case OpDelete:
			b.WriteString(r.DeleteOpen)
			b.WriteString(tok)
			b.WriteString(r.DeleteClose)
		case OpInsert:
			b.WriteString(r.InsertOpen)
			b.WriteString(tok)
			b.WriteString(r.InsertClose)
		default:
			b.WriteString(tok)
		}
	}
	return b.String()
}
