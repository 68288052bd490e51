// Package markup converts authored markdown into the note service's markup.
//
// A note body is XHTML produced by goldmark, wrapped in the fixed en-note
// envelope the service requires:
//
//	<?xml version="1.0" encoding="UTF-8"?>
//	<!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd">
//	<en-note>
//	...
//	</en-note>
package markup

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

const (
	// Declaration is the XML declaration that opens every note
	Declaration = `<?xml version="1.0" encoding="UTF-8"?>`
	// DocType names the note DTD
	DocType = `<!DOCTYPE en-note SYSTEM "http://xml.evernote.com/pub/enml2.dtd">`

	openTag  = "<en-note>"
	closeTag = "</en-note>"
)

// Renderer turns markdown into note markup
type Renderer struct {
	md goldmark.Markdown
}

// New creates a renderer with autolinking, XHTML output and no intra-word emphasis
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Linkify),
		goldmark.WithParserOptions(
			parser.WithInlineParsers(
				util.Prioritized(intraWordParser{}, 450),
			),
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &Renderer{md: md}
}

// HTML renders markdown to an XHTML fragment
func (r *Renderer) HTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// Note renders markdown and wraps it in the en-note envelope
func (r *Renderer) Note(markdown string) (string, error) {
	body, err := r.HTML(markdown)
	if err != nil {
		return "", err
	}
	return Wrap(body), nil
}

// Wrap places an XHTML fragment inside the en-note envelope
func Wrap(body string) string {
	var b strings.Builder
	b.WriteString(Declaration)
	b.WriteString("\n")
	b.WriteString(DocType)
	b.WriteString("\n")
	b.WriteString(openTag)
	b.WriteString("\n")
	b.WriteString(body)
	if body != "" && !strings.HasSuffix(body, "\n") {
		b.WriteString("\n")
	}
	b.WriteString(closeTag)
	b.WriteString("\n")
	return b.String()
}

// Body returns the fragment inside an en-note envelope, or false if note has none
func Body(note string) (string, bool) {
	start := strings.Index(note, openTag)
	end := strings.LastIndex(note, closeTag)
	if start < 0 || end < start {
		return "", false
	}
	return strings.TrimPrefix(note[start+len(openTag):end], "\n"), true
}
