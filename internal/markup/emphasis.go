package markup

import (
	"unicode"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// intraWordParser claims emphasis delimiter runs that sit between two word
// characters and emits them as literal text, so foo*bar*baz and snake_case
// never open emphasis. A run that can close an emphasis opened earlier in
// the paragraph (**bold**text) is left to the regular emphasis parser, as
// are all runs it declines.
type intraWordParser struct{}

func (intraWordParser) Trigger() []byte {
	return []byte{'*', '_'}
}

func (intraWordParser) Parse(parent ast.Node, block text.Reader, pc parser.Context) ast.Node {
	before := block.PrecendingCharacter()
	line, segment := block.PeekLine()
	if len(line) == 0 {
		return nil
	}

	c := line[0]
	n := 0
	for n < len(line) && line[n] == c {
		n++
	}

	after := '\n'
	if n < len(line) {
		after, _ = utf8.DecodeRune(line[n:])
	}

	if !isWordRune(before) || !isWordRune(after) || hasOpener(pc, c) {
		return nil
	}

	block.Advance(n)
	return ast.NewTextSegment(segment.WithStop(segment.Start + n))
}

// hasOpener reports whether an earlier delimiter of the same character is
// still unmatched. Delimiters stay on the stack until the paragraph ends, so
// pairs that already close each other are skipped.
func hasOpener(pc parser.Context, c byte) bool {
	open := 0
	for d := pc.FirstDelimiter(); d != nil; d = d.NextDelimiter {
		if d.Char != c {
			continue
		}
		switch {
		case d.CanClose && open > 0:
			open--
		case d.CanOpen:
			open++
		}
	}
	return open > 0
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
