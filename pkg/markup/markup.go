// Package markup implements prism's inline style markup: flat
// <tokens>...</> spans that grant a local style override inside a message.
//
// The tag body is either a registered alias token or a comma-separated
// list of color and font flag names, resolved with the grammar of
// styles.ParseSpec. Spans never nest; a </> always closes the nearest
// unclosed tag. A < only opens a tag when a > follows it before any
// other <; everything else passes through as literal text.
//
// Malformed markup degrades instead of failing the render: the span text
// is kept, the delimiters are dropped, and the first problem found is
// reported back so callers can surface it on a diagnostics channel.
package markup

import (
	"strings"

	"github.com/arthur-debert/prism/pkg/errors"
	"github.com/arthur-debert/prism/pkg/styles"
)

const closeMarker = "</>"

// Segment is a parsed unit of a message template: a run of literal text,
// optionally carrying a local style override. The ordered segments of a
// parse reconstruct the message content losslessly, markup delimiters
// excluded.
type Segment struct {
	Text   string
	Style  styles.Style
	Styled bool
}

// Resolver resolves alias tokens found in tag bodies. *aliases.Registry
// implements it.
type Resolver interface {
	Resolve(token string) (styles.Style, bool)
}

// Parse scans input in a single pass and returns its ordered segments.
// The segments are always usable; a non-nil error reports the first
// degradation (UNKNOWN_TOKEN, MULTIPLE_COLORS, UNTERMINATED) that
// occurred along the way.
func Parse(input string, r Resolver) ([]Segment, error) {
	var (
		segs     []Segment
		firstErr error
		plain    strings.Builder
	)

	flush := func() {
		if plain.Len() > 0 {
			segs = append(segs, Segment{Text: plain.String()})
			plain.Reset()
		}
	}
	record := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	i := 0
	for i < len(input) {
		if input[i] != '<' {
			j := strings.IndexByte(input[i:], '<')
			if j < 0 {
				plain.WriteString(input[i:])
				break
			}
			plain.WriteString(input[i : i+j])
			i += j
			continue
		}

		rest := input[i+1:]
		if !opensTag(rest) {
			plain.WriteByte('<')
			i++
			continue
		}

		gt := strings.IndexByte(rest, '>')
		body := rest[:gt]
		after := rest[gt+1:]

		if strings.HasPrefix(body, "/") {
			// a close marker with no opener passes through untouched
			plain.WriteByte('<')
			i++
			continue
		}

		end := strings.Index(after, closeMarker)
		if end < 0 || innerTagBefore(after, end) {
			// the span never terminates, or a second tag opens first and
			// the </> belongs to it: degrade this < to literal text
			record(errors.Newf(errors.ErrUnterminated,
				"markup span <%s> has no closing %s", body, closeMarker))
			plain.WriteByte('<')
			i++
			continue
		}

		text := after[:end]
		style, err := resolveTag(body, r)
		if err != nil {
			record(err)
			// malformed tag: keep the span text, drop the delimiters
			plain.WriteString(text)
		} else {
			flush()
			segs = append(segs, Segment{Text: text, Style: style, Styled: true})
		}
		i += 1 + gt + 1 + end + len(closeMarker)
	}

	flush()
	return segs, firstErr
}

// opensTag reports whether the text following a < forms a tag open,
// meaning a > occurs before any other <.
func opensTag(rest string) bool {
	gt := strings.IndexByte(rest, '>')
	if gt < 0 {
		return false
	}
	lt := strings.IndexByte(rest, '<')
	return lt < 0 || gt < lt
}

// innerTagBefore reports whether another tag opens inside s before
// position end. The close marker then belongs to that nearer tag.
func innerTagBefore(s string, end int) bool {
	for k := 0; k < end; {
		j := strings.IndexByte(s[k:end], '<')
		if j < 0 {
			return false
		}
		pos := k + j
		if opensTag(s[pos+1:]) {
			return true
		}
		k = pos + 1
	}
	return false
}

// resolveTag resolves a tag body, preferring an exact alias match over
// the comma-list grammar.
func resolveTag(body string, r Resolver) (styles.Style, error) {
	if r != nil {
		if style, ok := r.Resolve(body); ok {
			return style, nil
		}
	}
	return styles.ParseSpec(body)
}

// Expand renders input to terminal bytes. Styled spans emit their own
// escape sequence followed by a reset and defaultSeq, so the surrounding
// text resumes the caller's default style. Plain runs pass through
// untouched; wrapping them is the caller's business.
func Expand(input, defaultSeq string, r Resolver) (string, error) {
	segs, err := Parse(input, r)

	var b strings.Builder
	b.Grow(len(input) + 16)
	for _, seg := range segs {
		if !seg.Styled {
			b.WriteString(seg.Text)
			continue
		}
		seq := seg.Style.Sequence()
		if seq == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(seq)
		b.WriteString(seg.Text)
		b.WriteString(styles.Reset)
		b.WriteString(defaultSeq)
	}
	return b.String(), err
}

// StripTags returns input with all markup delimiters removed and no
// escape sequences, for plain-text output.
func StripTags(input string, r Resolver) string {
	segs, _ := Parse(input, r)

	var b strings.Builder
	b.Grow(len(input))
	for _, seg := range segs {
		b.WriteString(seg.Text)
	}
	return b.String()
}
