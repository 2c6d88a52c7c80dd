// Package format implements the positional placeholder syntax used in
// prism message templates: {} consumes the next argument, {N} selects
// one by index, and {:spec} applies a formatting spec such as {:.1} or
// {:x}. Interpolation runs before markup parsing, so placeholders can
// appear inside styled spans.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/valyala/fasttemplate"
)

// Interpolate substitutes placeholders in template with args.
// Placeholders that cannot be satisfied (index out of range, unknown
// spec, no matching brace) are emitted back literally so a bad call site
// still produces a readable message.
func Interpolate(template string, args ...interface{}) string {
	if len(args) == 0 || !strings.Contains(template, "{") {
		return template
	}

	next := 0
	out, err := fasttemplate.ExecuteFuncStringWithErr(template, "{", "}",
		func(w io.Writer, tag string) (int, error) {
			idx, spec, ok := splitTag(tag)
			if !ok {
				return fmt.Fprintf(w, "{%s}", tag)
			}
			if idx < 0 {
				idx = next
				next++
			}
			if idx >= len(args) {
				return fmt.Fprintf(w, "{%s}", tag)
			}
			return fmt.Fprintf(w, verb(spec, args[idx]), args[idx])
		})
	if err != nil {
		// an unmatched { leaves the template as-is
		return template
	}
	return out
}

// splitTag splits a placeholder body into an argument index and a format
// spec. An index of -1 means "next positional argument". ok is false for
// bodies that are not placeholders at all, such as {name}.
func splitTag(tag string) (int, string, bool) {
	name, spec, _ := strings.Cut(tag, ":")
	if name == "" {
		return -1, spec, true
	}
	idx, err := strconv.Atoi(name)
	if err != nil || idx < 0 {
		return 0, "", false
	}
	return idx, spec, true
}

// verb translates a format spec into an fmt verb. Unknown specs fall
// back to %v rather than mangling the argument.
func verb(spec string, arg interface{}) string {
	if spec == "" {
		return "%v"
	}
	if spec == "?" {
		return "%#v"
	}

	base := "v"
	switch spec[len(spec)-1] {
	case 'x', 'X', 'b', 'o':
		base = string(spec[len(spec)-1])
		spec = spec[:len(spec)-1]
	}

	// what remains may only be width, zero padding and precision
	for _, r := range spec {
		if r != '.' && (r < '0' || r > '9') {
			return "%v"
		}
	}

	if strings.Contains(spec, ".") && base == "v" {
		switch arg.(type) {
		case float32, float64:
			base = "f"
		}
	}
	return "%" + spec + base
}
