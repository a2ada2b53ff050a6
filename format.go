// format.go
//
// The format engine behind `fmt`/`pfmt`: scans a format String for
// '{directive}' spans and expands each against the evaluated argument
// Nodes that follow, delegating the actual expansion to fmt.Sprintf so
// every printf-style conversion and quirk Go's formatter supports comes
// along for free.
package nickel

import (
	"fmt"
	"strings"
)

// FormatNodes expands a format string against directive arguments.
// nodes is the full evaluated-nodes slice of an fmt/pfmt application:
// nodes[0] is the function name, nodes[1] is the format string, and
// nodes[2:] are the directive arguments in order.
func FormatNodes(nodes []Node) string {
	format := nodes[1].Str

	var out strings.Builder
	argIdx := 2

	data := []byte(format)
	var last byte
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c == '{' {
			if last == '\\' {
				// The preceding '\' was already written to out; remove
				// it and emit a literal '{' instead. This is the only
				// escape mechanism the format engine supports.
				s := out.String()
				out.Reset()
				out.WriteString(s[:len(s)-1])
				out.WriteByte('{')
				last = c
				continue
			}

			i++
			var directive strings.Builder
			directive.WriteByte('%')
			varWidth := false
			for i < len(data) && data[i] != '}' {
				if data[i] == '*' {
					varWidth = true
				}
				directive.WriteByte(data[i])
				i++
			}

			if i >= len(data) {
				// Unterminated '{' reaches end-of-format: the remaining
				// format (nothing left anyway) is discarded.
				break
			}

			directiveStr := directive.String()
			need := argIdx
			if varWidth {
				need++
			}
			if len(nodes) <= need {
				fail(&FormatError{Msg: "format missing argument"})
			}

			body := directiveStr[1:]
			stringValued := len(body) == 0 || !isAlpha(body[len(body)-1])

			if stringValued {
				directiveStr += "s"
				if varWidth {
					width := nodes[argIdx].Integer
					valStr := Sprint(nodes[argIdx+1])
					out.WriteString(fmt.Sprintf(directiveStr, width, valStr))
					argIdx += 2
				} else {
					valStr := Sprint(nodes[argIdx])
					out.WriteString(fmt.Sprintf(directiveStr, valStr))
					argIdx++
				}
			} else {
				if varWidth {
					width := nodes[argIdx].Integer
					out.WriteString(sprintfDirective(directiveStr, width, nodes[argIdx+1]))
					argIdx += 2
				} else {
					out.WriteString(sprintfDirective(directiveStr, nil, nodes[argIdx]))
					argIdx++
				}
			}

			last = '{'
			continue
		}

		out.WriteByte(c)
		last = c
	}

	return out.String()
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// sprintfDirective expands a non-string-valued directive (the directive
// ends in an alphabetic conversion character, e.g. 'd' or 'x') against
// the raw payload of value: the Integer field for integer conversions,
// the Str field for 's'. No runtime enforcement beyond this is
// performed -- a mismatch between the conversion character and the
// argument's actual kind is the caller's error to avoid, not this
// function's to catch.
func sprintfDirective(directiveStr string, width any, value Node) string {
	var payload any
	if value.Kind == String {
		payload = value.Str
	} else {
		payload = value.Integer
	}
	if width != nil {
		return fmt.Sprintf(directiveStr, width, payload)
	}
	return fmt.Sprintf(directiveStr, payload)
}
