// printer.go
//
// Renders any Node back into human-readable text: Program -> one child
// per line, List -> "[ child child ... ]" (space-delimited, trailing
// space before ']'), Int -> decimal, String -> raw bytes, Name ->
// "<name NAME>". Accumulation goes through a strings.Builder rather than
// repeated concatenation, since Nickel programs can nest lists
// arbitrarily deep.
package nickel

import (
	"strconv"
	"strings"
)

// Sprint renders n as Nickel would print it.
func Sprint(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n Node) {
	switch n.Kind {
	case Program:
		for _, child := range n.Children {
			writeNode(b, child)
			b.WriteByte('\n')
		}
	case List:
		b.WriteByte('[')
		b.WriteByte(' ')
		for _, child := range n.Children {
			writeNode(b, child)
			b.WriteByte(' ')
		}
		b.WriteByte(']')
	case Int:
		b.WriteString(strconv.FormatInt(n.Integer, 10))
	case String:
		b.WriteString(n.Str)
	case Name:
		b.WriteString("<name ")
		b.WriteString(n.Str)
		b.WriteByte('>')
	default:
		// Invalid is never observable to programs; printing one would
		// indicate an internal inconsistency, not a user-facing error.
	}
}
