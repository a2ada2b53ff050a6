// node.go
//
// The Node model: the single universal tagged value Nickel's parser and
// evaluator pass around. A Node is one of Invalid, Program, List, Int,
// String, or Name (see Kind below). Program and List carry an ordered
// sequence of child Nodes; Int, String, and Name carry a scalar payload.
//
// Ownership: every Node is conceptually self-contained — whoever holds a
// Node may treat it (and everything reachable from it) as theirs alone.
// Go's garbage collector reclaims unreachable values on its own, so
// there is no explicit destructor here; DeepCopy still earns its keep
// because it is semantically load-bearing, not just a memory nicety --
// it's what makes a redefined function's already-running body, and a
// live argument-stack frame, immune to later mutation of the structures
// they were copied from.
package nickel

import "strconv"

// Kind tags the payload a Node carries.
type Kind int

const (
	Invalid Kind = iota
	Program
	List
	Int
	String
	Name
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Program:
		return "program"
	case List:
		return "list"
	case Int:
		return "int"
	case String:
		return "string"
	case Name:
		return "name"
	default:
		return "unknown"
	}
}

// Node is the universal tagged value. Exactly one of the payload fields
// is meaningful, selected by Kind:
//
//	Program, List -> Children
//	Int           -> Integer
//	String        -> Str
//	Name          -> Str (the identifier text)
type Node struct {
	Kind     Kind
	Children []Node
	Integer  int64
	Str      string
}

// NewProgram returns an empty Program node.
func NewProgram() Node {
	return Node{Kind: Program, Children: []Node{}}
}

// NewList returns an empty List node.
func NewList() Node {
	return Node{Kind: List, Children: []Node{}}
}

// NewInt returns an Int node.
func NewInt(i int64) Node {
	return Node{Kind: Int, Integer: i}
}

// NewString returns a String node.
func NewString(s string) Node {
	return Node{Kind: String, Str: s}
}

// NewName returns a Name node.
func NewName(s string) Node {
	return Node{Kind: Name, Str: s}
}

// IsPositionalRef reports whether a Name Node denotes an argument-stack
// reference: a Name beginning with ':'.
func (n Node) IsPositionalRef() bool {
	return n.Kind == Name && len(n.Str) > 0 && n.Str[0] == ':'
}

// PositionalIndex parses the decimal suffix of a positional-reference
// Name. Negative indices are rejected explicitly here: a signed index
// compared against an unsigned argument count would otherwise read as
// in-bounds, letting ":-1" silently alias some unrelated argument.
func (n Node) PositionalIndex() (int, error) {
	if !n.IsPositionalRef() {
		return 0, &ResolutionError{Msg: "not a positional reference: '" + n.Str + "'"}
	}
	idx, err := strconv.ParseInt(n.Str[1:], 10, 64)
	if err != nil {
		return 0, &ResolutionError{Msg: "unable to parse argument index from '" + n.Str + "'"}
	}
	if idx < 0 {
		return 0, &DomainError{Msg: "argument reference invalid (" + strconv.FormatInt(idx, 10) + ")"}
	}
	return int(idx), nil
}

// DeepCopy recursively clones a Node and everything reachable from it.
// This is the basis of Nickel's aliasing-free evaluation model: every
// time a Node is plucked out of the parse tree, the function table, or
// the argument stack and handed to a new owner, DeepCopy is called
// first.
func (n Node) DeepCopy() Node {
	switch n.Kind {
	case Program, List:
		children := make([]Node, len(n.Children))
		for i, c := range n.Children {
			children[i] = c.DeepCopy()
		}
		return Node{Kind: n.Kind, Children: children}
	default:
		return n
	}
}

// DeepCopySlice clones every Node in a slice, preserving order.
func DeepCopySlice(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.DeepCopy()
	}
	return out
}
