// functable.go
//
// The function table: a mapping from function name to the ordered
// sequence of body-expression Nodes following a `[define NAME ...]`. A
// plain Go map is sufficient: lookups and redefinitions are both
// keyed on the function name, and insertion order never matters.
package nickel

// FunctionTable owns the body of every user-defined function.
type FunctionTable struct {
	funcs map[string][]Node
}

// NewFunctionTable returns an empty table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{funcs: map[string][]Node{}}
}

// Define installs body as the new definition of name, discarding any
// prior definition outright. The caller is expected to have already
// deep-copied body; Define takes ownership without copying again.
func (t *FunctionTable) Define(name string, body []Node) {
	t.funcs[name] = body
}

// Lookup returns the stored body sequence for name and whether it was
// found. The returned slice is the table's own storage; callers must
// DeepCopy every element before evaluating it, since the body may be
// redefined out from under a still-running call.
func (t *FunctionTable) Lookup(name string) ([]Node, bool) {
	body, ok := t.funcs[name]
	return body, ok
}
