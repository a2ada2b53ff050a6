// interpreter.go
//
// The tree-walking evaluator: Interpret walks a Node tree producing a
// Node result, dispatching special forms, built-ins, and user functions,
// and enforcing the argument-count/kind contract along the way. One
// Interpreter owns every piece of process-wide mutable state (function
// table, argument stack, PRNG, output sink) for the run, rather than
// scattering it across package-level globals.
package nickel

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"
)

// Interpreter holds everything a single run of a Nickel program needs:
// the table of user-defined functions, the argument stack used to
// resolve positional references, the process-wide PRNG behind `rand`,
// and the sink `print`/`pfmt` write to.
type Interpreter struct {
	Functions *FunctionTable
	Args      *ArgStack
	Stdout    io.Writer

	rng *rand.Rand
}

// NewInterpreter returns a ready-to-run Interpreter with its own
// function table and argument stack, a math/rand PRNG seeded once
// from wall-clock time, and standard output as its print sink.
func NewInterpreter() *Interpreter {
	now := uint64(time.Now().UnixNano())
	return &Interpreter{
		Functions: NewFunctionTable(),
		Args:      NewArgStack(),
		Stdout:    os.Stdout,
		rng:       rand.New(rand.NewSource(int64(now))),
	}
}

// Run parses and interprets an entire program's source bytes in a
// single top-level pass: iterate the Program's children in order,
// discarding each result.
func (ip *Interpreter) Run(src []byte) {
	program := ParseProgram(src)
	ip.Interpret(program)
}

// Interpret is the evaluator's single entry point: dispatch on Kind,
// returning a freshly owned Node in every case.
func (ip *Interpreter) Interpret(node Node) Node {
	switch node.Kind {
	case Invalid:
		fail(&KindError{Msg: "bad node"})
		panic("unreachable")
	case Program:
		for _, child := range node.Children {
			ip.Interpret(child)
		}
		return Node{Kind: Invalid}
	case List:
		return ip.apply(node)
	case Int, String:
		return node.DeepCopy()
	case Name:
		if node.IsPositionalRef() {
			idx, err := node.PositionalIndex()
			if err != nil {
				fail(err)
			}
			return ip.Args.Resolve(idx)
		}
		return node.DeepCopy()
	default:
		fail(&KindError{Msg: "bad node"})
		panic("unreachable")
	}
}

// apply evaluates the head of a list application, dispatches special
// forms before any argument evaluation, and otherwise evaluates every
// argument left-to-right before dispatching to a built-in or a user
// function.
func (ip *Interpreter) apply(list Node) Node {
	if len(list.Children) < 1 {
		fail(&KindError{Msg: "no function to apply in empty list\n  did you mean to create an empty list? [list]"})
	}

	head := ip.Interpret(list.Children[0])
	if head.Kind != Name {
		fail(&KindError{Msg: "expected function name as first element in list-function application"})
	}
	name := head.Str

	if isSpecialForm(name) {
		switch name {
		case "if":
			return ip.evalIf(list)
		case "define":
			return ip.evalDefine(list)
		}
	}

	evaluated := make([]Node, 0, len(list.Children))
	evaluated = append(evaluated, head)
	for _, argExpr := range list.Children[1:] {
		evaluated = append(evaluated, ip.Interpret(argExpr))
	}

	switch {
	case isBuiltin(name):
		return ip.applyBuiltin(name, evaluated)
	default:
		if body, ok := ip.Functions.Lookup(name); ok {
			return ip.callUserFunction(body, evaluated)
		}
		fail(&ResolutionError{Msg: fmt.Sprintf("unknown function '%s'", name)})
		panic("unreachable")
	}
}

// callUserFunction runs a user-defined function: a fresh argument-stack
// frame (deep copies of the evaluated-nodes sequence), a deep-copied
// snapshot of the function body (so the body can safely redefine its
// own function while still running), sequential evaluation of each body
// expression discarding all but the last result, and an unconditional
// pop of the frame on the way out.
func (ip *Interpreter) callUserFunction(body []Node, evaluated []Node) Node {
	frame := DeepCopySlice(evaluated)
	ip.Args.Push(frame)
	defer ip.Args.Pop()

	exprs := DeepCopySlice(body)

	var result Node
	for _, expr := range exprs {
		result = ip.Interpret(expr)
	}
	return result
}
