// main.go
//
// The Nickel CLI: `nickel PATH` reads a source file, parses it, and
// interprets it. Flag parsing and the top-level recover() site use the
// standard library throughout (`flag`, os.ReadFile, a single
// panic-to-diagnostic boundary); there is no REPL or standard-input
// facility, since Nickel programs always come from a file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kammerdienerb/nickel"
)

// Version identifies this build of the interpreter. It has no bearing on
// language semantics; it exists purely so `-v` has something to report.
const Version = "0.1.0"

func main() {
	printAST := flag.Bool("print-ast", false, "print the parsed program to stderr before evaluating")
	showVersion := flag.Bool("v", false, "print the interpreter version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "USAGE: %s [flags] PATH\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("nickel " + Version)
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		reportFatal(fmt.Errorf("USAGE: %s PATH", os.Args[0]))
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		reportFatal(fmt.Errorf("unable to open '%s'", args[0]))
	}

	run(src, *printAST)
}

func run(src []byte, printAST bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case *nickel.SyntaxError, *nickel.ArityError, *nickel.KindError,
				*nickel.DomainError, *nickel.ResolutionError, *nickel.FormatError:
				reportFatal(r.(error))
			default:
				panic(r)
			}
		}
	}()

	ip := nickel.NewInterpreter()

	program := nickel.ParseProgram(src)
	if printAST {
		fmt.Fprint(os.Stderr, nickel.Sprint(program))
	}

	ip.Interpret(program)
}

// reportFatal writes a one-line `Nickel: error: ...` diagnostic to
// standard output and exits with a non-zero status. This is the sole
// place any Nickel error is ever rendered.
func reportFatal(err error) {
	fmt.Printf("Nickel: error: %s\n", err.Error())
	os.Exit(1)
}
