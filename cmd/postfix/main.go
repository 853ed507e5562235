package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/agenthands/postfix/pkg/cases"
	"github.com/agenthands/postfix/pkg/vm"
)

const usage = "Usage: postfix [eval|run|check] ..."

// spewConf dumps a vm.Step per token; Kind and Op print through their
// String methods.
var spewConf = spew.ConfigState{
	Indent:            "\t",
	DisableCapacities: true,
	MaxDepth:          3,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 1
	}

	switch args[0] {
	case "eval":
		return runEval(args[1:], stdout, stderr)
	case "run":
		return runFile(args[1:], stdin, stdout, stderr)
	case "check":
		return runCheck(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintln(stderr, "Unknown command:", args[0])
		return 1
	}
}

type machineFlags struct {
	strict bool
	trace  bool
}

func (f *machineFlags) register(fs *flag.FlagSet) {
	fs.BoolVar(&f.strict, "strict", false, "Reject unknown operators and leftover operands")
	fs.BoolVar(&f.trace, "trace", false, "Dump the operand stack after every token to stderr")
}

func (f *machineFlags) machine(stderr io.Writer) *vm.Machine {
	m := vm.GetMachine()
	m.Strict = f.strict
	if f.trace {
		m.Tracer = func(s vm.Step) {
			spewConf.Fdump(stderr, s)
		}
	}
	return m
}

func runEval(args []string, stdout, stderr io.Writer) int {
	var mf machineFlags
	evalCmd := flag.NewFlagSet("eval", flag.ContinueOnError)
	evalCmd.SetOutput(stderr)
	mf.register(evalCmd)
	if err := evalCmd.Parse(args); err != nil {
		return 1
	}
	if evalCmd.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: postfix eval [-strict] [-trace] <expression>...")
		return 1
	}

	m := mf.machine(stderr)
	defer vm.PutMachine(m)

	status := 0
	for _, expr := range evalCmd.Args() {
		if !emit(m, expr, stdout) {
			status = 1
		}
	}
	return status
}

func runFile(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var mf machineFlags
	runCmd := flag.NewFlagSet("run", flag.ContinueOnError)
	runCmd.SetOutput(stderr)
	mf.register(runCmd)
	if err := runCmd.Parse(args); err != nil {
		return 1
	}
	if runCmd.NArg() != 1 {
		fmt.Fprintln(stderr, "Usage: postfix run [-strict] [-trace] <file|->")
		return 1
	}

	in := stdin
	if path := runCmd.Arg(0); path != "-" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(stderr, "Error reading file: %v\n", err)
			return 1
		}
		defer f.Close()
		in = f
	}

	m := mf.machine(stderr)
	defer vm.PutMachine(m)

	status := 0
	sc := bufio.NewScanner(in)
	// Expressions are bounded only by input length, not bufio's default line cap
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt32)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !emit(m, line, stdout) {
			status = 1
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return 1
	}
	return status
}

// emit prints the rendered result of expr and reports whether it succeeded.
func emit(m *vm.Machine, expr string, stdout io.Writer) bool {
	v, err := m.Eval(expr)
	if err != nil {
		fmt.Fprintln(stdout, err.Error())
		return false
	}
	fmt.Fprintln(stdout, v)
	return true
}

func runCheck(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Usage: postfix check <suite.yaml>...")
		return 1
	}

	status := 0
	for _, path := range args {
		suite, err := cases.Load(path)
		if err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
			continue
		}

		outcomes := suite.Run()
		for _, o := range outcomes {
			if o.Pass {
				fmt.Fprintf(stdout, "PASS %s/%s\n", suite.Name, o.Case.Name)
				continue
			}
			fmt.Fprintf(stdout, "FAIL %s/%s: %q\n", suite.Name, o.Case.Name, o.Case.Expr)
			fmt.Fprintf(stdout, "  got:  %q\n  want: %q\n", o.Got, o.Case.Want)
		}
		if failed := cases.Failed(outcomes); len(failed) > 0 {
			fmt.Fprintf(stdout, "%s: %d/%d failed (%s)\n", suite.Name, len(failed), len(outcomes), suite.Path)
			status = 1
		}
	}
	return status
}
