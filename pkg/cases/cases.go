// Package cases loads and runs YAML suites of postfix expressions paired
// with their expected rendered output.
package cases

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/agenthands/postfix/pkg/vm"
)

// Suite is a named list of cases evaluated under the same machine options.
// Path is the absolute file the suite was loaded from, empty for Decode.
type Suite struct {
	Path   string
	Name   string
	Strict bool
	Cases  []Case
}

// Case pairs an expression with the exact vm.Render output it must produce.
type Case struct {
	Name string
	Expr string
	Want string
}

// Outcome records the result of running one case.
type Outcome struct {
	Case Case
	Got  string
	Pass bool
}

type suiteDisk struct {
	Name   string     `yaml:"name"`
	Strict bool       `yaml:"strict"`
	Cases  []caseDisk `yaml:"cases"`
}

type caseDisk struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
	Want string `yaml:"want"`
}

// Load parses a suite file from disk.
func Load(path string) (*Suite, error) {
	if path == "" {
		return nil, fmt.Errorf("cases: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cases: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, fmt.Errorf("cases: open %s: %w", abs, err)
	}
	defer file.Close()

	suite, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("cases: parse %s: %w", abs, err)
	}
	suite.Path = abs
	if suite.Name == "" {
		suite.Name = filepath.Base(abs)
	}
	return suite, nil
}

// Decode reads a suite from r. Unknown fields are rejected.
func Decode(r io.Reader) (*Suite, error) {
	var raw suiteDisk
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty suite")
		}
		return nil, err
	}
	return raw.toSuite()
}

func (raw suiteDisk) toSuite() (*Suite, error) {
	suite := &Suite{
		Name:   raw.Name,
		Strict: raw.Strict,
		Cases:  make([]Case, 0, len(raw.Cases)),
	}
	for i, c := range raw.Cases {
		if c.Want == "" {
			return nil, fmt.Errorf("case %d (%q): missing want", i, c.Expr)
		}
		name := c.Name
		if name == "" {
			name = fmt.Sprintf("case-%d", i)
		}
		suite.Cases = append(suite.Cases, Case{Name: name, Expr: c.Expr, Want: c.Want})
	}
	return suite, nil
}

// Run evaluates every case on a single pooled machine.
func (s *Suite) Run() []Outcome {
	m := vm.GetMachine()
	defer vm.PutMachine(m)

	outcomes := make([]Outcome, 0, len(s.Cases))
	for _, c := range s.Cases {
		m.Strict = s.Strict
		got := m.Render(c.Expr)
		outcomes = append(outcomes, Outcome{Case: c, Got: got, Pass: got == c.Want})
	}
	return outcomes
}

// Failed returns the outcomes that did not pass.
func Failed(outcomes []Outcome) []Outcome {
	var out []Outcome
	for _, o := range outcomes {
		if !o.Pass {
			out = append(out, o)
		}
	}
	return out
}
