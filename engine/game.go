package engine

import (
	"fmt"

	"github.com/spaghettifunk/gamemath/engine/core"
)

// Op is a single timed call. It may mutate state captured by its Setup
// but must not allocate per call.
type Op func()

// Setup prepares the inputs of a case and returns the operation to time.
type Setup func() Op

// Case is a named benchmark case.
type Case struct {
	Name  string
	Setup Setup
}

// Suite is an ordered, explicit table of benchmark cases.
type Suite struct {
	Name  string
	cases []Case
	index map[string]int
}

func NewSuite(name string) *Suite {
	return &Suite{
		Name:  name,
		index: make(map[string]int),
	}
}

// Register appends a case. Names must be unique and non-empty.
func (s *Suite) Register(name string, setup Setup) error {
	if name == "" {
		return fmt.Errorf("%w: case name is empty", core.ErrInvalidArgument)
	}
	if setup == nil {
		return fmt.Errorf("%w: case %q has no setup", core.ErrNilArgument, name)
	}
	if _, ok := s.index[name]; ok {
		return fmt.Errorf("%w: case %q registered twice", core.ErrInvalidArgument, name)
	}
	s.index[name] = len(s.cases)
	s.cases = append(s.cases, Case{Name: name, Setup: setup})
	return nil
}

// Lookup returns the case registered under name.
func (s *Suite) Lookup(name string) (Case, bool) {
	i, ok := s.index[name]
	if !ok {
		return Case{}, false
	}
	return s.cases[i], true
}

// Cases returns the registered cases in registration order.
func (s *Suite) Cases() []Case {
	out := make([]Case, len(s.cases))
	copy(out, s.cases)
	return out
}

func (s *Suite) Len() int {
	return len(s.cases)
}
