// Package wizard is a linear step machine: a step can only be left forward once its
// check passes, and the final commit runs only when every step checks out.
package wizard

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrCommitted = errors.New("workflow already committed")
	ErrFirstStep = errors.New("already on the first step")
	ErrLastStep  = errors.New("already on the last step")
	ErrNotLast   = errors.New("commit is only available on the last step")
)

type Step struct {
	Name  string
	Check func() error
}

// StepsFunc is evaluated on every call, so a choice made on an earlier step can swap
// the steps that follow it.
type StepsFunc func() []Step

type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s is incomplete: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

type Machine struct {
	steps     StepsFunc
	pos       int
	committed bool
}

func New(steps StepsFunc) *Machine {
	return &Machine{steps: steps}
}

// Restore puts the machine back on a known position, clamped to the step range.
func Restore(steps StepsFunc, pos int, committed bool) *Machine {
	m := &Machine{steps: steps, committed: committed}
	m.pos = m.clamp(pos)
	return m
}

func (m *Machine) clamp(pos int) int {
	n := len(m.steps())
	if pos < 0 || n == 0 {
		return 0
	}
	if pos >= n {
		return n - 1
	}
	return pos
}

func (m *Machine) Position() int {
	return m.pos
}

func (m *Machine) Current() Step {
	steps := m.steps()
	return steps[m.clamp(m.pos)]
}

func (m *Machine) StepNames() []string {
	steps := m.steps()
	names := make([]string, 0, len(steps))
	for _, s := range steps {
		names = append(names, s.Name)
	}
	return names
}

func (m *Machine) IsLast() bool {
	return m.pos == len(m.steps())-1
}

func (m *Machine) Committed() bool {
	return m.committed
}

// CanContinue reports why the current step cannot be left yet.
func (m *Machine) CanContinue() error {
	return check(m.Current())
}

func (m *Machine) Next() error {
	if m.committed {
		return ErrCommitted
	}
	if m.IsLast() {
		return ErrLastStep
	}
	if err := m.CanContinue(); err != nil {
		return err
	}
	m.pos++
	return nil
}

func (m *Machine) Back() error {
	if m.committed {
		return ErrCommitted
	}
	if m.pos == 0 {
		return ErrFirstStep
	}
	m.pos--
	return nil
}

// Ready checks every step in order and reports the first incomplete one.
func (m *Machine) Ready() error {
	for _, s := range m.steps() {
		if err := check(s); err != nil {
			return err
		}
	}
	return nil
}

// Commit runs fn from the last step only. When fn fails the machine stays on the last
// step uncommitted, so the commit can be attempted again.
func (m *Machine) Commit(fn func() error) error {
	if m.committed {
		return ErrCommitted
	}
	if !m.IsLast() {
		return errors.Wrap(ErrNotLast, m.steps()[len(m.steps())-1].Name)
	}
	if err := m.Ready(); err != nil {
		return err
	}
	if err := fn(); err != nil {
		return err
	}
	m.committed = true
	return nil
}

func check(s Step) error {
	if s.Check == nil {
		return nil
	}
	if err := s.Check(); err != nil {
		return &StepError{Step: s.Name, Err: err}
	}
	return nil
}
