package wizard

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type form struct {
	branch string
	name   string
	a, b   bool
}

func formSteps(f *form) StepsFunc {
	return func() []Step {
		second := Step{Name: "a_details", Check: func() error {
			if !f.a {
				return errors.New("a required")
			}
			return nil
		}}
		if f.branch == "b" {
			second = Step{Name: "b_details", Check: func() error {
				if !f.b {
					return errors.New("b required")
				}
				return nil
			}}
		}
		return []Step{
			{Name: "start", Check: func() error {
				if f.name == "" || f.branch == "" {
					return errors.New("name and branch required")
				}
				return nil
			}},
			second,
			{Name: "preview"},
		}
	}
}

func TestMachine(t *testing.T) {
	t.Run(`next is gated by the current step`, func(t *testing.T) {
		f := &form{}
		m := New(formSteps(f))
		err := m.Next()
		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "start", stepErr.Step)
		require.Equal(t, 0, m.Position())

		f.name, f.branch = "x", "a"
		require.NoError(t, m.Next())
		require.Equal(t, "a_details", m.Current().Name)
		require.Error(t, m.Next())
		f.a = true
		require.NoError(t, m.Next())
		require.True(t, m.IsLast())
		require.ErrorIs(t, m.Next(), ErrLastStep)
	})

	t.Run(`branch choice swaps the second step`, func(t *testing.T) {
		f := &form{name: "x", branch: "b"}
		m := New(formSteps(f))
		require.NoError(t, m.Next())
		require.Equal(t, []string{"start", "b_details", "preview"}, m.StepNames())
		require.Error(t, m.CanContinue())
		f.b = true
		require.NoError(t, m.CanContinue())
	})

	t.Run(`back stops at first step`, func(t *testing.T) {
		m := New(formSteps(&form{}))
		require.ErrorIs(t, m.Back(), ErrFirstStep)
	})

	t.Run(`failed commit stays uncommitted on the last step`, func(t *testing.T) {
		f := &form{name: "x", branch: "a", a: true}
		m := Restore(formSteps(f), 2, false)
		require.True(t, m.IsLast())
		require.Error(t, m.Commit(func() error { return errors.New("db down") }))
		require.False(t, m.Committed())
		require.True(t, m.IsLast())

		calls := 0
		require.NoError(t, m.Commit(func() error { calls++; return nil }))
		require.True(t, m.Committed())
		require.ErrorIs(t, m.Commit(func() error { calls++; return nil }), ErrCommitted)
		require.Equal(t, 1, calls)
		require.ErrorIs(t, m.Back(), ErrCommitted)
	})

	t.Run(`commit re-checks every step`, func(t *testing.T) {
		f := &form{name: "x", branch: "a", a: true}
		m := Restore(formSteps(f), 2, false)
		f.a = false
		err := m.Commit(func() error { return nil })
		var stepErr *StepError
		require.ErrorAs(t, err, &stepErr)
		require.Equal(t, "a_details", stepErr.Step)
		require.False(t, m.Committed())
	})

	t.Run(`commit only from last step`, func(t *testing.T) {
		m := New(formSteps(&form{name: "x", branch: "a", a: true}))
		require.ErrorIs(t, m.Commit(func() error { return nil }), ErrNotLast)
		require.False(t, m.Committed())
	})

	t.Run(`restore clamps position`, func(t *testing.T) {
		m := Restore(formSteps(&form{}), 10, false)
		require.Equal(t, 2, m.Position())
		m = Restore(formSteps(&form{}), -3, false)
		require.Equal(t, 0, m.Position())
	})
}
