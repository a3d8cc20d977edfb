package ordering_test

import (
	"errors"
	"testing"

	"catalog/internal/core/domain/model/ordering"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fields map[string]any

func (f fields) ScopeValue(field string) (any, error) {
	v, ok := f[field]
	if !ok {
		return nil, errors.New("unknown field " + field)
	}
	return v, nil
}

func TestNewScope(t *testing.T) {
	t.Run("fields keep declaration order", func(t *testing.T) {
		s, err := ordering.NewScope("course_id", "section")

		require.NoError(t, err)
		assert.Equal(t, []string{"course_id", "section"}, s.Fields())
		assert.False(t, s.IsGlobal())
		assert.Equal(t, "scope(course_id,section)", s.String())
	})

	t.Run("empty field name is rejected", func(t *testing.T) {
		_, err := ordering.NewScope("course_id", " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("duplicate field is rejected", func(t *testing.T) {
		_, err := ordering.NewScope("course_id", "course_id")

		require.ErrorIs(t, err, ordering.ErrScopeFieldIsDuplicate)
	})

	t.Run("MustScope panics on invalid input", func(t *testing.T) {
		assert.Panics(t, func() { ordering.MustScope("") })
	})
}

func TestScope_UndefinedAndEmptyAreEquivalent(t *testing.T) {
	var undefined ordering.Scope
	empty, err := ordering.NewScope()
	require.NoError(t, err)
	explicitEmpty, err := ordering.NewScope([]string{}...)
	require.NoError(t, err)

	rec := fields{"course_id": "x"}
	for _, s := range []ordering.Scope{undefined, empty, explicitEmpty, ordering.GlobalScope()} {
		assert.True(t, s.IsGlobal())

		c, bindErr := s.Bind(rec)
		require.NoError(t, bindErr)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, "modules", c.Key("modules"))
	}
}

func TestScope_Bind(t *testing.T) {
	s := ordering.MustScope("course_id", "section")

	t.Run("collects values in scope order", func(t *testing.T) {
		c, err := s.Bind(fields{"section": 2, "course_id": "x", "title": "ignored"})

		require.NoError(t, err)
		assert.Equal(t, []ordering.Binding{
			{Field: "course_id", Value: "x"},
			{Field: "section", Value: 2},
		}, c.Bindings())
		assert.Equal(t, "modules|course_id=x|section=2", c.Key("modules"))
	})

	t.Run("nil values render distinctly", func(t *testing.T) {
		c, err := s.Bind(fields{"course_id": "x", "section": nil})

		require.NoError(t, err)
		assert.Equal(t, "modules|course_id=x|section=<null>", c.Key("modules"))
	})

	t.Run("unknown field propagates", func(t *testing.T) {
		_, err := s.Bind(fields{"course_id": "x"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), `bind scope field "section"`)
	})
}

func TestCriteria_Matches(t *testing.T) {
	c := ordering.NewCriteria(
		ordering.Binding{Field: "course_id", Value: "x"},
		ordering.Binding{Field: "section", Value: 1},
	)

	assert.True(t, c.Matches(map[string]any{"course_id": "x", "section": 1, "other": true}))
	assert.False(t, c.Matches(map[string]any{"course_id": "x", "section": 2}))
	assert.False(t, c.Matches(map[string]any{"course_id": "x"}))
	assert.True(t, ordering.Criteria{}.Matches(map[string]any{}))

	withNull := ordering.NewCriteria(ordering.Binding{Field: "section", Value: nil})
	assert.True(t, withNull.Matches(map[string]any{"section": nil}))
	assert.False(t, withNull.Matches(map[string]any{"section": 0}))
}

func TestCriteria_KeyDistinguishesScopes(t *testing.T) {
	a := ordering.NewCriteria(ordering.Binding{Field: "course_id", Value: 1})
	b := ordering.NewCriteria(ordering.Binding{Field: "course_id", Value: 2})

	assert.NotEqual(t, a.Key("modules"), b.Key("modules"))
	assert.NotEqual(t, a.Key("modules"), a.Key("contents"))
}
