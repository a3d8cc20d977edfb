package course_test

import (
	"strings"
	"testing"

	"catalog/internal/core/domain/model/course"
	"catalog/internal/core/domain/model/kernel"
	"catalog/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should create course with trimmed fields", func(t *testing.T) {
		c, err := course.NewCourse(id, "  Go in practice ", " intro ")

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Go in practice", c.Title())
		assert.Equal(t, "intro", c.Overview())
	})

	t.Run("should fail with blank title", func(t *testing.T) {
		c, err := course.NewCourse(id, "   ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, c)
	})

	t.Run("should fail with too long title", func(t *testing.T) {
		_, err := course.NewCourse(id, strings.Repeat("é", course.TitleMaxLength+1), "")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "201 characters")
	})

	t.Run("should join all validation errors", func(t *testing.T) {
		_, err := course.NewCourse(kernel.UUID{}, "", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: title")
	})
}

func TestCourse_Validate(t *testing.T) {
	var c *course.Course
	require.ErrorIs(t, c.Validate(), course.ErrCourseIsNotConstructed)
	require.ErrorIs(t, (&course.Course{}).Validate(), course.ErrCourseIsNotConstructed)
}

func TestCourse_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	a, _ := course.NewCourse(id, "A", "")
	b, _ := course.RestoreCourse(id, "B", "")
	other, _ := course.NewCourse(kernel.NewUUID(), "A", "")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(other))
	assert.False(t, a.IsEqual(nil))
}
