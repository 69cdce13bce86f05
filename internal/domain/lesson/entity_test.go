package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/tutorhub/internal/domain/lesson"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func TestNewLesson_RequiresEveryField(t *testing.T) {
	p := testutil.NewLessonBuilder().Build().Params()
	p.Time = shared.Time{}

	_, err := lesson.NewLesson(p)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestLesson_Equality(t *testing.T) {
	a := testutil.NewLessonBuilder().Build()
	same := testutil.NewLessonBuilder().Build()
	otherSubject := testutil.NewLessonBuilder().WithSubject("Physics").Build()

	assert.True(t, a.Equal(same))
	assert.False(t, a.Equal(otherSubject))
	assert.True(t, a.IsSameSlot(otherSubject))
}

func TestLesson_Before(t *testing.T) {
	morning := testutil.NewLessonBuilder().WithTime("09:00").Build()
	afternoon := testutil.NewLessonBuilder().WithTime("14:00").Build()
	nextDay := testutil.NewLessonBuilder().WithDate("16-03-2025").WithTime("08:00").Build()

	assert.True(t, morning.Before(afternoon))
	assert.True(t, afternoon.Before(nextDay))
	assert.False(t, nextDay.Before(morning))
}

func TestLesson_WithStudentName(t *testing.T) {
	l := testutil.NewLessonBuilder().Build()
	moved := l.WithStudentName(testutil.Name("Bob Choo"))

	assert.Equal(t, "Amy Bee", l.StudentName().String())
	assert.Equal(t, "Bob Choo; Date: 15-03-2025; Time: 14:00; Subject: Mathematics", moved.String())
}
