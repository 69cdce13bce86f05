package shared

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Is(t *testing.T) {
	assert.True(t, IsDuplicate(ErrDuplicateStudent))
	assert.True(t, IsNotFound(ErrLessonAbsent))
	assert.True(t, IsStudentNotFound(ErrLessonStudentAbsent))
	assert.False(t, IsNotFound(ErrLessonStudentAbsent))

	wrapped := WrapError("logic", "Execute", ErrStorage, "Could not save", ErrDuplicateLesson)
	assert.ErrorIs(t, wrapped, ErrStorage)
	assert.ErrorIs(t, wrapped, ErrDuplicateEntity)
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, "boom", UserMessage(errors.New("boom")))
	assert.Equal(t, PhoneConstraints, UserMessage(NewValidationError("phone", PhoneConstraints)))

	outer := WrapError("jsonfile", "Load", ErrStorage, "Data file is unusable", ErrDuplicateStudent)
	assert.Equal(t, "Data file is unusable", UserMessage(outer))
}

func TestDomainError_Error(t *testing.T) {
	err := NewDomainError("student", "Add", ErrDuplicateEntity, "exists")
	assert.Equal(t, "student.Add: exists", err.Error())

	wrapped := WrapError("redis", "Load", ErrStorage, "unreadable", errors.New("eof"))
	assert.Equal(t, "redis.Load: unreadable: eof", wrapped.Error())
}
