package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorhub/tutorhub/internal/application/query"
	"github.com/tutorhub/tutorhub/internal/domain/shared"
	"github.com/tutorhub/tutorhub/internal/testutil"
)

func TestStudentExpression(t *testing.T) {
	students := testutil.TypicalStudents()
	alice, benson := students[0], students[1]

	tests := []struct {
		src   string
		alice bool
		ben   bool
	}{
		{`subject == "Physics"`, true, false},
		{`"owesMoney" in tags`, false, true},
		{`pending > 0`, true, false},
		{`"Physics Worksheet" in assignments`, true, false},
		{`name startsWith "B" or email endsWith "@example.com"`, true, true},
		{`subject contains "istry" and len(tags) == 2`, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			p, err := query.StudentExpression(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.alice, p(alice))
			assert.Equal(t, tt.ben, p(benson))
		})
	}
}

func TestStudentExpression_Rejected(t *testing.T) {
	for _, src := range []string{"", "   ", `subject ==`, `unknownVar > 1`, `subject`} {
		_, err := query.StudentExpression(src)
		assert.ErrorIs(t, err, shared.ErrValidation, src)
	}
}

func TestLessonExpression(t *testing.T) {
	lessons := testutil.TypicalLessons()

	p, err := query.LessonExpression(`date >= "2025-03-11" and time < "12:00"`)
	require.NoError(t, err)

	assert.False(t, p(lessons[0]))
	assert.False(t, p(lessons[1]))
	assert.True(t, p(lessons[2]))
}

func TestLessonExpression_ByStudent(t *testing.T) {
	lessons := testutil.TypicalLessons()

	p, err := query.LessonExpression(`student == "Benson Meier"`)
	require.NoError(t, err)

	assert.True(t, p(lessons[1]))
	assert.False(t, p(lessons[0]))
}
