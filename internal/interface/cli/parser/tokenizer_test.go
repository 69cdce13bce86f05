package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

func TestTokenize(t *testing.T) {
	m := Tokenize(" 1 n/Alex Yeoh  p/123 t/a t/b", PrefixName, PrefixPhone, PrefixTag)

	assert.Equal(t, "1", m.Preamble())
	name, ok := m.Value(PrefixName)
	assert.True(t, ok)
	assert.Equal(t, "Alex Yeoh", name)
	assert.Equal(t, []string{"a", "b"}, m.AllValues(PrefixTag))
	assert.True(t, m.HasAll(PrefixName, PrefixPhone))
	assert.False(t, m.Has(PrefixEmail))
}

func TestTokenize_PrefixMustFollowWhitespace(t *testing.T) {
	m := Tokenize(" 1 as/Essay nas/Long Essay", PrefixAssignment, PrefixNewAssignment)

	assert.Equal(t, []string{"Essay"}, m.AllValues(PrefixAssignment))
	assert.Equal(t, []string{"Long Essay"}, m.AllValues(PrefixNewAssignment))

	m = Tokenize(" n/Bob s/Maths tm/10:00 t/x", PrefixName, PrefixSubject, PrefixTime, PrefixTag)
	tm, _ := m.Value(PrefixTime)
	assert.Equal(t, "10:00", tm)
	assert.Equal(t, []string{"x"}, m.AllValues(PrefixTag))

	m = Tokenize(" a/Blk 1 n/a", PrefixAddress)
	addr, _ := m.Value(PrefixAddress)
	assert.Equal(t, "Blk 1 n/a", addr)
}

func TestTokenize_LastValueWins(t *testing.T) {
	m := Tokenize(" n/First n/Second", PrefixName)

	v, _ := m.Value(PrefixName)
	assert.Equal(t, "Second", v)
	assert.ErrorIs(t, m.VerifyNoDuplicatePrefixesFor(PrefixName), shared.ErrInvalidCommand)
}

func TestTokenize_NoPrefixes(t *testing.T) {
	m := Tokenize("  just text  ", PrefixName)

	assert.Equal(t, "just text", m.Preamble())
	_, ok := m.Value(PrefixName)
	assert.False(t, ok)
	assert.NoError(t, m.VerifyNoDuplicatePrefixesFor(PrefixName))
}
