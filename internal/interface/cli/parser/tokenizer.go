package parser

import (
	"sort"
	"strings"

	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// Prefix marks the start of an argument, e.g. "n/" in "n/Alex Yeoh".
type Prefix string

// Argument prefixes.
const (
	PrefixName          Prefix = "n/"
	PrefixPhone         Prefix = "p/"
	PrefixEmail         Prefix = "e/"
	PrefixAddress       Prefix = "a/"
	PrefixSubject       Prefix = "s/"
	PrefixTag           Prefix = "t/"
	PrefixDate          Prefix = "d/"
	PrefixTime          Prefix = "tm/"
	PrefixAssignment    Prefix = "as/"
	PrefixNewAssignment Prefix = "nas/"
)

// ══════════════════════════════════════════════════════════════════════════════
// ARGUMENT MULTIMAP
// ══════════════════════════════════════════════════════════════════════════════

// ArgumentMultimap holds the values found after each prefix, in input order,
// and the preamble: the text before the first prefix.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the text before the first prefix, trimmed.
func (m ArgumentMultimap) Preamble() string { return m.preamble }

// Value returns the last value given for p.
func (m ArgumentMultimap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[len(vs)-1], true
}

// AllValues returns every value given for p.
func (m ArgumentMultimap) AllValues(p Prefix) []string {
	return append([]string(nil), m.values[p]...)
}

// Has reports whether p appeared at least once.
func (m ArgumentMultimap) Has(p Prefix) bool {
	return len(m.values[p]) > 0
}

// HasAll reports whether every prefix appeared.
func (m ArgumentMultimap) HasAll(ps ...Prefix) bool {
	for _, p := range ps {
		if !m.Has(p) {
			return false
		}
	}
	return true
}

// VerifyNoDuplicatePrefixesFor rejects single-valued prefixes given more than once.
func (m ArgumentMultimap) VerifyNoDuplicatePrefixesFor(ps ...Prefix) error {
	var dups []string
	for _, p := range ps {
		if len(m.values[p]) > 1 {
			dups = append(dups, string(p))
		}
	}
	if len(dups) == 0 {
		return nil
	}
	return shared.NewDomainError("parser", "Tokenize", shared.ErrInvalidCommand,
		"Multiple values specified for the following single-valued field(s): "+strings.Join(dups, " "))
}

// ══════════════════════════════════════════════════════════════════════════════
// TOKENIZER
// ══════════════════════════════════════════════════════════════════════════════

type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args on the given prefixes. A prefix only counts when it
// starts the input or follows whitespace, so "as/" inside "nas/" is not split.
func Tokenize(args string, prefixes ...Prefix) ArgumentMultimap {
	padded := " " + args
	var positions []prefixPosition
	for _, p := range prefixes {
		needle := " " + string(p)
		from := 0
		for {
			i := strings.Index(padded[from:], needle)
			if i < 0 {
				break
			}
			start := from + i + 1
			positions = append(positions, prefixPosition{prefix: p, start: start})
			from = start
		}
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].start < positions[j].start })

	m := ArgumentMultimap{values: make(map[Prefix][]string)}
	end := len(padded)
	if len(positions) > 0 {
		end = positions[0].start
	}
	m.preamble = strings.TrimSpace(padded[:end])

	for i, pos := range positions {
		valueEnd := len(padded)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(padded[pos.start+len(pos.prefix) : valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}
