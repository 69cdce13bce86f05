package parser

import (
	"github.com/tutorhub/tutorhub/internal/domain/shared"
)

// optional parses the value of p with parse when p is present. The result is nil
// when p is absent.
func optional[T any](m ArgumentMultimap, p Prefix, parse func(string) (T, error)) (*T, error) {
	raw, ok := m.Value(p)
	if !ok {
		return nil, nil
	}
	v, err := parse(raw)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// required parses the value of p, which the caller has checked is present.
func required[T any](m ArgumentMultimap, p Prefix, parse func(string) (T, error)) (T, error) {
	raw, _ := m.Value(p)
	return parse(raw)
}

// parseTags parses every t/ value.
func parseTags(raw []string) ([]shared.Tag, error) {
	tags := make([]shared.Tag, 0, len(raw))
	for _, r := range raw {
		t, err := shared.NewTag(r)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// parseTagsForEdit returns nil when no t/ was given and an empty non-nil slice
// when the only t/ is empty, which clears the tags.
func parseTagsForEdit(m ArgumentMultimap) ([]shared.Tag, error) {
	raw := m.AllValues(PrefixTag)
	if len(raw) == 0 {
		return nil, nil
	}
	if len(raw) == 1 && raw[0] == "" {
		return []shared.Tag{}, nil
	}
	return parseTags(raw)
}
