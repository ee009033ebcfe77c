package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNullField is returned by patch validation when a non-nullable field
// is explicitly set to null.
var ErrNullField = errors.New("field cannot be null")

type field struct {
	name   string
	isNull bool
}

func notNull(fields ...field) error {
	var bad []string
	for _, f := range fields {
		if f.isNull {
			bad = append(bad, f.name)
		}
	}
	if len(bad) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrNullField, strings.Join(bad, ", "))
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// nullIfEmpty maps both nil and "" to nil.
func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
