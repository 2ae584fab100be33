// Package filter narrows in-memory collections with composable predicates.
package filter

import (
	"strings"
)

// Predicate reports whether a record passes one filter condition.
// A nil Predicate means the condition is inactive.
type Predicate[T any] func(T) bool

// Field extracts a string value from a record; ok is false when the field is absent.
type Field[T any] func(T) (value string, ok bool)

// BoolField extracts a boolean value from a record; ok is false when the field is absent.
type BoolField[T any] func(T) (value bool, ok bool)

// Apply returns the records of items that satisfy every active predicate, in their original order.
// items is never modified and the result never aliases it.
func Apply[T any](items []T, predicates ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(predicates))
	for _, p := range predicates {
		if p != nil {
			active = append(active, p)
		}
	}
	result := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, active) {
			result = append(result, item)
		}
	}
	return result
}

func matchesAll[T any](item T, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(item) {
			return false
		}
	}
	return true
}

// Exact matches records whose field equals want. An empty want or one equal to sentinel
// disables the predicate.
func Exact[T any](want, sentinel string, field Field[T]) Predicate[T] {
	want = strings.TrimSpace(want)
	if want == "" || want == sentinel || field == nil {
		return nil
	}
	return func(item T) bool {
		value, ok := field(item)
		return ok && value == want
	}
}

// Contains matches records whose fields, joined with a space, contain query case-insensitively.
// Absent fields are skipped; a record with no present field never matches.
func Contains[T any](query string, fields ...Field[T]) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || len(fields) == 0 {
		return nil
	}
	return func(item T) bool {
		parts := make([]string, 0, len(fields))
		for _, field := range fields {
			if field == nil {
				continue
			}
			if value, ok := field(item); ok {
				parts = append(parts, value)
			}
		}
		if len(parts) == 0 {
			return false
		}
		return strings.Contains(strings.ToLower(strings.Join(parts, " ")), needle)
	}
}

// Flag matches records whose boolean field agrees with state. TriStateEither disables it.
func Flag[T any](state TriState, field BoolField[T]) Predicate[T] {
	if state == TriStateEither || field == nil {
		return nil
	}
	want := state == TriStateYes
	return func(item T) bool {
		value, ok := field(item)
		return ok && value == want
	}
}

// Present adapts a plain accessor into a Field that treats the empty string as absent.
func Present[T any](get func(T) string) Field[T] {
	return func(item T) (string, bool) {
		value := get(item)
		return value, value != ""
	}
}
