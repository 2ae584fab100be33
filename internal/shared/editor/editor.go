// Package editor tracks the create/edit lifecycle of a single record bound to form fields.
package editor

import (
	"errors"
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Mode is the editor state.
type Mode string

const (
	ModeCreate  Mode = "create"
	ModeEditing Mode = "editing"
)

// ErrIdentifierReadOnly is returned when the identifier field is written while editing.
var ErrIdentifierReadOnly = errors.New("identifier is read-only while editing")

// Form holds raw field inputs keyed by field name.
type Form map[string]string

// FieldErrors maps field names to validation messages.
type FieldErrors map[string]string

// ValidationError rejects a submit. The draft is left untouched.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Binding adapts an entity type to the editor.
type Binding[T any] interface {
	// IDField names the form field carrying the record identifier.
	IDField() string
	// ID returns the identifier of record in its form representation.
	ID(record T) string
	// Encode renders record as form fields.
	Encode(record T) Form
	// Decode validates form and builds a record with defaults applied.
	Decode(form Form) (T, FieldErrors)
	// Assign gives a freshly decoded record its identifier before it is added to collection.
	Assign(record T, collection []T) T
}

// State is a snapshot of the editor.
type State struct {
	Mode           Mode        `json:"mode"`
	EditingID      string      `json:"editingId,omitempty"`
	Draft          Form        `json:"draft"`
	FieldErrors    FieldErrors `json:"fieldErrors,omitempty"`
	IDReadOnly     bool        `json:"idReadOnly"`
	IdentifierName string      `json:"identifierField"`
}

// Commit describes the outcome of a successful submit.
type Commit[T any] struct {
	Collection []T
	Record     T
	Created    bool
	// Applied is false when an edit targeted a record no longer in the collection.
	Applied bool
}

// Editor is not safe for concurrent use; see Sessions.
type Editor[T any] struct {
	binding   Binding[T]
	mode      Mode
	editingID string
	draft     Form
	errors    FieldErrors
}

// New returns an editor in create mode with an empty draft.
func New[T any](binding Binding[T]) *Editor[T] {
	return &Editor[T]{binding: binding, mode: ModeCreate, draft: Form{}}
}

// State returns a copy of the current state.
func (e *Editor[T]) State() State {
	state := State{
		Mode:           e.mode,
		EditingID:      e.editingID,
		Draft:          maps.Clone(e.draft),
		IDReadOnly:     e.mode == ModeEditing,
		IdentifierName: e.binding.IDField(),
	}
	if len(e.errors) > 0 {
		state.FieldErrors = maps.Clone(e.errors)
	}
	if state.Draft == nil {
		state.Draft = Form{}
	}
	return state
}

// Select enters edit mode for record and pre-fills the draft from it.
func (e *Editor[T]) Select(record T) {
	e.mode = ModeEditing
	e.editingID = e.binding.ID(record)
	e.draft = maps.Clone(e.binding.Encode(record))
	if e.draft == nil {
		e.draft = Form{}
	}
	e.draft[e.binding.IDField()] = e.editingID
	e.errors = nil
}

// Set writes one draft field.
func (e *Editor[T]) Set(field, value string) error {
	if e.mode == ModeEditing && field == e.binding.IDField() && value != e.editingID {
		return ErrIdentifierReadOnly
	}
	e.draft[field] = value
	return nil
}

// Fill writes several draft fields. It is all-or-nothing.
func (e *Editor[T]) Fill(fields Form) error {
	if e.mode == ModeEditing {
		if v, ok := fields[e.binding.IDField()]; ok && v != e.editingID {
			return ErrIdentifierReadOnly
		}
	}
	for k, v := range fields {
		e.draft[k] = v
	}
	return nil
}

// Cancel discards the draft and returns to create mode.
func (e *Editor[T]) Cancel() {
	e.reset()
}

// Submit validates the draft, commits it into a copy of collection and resets the editor.
// On validation failure it returns a *ValidationError and keeps the draft.
func (e *Editor[T]) Submit(collection []T) (Commit[T], error) {
	commit, err := e.Prepare(collection)
	if err != nil {
		return Commit[T]{}, err
	}
	e.Confirm()
	return commit, nil
}

// Prepare validates the draft and builds the commit without leaving the current mode.
// Callers persist commit.Collection and then call Confirm; if persisting fails the
// draft and edit target are still in place.
func (e *Editor[T]) Prepare(collection []T) (Commit[T], error) {
	record, fieldErrs := e.binding.Decode(maps.Clone(e.draft))
	if len(fieldErrs) > 0 {
		e.errors = fieldErrs
		return Commit[T]{}, &ValidationError{Fields: maps.Clone(fieldErrs)}
	}
	e.errors = nil
	next := append(make([]T, 0, len(collection)+1), collection...)
	if e.mode == ModeEditing {
		return e.commitEdit(next, record), nil
	}
	return e.commitCreate(next, record), nil
}

// Confirm ends a prepared commit and returns to create mode.
func (e *Editor[T]) Confirm() {
	e.reset()
}

func (e *Editor[T]) commitCreate(next []T, record T) Commit[T] {
	record = e.binding.Assign(record, next)
	id := e.binding.ID(record)
	for i := range next {
		if e.binding.ID(next[i]) == id {
			next[i] = record
			return Commit[T]{Collection: next, Record: record, Created: false, Applied: true}
		}
	}
	next = append(next, record)
	return Commit[T]{Collection: next, Record: record, Created: true, Applied: true}
}

func (e *Editor[T]) commitEdit(next []T, record T) Commit[T] {
	for i := range next {
		if e.binding.ID(next[i]) == e.editingID {
			next[i] = record
			return Commit[T]{Collection: next, Record: record, Applied: true}
		}
	}
	return Commit[T]{Collection: next, Record: record, Applied: false}
}

func (e *Editor[T]) reset() {
	e.mode = ModeCreate
	e.editingID = ""
	e.draft = Form{}
	e.errors = nil
}
