package editor

import (
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fruit struct {
	ID     int
	Name   string
	Origin string
	Stock  int
}

type fruitBinding struct{}

func (fruitBinding) IDField() string   { return "id" }
func (fruitBinding) ID(f fruit) string { return strconv.Itoa(f.ID) }
func (fruitBinding) Encode(f fruit) Form {
	return Form{"id": strconv.Itoa(f.ID), "name": f.Name, "origin": f.Origin, "stock": strconv.Itoa(f.Stock)}
}

func (fruitBinding) Decode(form Form) (fruit, FieldErrors) {
	errs := FieldErrors{}
	f := fruit{Name: strings.TrimSpace(form["name"]), Origin: strings.TrimSpace(form["origin"])}
	if f.Name == "" {
		errs["name"] = "required"
	}
	if raw := strings.TrimSpace(form["stock"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs["stock"] = "must be a number"
		}
		f.Stock = n
	}
	if raw := strings.TrimSpace(form["id"]); raw != "" {
		f.ID, _ = strconv.Atoi(raw)
	}
	if f.Origin == "" {
		f.Origin = "Chile"
	}
	return f, errs
}

func (fruitBinding) Assign(f fruit, collection []fruit) fruit {
	max := 0
	for _, c := range collection {
		if c.ID > max {
			max = c.ID
		}
	}
	f.ID = max + 1
	return f
}

func seed() []fruit {
	return []fruit{{ID: 1, Name: "Manzana", Origin: "Chile", Stock: 30}, {ID: 2, Name: "Pera", Origin: "Perú", Stock: 5}}
}

func TestEditor_StartsInCreateMode(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	state := ed.State()
	assert.Equal(t, ModeCreate, state.Mode)
	assert.False(t, state.IDReadOnly)
	assert.Empty(t, state.Draft)
	assert.Equal(t, "id", state.IdentifierName)
}

func TestEditor_CreateAppendsWithFreshIDAndDefaults(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	require.NoError(t, ed.Fill(Form{"name": "Kiwi", "stock": "12"}))

	original := seed()
	commit, err := ed.Submit(original)
	require.NoError(t, err)
	assert.True(t, commit.Created)
	assert.True(t, commit.Applied)
	require.Len(t, commit.Collection, 3)
	assert.Equal(t, fruit{ID: 3, Name: "Kiwi", Origin: "Chile", Stock: 12}, commit.Record)
	assert.Equal(t, commit.Record, commit.Collection[2])
	assert.Len(t, original, 2)
	assert.Equal(t, ModeCreate, ed.State().Mode)
	assert.Empty(t, ed.State().Draft)
}

func TestEditor_ValidationFailureKeepsDraft(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	require.NoError(t, ed.Fill(Form{"stock": "abc"}))

	_, err := ed.Submit(seed())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "name")
	assert.Contains(t, verr.Fields, "stock")

	state := ed.State()
	assert.Equal(t, "abc", state.Draft["stock"])
	assert.Contains(t, state.FieldErrors, "name")
}

func TestEditor_PrepareKeepsStateUntilConfirm(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	ed.Select(seed()[1])
	require.NoError(t, ed.Set("stock", "40"))

	commit, err := ed.Prepare(seed())
	require.NoError(t, err)
	assert.True(t, commit.Applied)
	assert.Equal(t, 40, commit.Collection[1].Stock)

	state := ed.State()
	assert.Equal(t, ModeEditing, state.Mode)
	assert.Equal(t, "2", state.EditingID)
	assert.Equal(t, "40", state.Draft["stock"])

	ed.Confirm()
	assert.Equal(t, ModeCreate, ed.State().Mode)
	assert.Empty(t, ed.State().Draft)
}

func TestEditor_SelectPrefillsAndLocksIdentifier(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	ed.Select(seed()[1])

	state := ed.State()
	assert.Equal(t, ModeEditing, state.Mode)
	assert.Equal(t, "2", state.EditingID)
	assert.True(t, state.IDReadOnly)
	assert.Equal(t, "Pera", state.Draft["name"])

	require.ErrorIs(t, ed.Set("id", "99"), ErrIdentifierReadOnly)
	require.ErrorIs(t, ed.Fill(Form{"id": "99", "name": "x"}), ErrIdentifierReadOnly)
	assert.Equal(t, "Pera", ed.State().Draft["name"])
	require.NoError(t, ed.Set("id", "2"))
}

func TestEditor_EditReplacesOnlyTarget(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	records := seed()
	ed.Select(records[0])
	require.NoError(t, ed.Set("name", "Manzana Verde"))

	commit, err := ed.Submit(records)
	require.NoError(t, err)
	assert.True(t, commit.Applied)
	assert.False(t, commit.Created)
	require.Len(t, commit.Collection, 2)
	assert.Equal(t, "Manzana Verde", commit.Collection[0].Name)
	assert.Equal(t, 1, commit.Collection[0].ID)
	assert.Equal(t, records[1], commit.Collection[1])
	assert.Equal(t, "Manzana", records[0].Name)
	assert.Equal(t, ModeCreate, ed.State().Mode)
}

func TestEditor_EditOfVanishedRecordIsNoop(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	ed.Select(fruit{ID: 42, Name: "Ghost"})

	records := seed()
	commit, err := ed.Submit(records)
	require.NoError(t, err)
	assert.False(t, commit.Applied)
	assert.Equal(t, records, commit.Collection)
	assert.Equal(t, ModeCreate, ed.State().Mode)
	assert.False(t, ed.State().IDReadOnly)
}

func TestEditor_CancelResets(t *testing.T) {
	ed := New[fruit](fruitBinding{})
	ed.Select(seed()[0])
	require.NoError(t, ed.Set("name", ""))
	_, err := ed.Submit(seed())
	require.Error(t, err)

	ed.Cancel()
	state := ed.State()
	assert.Equal(t, ModeCreate, state.Mode)
	assert.Empty(t, state.Draft)
	assert.Empty(t, state.FieldErrors)
	assert.False(t, state.IDReadOnly)
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	err := &ValidationError{Fields: FieldErrors{"b": "two", "a": "one"}}
	assert.Equal(t, "validation failed: a: one; b: two", err.Error())
}

func TestSessions_IsolatesKeys(t *testing.T) {
	sessions := NewSessions[fruit](fruitBinding{})
	require.NoError(t, sessions.With("alice", func(ed *Editor[fruit]) error {
		ed.Select(seed()[0])
		return nil
	}))

	var bobMode, aliceMode Mode
	require.NoError(t, sessions.With("bob", func(ed *Editor[fruit]) error {
		bobMode = ed.State().Mode
		return nil
	}))
	require.NoError(t, sessions.With("alice", func(ed *Editor[fruit]) error {
		aliceMode = ed.State().Mode
		return nil
	}))
	assert.Equal(t, ModeCreate, bobMode)
	assert.Equal(t, ModeEditing, aliceMode)

	sessions.Drop("alice")
	require.NoError(t, sessions.With("alice", func(ed *Editor[fruit]) error {
		aliceMode = ed.State().Mode
		return nil
	}))
	assert.Equal(t, ModeCreate, aliceMode)
}

func TestSessions_ConcurrentUse(t *testing.T) {
	sessions := NewSessions[fruit](fruitBinding{})
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = sessions.With("shared", func(ed *Editor[fruit]) error {
				return ed.Set("name", strconv.Itoa(i))
			})
		}(i)
	}
	wg.Wait()
	require.NoError(t, sessions.With("shared", func(ed *Editor[fruit]) error {
		assert.NotEmpty(t, ed.State().Draft["name"])
		return nil
	}))
}
