package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newTestFile(t *testing.T) (*File[record], string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	return NewFile[record](path, zap.NewNop()), path
}

func TestGetAllLazilyCreatesEmptyCollection(t *testing.T) {
	f, path := newTestFile(t)

	items, err := f.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestGetAllCreatesMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "records.json")
	f := NewFile[record](path, zap.NewNop())

	_, err := f.GetAll()
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestGetAllDegradesOnCorruptContent(t *testing.T) {
	f, path := newTestFile(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	items, err := f.GetAll()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAddAppendsAndPersists(t *testing.T) {
	f, _ := newTestFile(t)

	first, err := f.Add(record{ID: "1", Name: "uno"})
	require.NoError(t, err)
	assert.Equal(t, record{ID: "1", Name: "uno"}, first)

	_, err = f.Add(record{ID: "2", Name: "dos"})
	require.NoError(t, err)

	items, err := f.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
}

func TestRoundTripPreservesInsertionOrder(t *testing.T) {
	f, path := newTestFile(t)
	for _, id := range []string{"c", "a", "b"} {
		_, err := f.Add(record{ID: id})
		require.NoError(t, err)
	}

	// a fresh store over the same file must see the same order
	reloaded := NewFile[record](path, zap.NewNop())
	items, err := reloaded.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "c", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
	assert.Equal(t, "b", items[2].ID)
}

func TestUpdateMergesFirstMatchOnly(t *testing.T) {
	f, _ := newTestFile(t)
	_, err := f.Add(record{ID: "1", Name: "uno"})
	require.NoError(t, err)
	_, err = f.Add(record{ID: "1", Name: "duplicado"})
	require.NoError(t, err)

	updated, err := f.Update(
		func(r record) bool { return r.ID == "1" },
		func(r record) record { r.Name = "cambiado"; return r },
	)
	require.NoError(t, err)
	assert.Equal(t, "cambiado", updated.Name)

	items, err := f.GetAll()
	require.NoError(t, err)
	assert.Equal(t, "cambiado", items[0].Name)
	assert.Equal(t, "duplicado", items[1].Name)
}

func TestUpdateNoMatchLeavesFileUntouched(t *testing.T) {
	f, path := newTestFile(t)
	_, err := f.Add(record{ID: "1", Name: "uno"})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = f.Update(
		func(r record) bool { return r.ID == "missing" },
		func(r record) record { r.Name = "nope"; return r },
	)
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestDeleteRemovesAllMatches(t *testing.T) {
	f, _ := newTestFile(t)
	for _, r := range []record{{ID: "1"}, {ID: "2"}, {ID: "1"}} {
		_, err := f.Add(r)
		require.NoError(t, err)
	}

	removed, err := f.Delete(func(r record) bool { return r.ID == "1" })
	require.NoError(t, err)
	assert.True(t, removed)

	items, err := f.GetAll()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ID)
}

func TestDeleteNoMatchLeavesFileByteIdentical(t *testing.T) {
	f, path := newTestFile(t)
	_, err := f.Add(record{ID: "1"})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	removed, err := f.Delete(func(r record) bool { return r.ID == "missing" })
	require.NoError(t, err)
	assert.False(t, removed)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestFindReturnsFirstMatchWithoutSideEffects(t *testing.T) {
	f, path := newTestFile(t)
	_, err := f.Add(record{ID: "1", Name: "uno"})
	require.NoError(t, err)

	before, err := os.ReadFile(path)
	require.NoError(t, err)

	found, err := f.Find(func(r record) bool { return r.ID == "1" })
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "uno", found.Name)

	missing, err := f.Find(func(r record) bool { return r.ID == "nope" })
	require.NoError(t, err)
	assert.Nil(t, missing)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestSaveAllReplacesWholeCollection(t *testing.T) {
	f, path := newTestFile(t)
	_, err := f.Add(record{ID: "old"})
	require.NoError(t, err)

	require.NoError(t, f.SaveAll([]record{{ID: "new-1"}, {ID: "new-2"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var items []record
	require.NoError(t, json.Unmarshal(data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "new-1", items[0].ID)
}

func TestSaveAllLeavesNoTempFilesBehind(t *testing.T) {
	f, path := newTestFile(t)
	require.NoError(t, f.SaveAll([]record{{ID: "1"}}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
