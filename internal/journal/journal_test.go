package journal_test

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LISSConsulting/LISSTech.QueryDeck/internal/journal"
)

func TestAppendAndEntries(t *testing.T) {
	j, err := journal.Open(t.TempDir(), nil)
	require.NoError(t, err)
	defer func() { _ = j.Close() }()

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, j.Append(journal.Entry{Timestamp: now, Query: "SELECT * FROM products;", Matched: true, Catalog: "All Products", Rows: 77}))
	require.NoError(t, j.Append(journal.Entry{Timestamp: now, Query: "garbage input", Rows: 77}))

	got, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "All Products", got[0].Catalog)
	assert.True(t, got[0].Matched)
	assert.Equal(t, "garbage input", got[1].Query)
	assert.False(t, got[1].Matched)
	assert.True(t, got[1].Timestamp.Equal(now))
}

func TestEntries_SkipsMalformed(t *testing.T) {
	dir := t.TempDir()
	j, err := journal.Open(dir, nil)
	require.NoError(t, err)
	defer func() { _ = j.Close() }()

	require.NoError(t, j.Append(journal.Entry{Query: "a"}))
	f, err := os.OpenFile(j.Path(), os.O_APPEND|os.O_WRONLY, 0644)
	require.NoError(t, err)
	_, err = f.WriteString("{broken\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, j.Append(journal.Entry{Query: "b"}))

	got, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Query)
	assert.Equal(t, "b", got[1].Query)
}

func TestTrim(t *testing.T) {
	j, err := journal.Open(t.TempDir(), nil)
	require.NoError(t, err)
	defer func() { _ = j.Close() }()

	for i := 0; i < 10; i++ {
		require.NoError(t, j.Append(journal.Entry{Query: fmt.Sprintf("q%d", i)}))
	}
	require.NoError(t, j.Trim(3))

	got, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "q7", got[0].Query)
	assert.Equal(t, "q9", got[2].Query)

	// Appends after a trim land at the end.
	require.NoError(t, j.Append(journal.Entry{Query: "q10"}))
	got, err = j.Entries()
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "q10", got[3].Query)
}

func TestTrim_NoLimit(t *testing.T) {
	j, err := journal.Open(t.TempDir(), nil)
	require.NoError(t, err)
	defer func() { _ = j.Close() }()

	require.NoError(t, j.Append(journal.Entry{Query: "a"}))
	require.NoError(t, j.Trim(0))
	got, err := j.Entries()
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestReopenAppends(t *testing.T) {
	dir := t.TempDir()
	j, err := journal.Open(dir, nil)
	require.NoError(t, err)
	require.NoError(t, j.Append(journal.Entry{Query: "first"}))
	require.NoError(t, j.Close())

	j, err = journal.Open(dir, nil)
	require.NoError(t, err)
	defer func() { _ = j.Close() }()
	require.NoError(t, j.Append(journal.Entry{Query: "second"}))

	got, err := j.Entries()
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Query)
}
