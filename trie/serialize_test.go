package trie

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteToSortedOnePerLine(t *testing.T) {
	tr := NewFromWords("banana", "apple")

	var buf bytes.Buffer
	n, err := tr.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, "apple\nbanana\n", buf.String())
}

func TestRoundTrip(t *testing.T) {
	tr1 := NewFromWords("apple", "banana")

	var buf bytes.Buffer
	_, err := tr1.WriteTo(&buf)
	require.NoError(t, err)

	tr2 := New()
	_, err = tr2.ReadFrom(&buf)
	require.NoError(t, err)

	require.True(t, tr2.Search("apple"))
	require.True(t, tr2.Search("banana"))
	require.False(t, tr2.Search("cherry"))
	require.True(t, tr1.Equal(tr2))
}

func TestReadFromAccumulates(t *testing.T) {
	tr := NewFromWords("existing")

	n, err := tr.ReadFrom(strings.NewReader("apple\n\nbanana\n"))
	require.NoError(t, err)
	require.Equal(t, int64(len("apple\n\nbanana\n")), n)

	require.True(t, tr.Search("existing"))
	require.True(t, tr.Search("apple"))
	require.True(t, tr.Search("banana"))
	require.Equal(t, 3, tr.Len())
}

func TestWriteEmptyTrie(t *testing.T) {
	var buf bytes.Buffer
	n, err := New().WriteTo(&buf)
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, buf.Len())
}
