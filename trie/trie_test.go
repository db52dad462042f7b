package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertAndSearch(t *testing.T) {
	tr := New()

	require.False(t, tr.Search("apple"))

	tr.Insert("apple")
	require.True(t, tr.Search("apple"))

	// A bare prefix of an inserted word is not a member.
	require.False(t, tr.Search("app"))

	require.True(t, tr.StartsWith("app"))
	require.True(t, tr.StartsWith("apple"))
	require.False(t, tr.StartsWith("banana"))
}

func TestInsertIsIdempotent(t *testing.T) {
	tr := New()
	tr.Insert("apple")
	tr.Insert("apple")

	require.Equal(t, []string{"apple"}, tr.Words())
	require.Equal(t, 1, tr.Len())
}

func TestInsertEmptyWordIsNoOp(t *testing.T) {
	tr := New()
	tr.Insert("")

	require.False(t, tr.Search(""))
	require.False(t, tr.Root().Terminal)
	require.Equal(t, 0, tr.Len())

	// The empty prefix is always present.
	require.True(t, tr.StartsWith(""))
}

func TestNewFromWords(t *testing.T) {
	tr := NewFromWords("apple", "banana", "cherry")

	require.True(t, tr.Search("apple"))
	require.True(t, tr.Search("banana"))
	require.True(t, tr.Search("cherry"))
	require.False(t, tr.Search("orange"))
}

func TestRemove(t *testing.T) {
	tr := NewFromWords("apple", "banana", "bar")

	tr.Remove("banana")
	require.False(t, tr.Search("banana"))
	require.True(t, tr.Search("apple"))
	require.True(t, tr.Search("bar"))

	tr.Remove("bar")
	require.False(t, tr.Search("bar"))
	require.True(t, tr.Search("apple"))

	// Removing an absent word is a no-op.
	tr.Remove("orange")
	require.True(t, tr.Search("apple"))
}

func TestRemovePrunesUnsharedPath(t *testing.T) {
	tr := NewFromWords("banana", "bar")

	tr.Remove("banana")

	// The "ba" prefix is still live via "bar"; the "ban..." tail is gone.
	require.True(t, tr.StartsWith("ba"))
	require.False(t, tr.StartsWith("ban"))
}

func TestRemoveKeepsSharedPrefixWord(t *testing.T) {
	tr := NewFromWords("app", "apple")

	tr.Remove("apple")
	require.True(t, tr.Search("app"))
	require.False(t, tr.StartsWith("appl"))

	tr = NewFromWords("app", "apple")
	tr.Remove("app")
	require.True(t, tr.Search("apple"))
	require.True(t, tr.StartsWith("app"))
	require.False(t, tr.Search("app"))
}

func TestCloneIsIndependent(t *testing.T) {
	tr1 := NewFromWords("apple", "banana")
	tr2 := tr1.Clone()

	require.True(t, tr2.Search("apple"))
	require.True(t, tr2.Search("banana"))
	require.False(t, tr2.Search("orange"))

	tr2.Insert("cherry")
	tr2.Remove("apple")
	require.True(t, tr1.Search("apple"))
	require.False(t, tr1.Search("cherry"))
}

func TestWordsSorted(t *testing.T) {
	tr := NewFromWords("cherry", "app", "apple", "banana")

	require.Equal(t, []string{"app", "apple", "banana", "cherry"}, tr.Words())
}
