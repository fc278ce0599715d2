package bst

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterateAscending(t *testing.T) {
	re := require.New(t)
	tr := New(10, 5, 15, 3, 7, 12, 18)

	var got []int
	for it := tr.Begin(); it.Valid(); it.Next() {
		got = append(got, it.Value())
	}
	re.Equal([]int{3, 5, 7, 10, 12, 15, 18}, got)
}

func TestIterateBidirectional(t *testing.T) {
	re := require.New(t)
	tr := New(10, 5, 15, 3, 7, 12, 18)

	it := tr.End()
	it.Prev()
	re.Equal(18, it.Value())
	it.Prev()
	re.Equal(15, it.Value())
	it.Next()
	re.Equal(18, it.Value())

	// Advancing past the maximum lands on the end sentinel, and walking
	// back resumes at the maximum.
	it.Next()
	re.False(it.Valid())
	re.Equal(tr.End(), it)
	it.Prev()
	re.Equal(18, it.Value())
}

func TestIterateDescending(t *testing.T) {
	re := require.New(t)
	tr := New(10, 5, 15, 3, 7, 12, 18)

	var got []int
	it := tr.End()
	for it.Prev(); it.Valid(); it.Prev() {
		got = append(got, it.Value())
	}
	re.Equal([]int{18, 15, 12, 10, 7, 5, 3}, got)
}

func TestIteratorEquality(t *testing.T) {
	re := require.New(t)
	tr := New(10, 5, 15)

	re.Equal(tr.Find(10), tr.Find(10))
	re.NotEqual(tr.Find(10), tr.Find(5))
	re.Equal(tr.End(), tr.Find(99))

	it := tr.Begin()
	it.Next()
	re.Equal(tr.Find(10), it)
}

func TestIteratorEmptyTree(t *testing.T) {
	re := require.New(t)
	tr := New[int]()

	it := tr.Begin()
	re.False(it.Valid())

	// Prev from end of an empty tree stays on the sentinel.
	it = tr.End()
	it.Prev()
	re.False(it.Valid())
}

func TestIteratorRef(t *testing.T) {
	re := require.New(t)
	tr := New("b ", "a ", "c ")

	// In-place edit that keeps the ordering intact.
	it := tr.Find("b ")
	*it.Ref() = "b!"
	re.Equal([]string{"a ", "b!", "c "}, all(tr))
	re.True(tr.Find("b!").Valid())
}

func TestConstIterator(t *testing.T) {
	re := require.New(t)
	tr := New(10, 5, 15)

	var got []int
	for it := tr.CBegin(); it.Valid(); it.Next() {
		got = append(got, it.Value())
	}
	re.Equal([]int{5, 10, 15}, got)

	// One-way conversion from the mutable form.
	cit := tr.Find(10).Const()
	re.Equal(10, cit.Value())
	cit.Prev()
	re.Equal(5, cit.Value())

	end := tr.CEnd()
	re.False(end.Valid())
	end.Prev()
	re.Equal(15, end.Value())
}
