package book

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	t.Run("valid inputs produce a fully populated book", func(t *testing.T) {
		rating := 8
		next := "The Two Towers"
		b, err := Map("The Fellowship of the Ring", "J.R.R. Tolkien", "978-0-261-10235-4", 423,
			"Allen & Unwin", []Genre{Fantasy}, &rating, &next)
		require.NoError(t, err)

		assert.Equal(t, "The Fellowship of the Ring", b.Name())
		assert.Equal(t, "J.R.R. Tolkien", b.Author())
		assert.Equal(t, "978-0-261-10235-4", b.ISBN())
		assert.Equal(t, 423, b.PageCount())
		assert.Equal(t, "Allen & Unwin", b.Publisher())
		assert.Equal(t, []Genre{Fantasy}, b.Genres())

		got, ok := b.Rating()
		assert.True(t, ok)
		assert.Equal(t, 8, got)
		seq, ok := b.NextInSeries()
		assert.True(t, ok)
		assert.Equal(t, "The Two Towers", seq)
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		b, err := Map("T", "A", "1-4028-9462-7", 10, "P", nil, nil, nil)
		require.NoError(t, err)

		_, ok := b.Rating()
		assert.False(t, ok)
		_, ok = b.NextInSeries()
		assert.False(t, ok)
		assert.Empty(t, b.Genres())
	})

	t.Run("empty genre list is allowed by default", func(t *testing.T) {
		_, err := Map("T", "A", "1402894627", 1, "P", []Genre{}, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("fails fast on author before other invalid fields", func(t *testing.T) {
		// name, isbn and pageCount are also invalid; author is checked first.
		_, err := Map("", "", "123", 0, "", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		require.True(t, ok)
		assert.Equal(t, "author", inv.Field)
		assert.Equal(t, ReasonEmptyOrWhitespace, inv.Reason)
	})

	t.Run("empty name fails after author passes", func(t *testing.T) {
		_, err := Map("", "a", "1234567890", 5, "p", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		require.True(t, ok)
		assert.Equal(t, "name", inv.Field)
	})

	t.Run("bad isbn fails after name passes", func(t *testing.T) {
		_, err := Map("t", "a", "123", 0, "", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		require.True(t, ok)
		assert.Equal(t, "isbn", inv.Field)
		assert.Equal(t, ReasonInvalidISBNLength, inv.Reason)
	})

	t.Run("zero pages fails after isbn passes", func(t *testing.T) {
		_, err := Map("t", "a", "1234567890", 0, "", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		require.True(t, ok)
		assert.Equal(t, "pageCount", inv.Field)
		assert.Equal(t, ReasonNonPositivePageCount, inv.Reason)
	})

	t.Run("empty publisher is checked last", func(t *testing.T) {
		_, err := Map("t", "a", "1234567890", 1, "  ", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		require.True(t, ok)
		assert.Equal(t, "publisher", inv.Field)
	})

	t.Run("page count boundaries", func(t *testing.T) {
		_, err := Map("t", "a", "1234567890", 0, "p", nil, nil, nil)
		assert.Error(t, err)
		_, err = Map("t", "a", "1234567890", -1, "p", nil, nil, nil)
		assert.Error(t, err)
		_, err = Map("t", "a", "1234567890", 1, "p", nil, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("book does not alias caller-owned inputs", func(t *testing.T) {
		genres := []Genre{Horror, Drama}
		rating := 7
		b, err := Map("t", "a", "1234567890", 1, "p", genres, &rating, nil)
		require.NoError(t, err)

		genres[0] = Romance
		rating = 2
		assert.Equal(t, []Genre{Horror, Drama}, b.Genres())
		got, _ := b.Rating()
		assert.Equal(t, 7, got)

		// Mutating the accessor's return value must not leak back in.
		out := b.Genres()
		out[1] = Poetry
		assert.Equal(t, []Genre{Horror, Drama}, b.Genres())
	})
}

func TestFactoryRequireGenres(t *testing.T) {
	strict := NewFactory(RequireGenres())

	t.Run("empty genre list rejected", func(t *testing.T) {
		_, err := strict.Map("t", "a", "1234567890", 1, "p", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		assert.True(t, ok)
		assert.Equal(t, "genres", inv.Field)
		assert.Equal(t, ReasonNoGenres, inv.Reason)
	})

	t.Run("one genre is enough", func(t *testing.T) {
		_, err := strict.Map("t", "a", "1234567890", 1, "p", []Genre{Drama}, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("field validators still run first", func(t *testing.T) {
		_, err := strict.Map("t", "", "1234567890", 1, "p", nil, nil, nil)
		inv, ok := AsInvalidArgument(err)
		assert.True(t, ok)
		assert.Equal(t, "author", inv.Field)
	})
}

func TestBookEqual(t *testing.T) {
	mk := func() Book {
		rating := 5
		b, err := Map("t", "a", "1234567890", 1, "p", []Genre{Horror}, &rating, nil)
		require.NoError(t, err)
		return b
	}

	t.Run("structurally equal books", func(t *testing.T) {
		assert.True(t, mk().Equal(mk()))
	})

	t.Run("optional presence matters", func(t *testing.T) {
		unrated, err := Map("t", "a", "1234567890", 1, "p", []Genre{Horror}, nil, nil)
		require.NoError(t, err)
		assert.False(t, mk().Equal(unrated))
	})

	t.Run("genre order matters", func(t *testing.T) {
		ab, err := Map("t", "a", "1234567890", 1, "p", []Genre{Horror, Drama}, nil, nil)
		require.NoError(t, err)
		ba, err := Map("t", "a", "1234567890", 1, "p", []Genre{Drama, Horror}, nil, nil)
		require.NoError(t, err)
		assert.False(t, ab.Equal(ba))
	})
}
