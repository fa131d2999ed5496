package book

// Genre is a category tag attached to a book.
type Genre string

// The closed set of known genres.
const (
	Biography      Genre = "Biography"
	Drama          Genre = "Drama"
	Fantasy        Genre = "Fantasy"
	History        Genre = "History"
	Horror         Genre = "Horror"
	Mystery        Genre = "Mystery"
	Poetry         Genre = "Poetry"
	Romance        Genre = "Romance"
	ScienceFiction Genre = "Science Fiction"
	Thriller       Genre = "Thriller"
)

var knownGenres = map[Genre]bool{
	Biography:      true,
	Drama:          true,
	Fantasy:        true,
	History:        true,
	Horror:         true,
	Mystery:        true,
	Poetry:         true,
	Romance:        true,
	ScienceFiction: true,
	Thriller:       true,
}

// Book is a fully validated, immutable book entity. It can only be
// constructed through a Factory, so a Book value obtained from this
// package always satisfies the field invariants: name, author and
// publisher are non-empty, the page count is positive, and the ISBN
// has 10 or 13 characters once hyphens are stripped.
//
// Book is a value type: it has no identity beyond its fields, and no
// operation in this package mutates an existing Book. Field-level
// changes produce a new value (see WithNextInSeries).
type Book struct {
	isbn         string
	name         string
	author       string
	pageCount    int
	publisher    string
	genres       []Genre
	nextInSeries *string
	rating       *int
}

// ISBN returns the ISBN exactly as it was supplied, hyphens included.
func (b Book) ISBN() string { return b.isbn }

// Name returns the book title.
func (b Book) Name() string { return b.name }

// Author returns the author name.
func (b Book) Author() string { return b.author }

// PageCount returns the page count, always greater than zero.
func (b Book) PageCount() int { return b.pageCount }

// Publisher returns the publisher name.
func (b Book) Publisher() string { return b.publisher }

// Genres returns a copy of the genre list, which may be empty.
func (b Book) Genres() []Genre {
	if b.genres == nil {
		return nil
	}
	out := make([]Genre, len(b.genres))
	copy(out, b.genres)
	return out
}

// HasGenre reports whether g appears in the book's genre list.
func (b Book) HasGenre(g Genre) bool {
	for _, have := range b.genres {
		if have == g {
			return true
		}
	}
	return false
}

// NextInSeries returns the title of the next book in the series, and
// whether one is known.
func (b Book) NextInSeries() (string, bool) {
	if b.nextInSeries == nil {
		return "", false
	}
	return *b.nextInSeries, true
}

// Rating returns the rating and whether the book has been rated.
func (b Book) Rating() (int, bool) {
	if b.rating == nil {
		return 0, false
	}
	return *b.rating, true
}

// Equal reports structural equality: two books are equal when every
// field matches, including genre order and the presence and value of
// the optional fields.
func (b Book) Equal(other Book) bool {
	if b.isbn != other.isbn ||
		b.name != other.name ||
		b.author != other.author ||
		b.pageCount != other.pageCount ||
		b.publisher != other.publisher {
		return false
	}
	if len(b.genres) != len(other.genres) {
		return false
	}
	for i := range b.genres {
		if b.genres[i] != other.genres[i] {
			return false
		}
	}
	if !equalOptString(b.nextInSeries, other.nextInSeries) {
		return false
	}
	return equalOptInt(b.rating, other.rating)
}

func equalOptString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalOptInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
