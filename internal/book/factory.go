package book

// Factory is the single authorized constructor for Book. Construction
// is atomic: either every validator passes and a fully populated Book
// is returned, or the first failure is returned and no Book exists.
type Factory struct {
	requireGenres bool
}

// FactoryOption configures optional validation rules on a Factory.
type FactoryOption func(*Factory)

// RequireGenres makes the factory reject books with an empty genre
// list. The canonical rules allow an empty list; this mirrors the
// stricter variant some catalogs want.
func RequireGenres() FactoryOption {
	return func(f *Factory) { f.requireGenres = true }
}

// NewFactory creates a factory with the canonical validation rules,
// adjusted by any options.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Map assembles a Book from raw inputs, running the field validators
// in a fixed order: author, name, isbn, pageCount, publisher. The
// first failing validator wins; later fields are not inspected.
// genres, rating and nextInSeries pass through without semantic checks
// (unless RequireGenres is set) and are copied, so the returned Book
// shares no memory with the caller's arguments.
func (f *Factory) Map(name, author, isbn string, pageCount int, publisher string, genres []Genre, rating *int, nextInSeries *string) (Book, error) {
	author, err := NonEmptyString("author", author)
	if err != nil {
		return Book{}, err
	}
	name, err = NonEmptyString("name", name)
	if err != nil {
		return Book{}, err
	}
	isbn, err = ISBN("isbn", isbn)
	if err != nil {
		return Book{}, err
	}
	pageCount, err = PositivePageCount("pageCount", pageCount)
	if err != nil {
		return Book{}, err
	}
	publisher, err = NonEmptyString("publisher", publisher)
	if err != nil {
		return Book{}, err
	}
	if f.requireGenres && len(genres) == 0 {
		return Book{}, &InvalidArgumentError{Field: "genres", Reason: ReasonNoGenres}
	}

	var genresCopy []Genre
	if genres != nil {
		genresCopy = make([]Genre, len(genres))
		copy(genresCopy, genres)
	}
	return Book{
		isbn:         isbn,
		name:         name,
		author:       author,
		pageCount:    pageCount,
		publisher:    publisher,
		genres:       genresCopy,
		nextInSeries: copyOptString(nextInSeries),
		rating:       copyOptInt(rating),
	}, nil
}

var defaultFactory = NewFactory()

// Map constructs a Book with the canonical validation rules.
func Map(name, author, isbn string, pageCount int, publisher string, genres []Genre, rating *int, nextInSeries *string) (Book, error) {
	return defaultFactory.Map(name, author, isbn, pageCount, publisher, genres, rating, nextInSeries)
}

func copyOptString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func copyOptInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
