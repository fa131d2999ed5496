package book

// WithNextInSeries returns a copy of the book whose nextInSeries field
// is set to v. The receiver is left unchanged, so earlier versions of
// the book stay valid wherever they are still referenced. There is no
// operation to clear the field back to absent.
func (b Book) WithNextInSeries(v string) Book {
	next := b
	next.genres = b.Genres()
	next.rating = copyOptInt(b.rating)
	next.nextInSeries = &v
	return next
}

// FindByAuthor returns the books whose author matches exactly,
// case-sensitive, preserving the original relative order. The input
// slice is never modified and every call allocates a fresh result.
func FindByAuthor(books []Book, author string) []Book {
	var out []Book
	for _, b := range books {
		if b.author == author {
			out = append(out, b)
		}
	}
	return out
}

// FindByGenre returns the books whose genre list contains g,
// preserving the original relative order.
func FindByGenre(books []Book, g Genre) []Book {
	var out []Book
	for _, b := range books {
		if b.HasGenre(g) {
			out = append(out, b)
		}
	}
	return out
}

// FindByAuthorAndGenre filters by author first, then by genre on the
// reduced set. Both predicates are independent, so the order only
// matters for doing the narrower pass first.
func FindByAuthorAndGenre(books []Book, author string, g Genre) []Book {
	return FindByGenre(FindByAuthor(books, author), g)
}
