// Package publisher holds the publishing-house side of the catalog.
// A Publisher owns the books it published; books never point back at
// their publisher.
package publisher

import (
	"booklib/internal/book"
)

// Publisher is a plain record, not under the validation contract that
// guards book.Book. The Books field is one-directional containment.
type Publisher struct {
	Name          string
	FoundingYear  int
	Founder       string
	Location      string
	ParentCompany *string
	Books         []book.Book
}

// New creates a publisher with an empty catalog.
func New(name string, foundingYear int, founder, location string) *Publisher {
	return &Publisher{
		Name:         name,
		FoundingYear: foundingYear,
		Founder:      founder,
		Location:     location,
	}
}

// AddBook adds a book to the publisher's catalog.
func (p *Publisher) AddBook(b book.Book) {
	p.Books = append(p.Books, b)
}

// Catalog returns a copy of the owned books; mutating the returned
// slice does not affect the publisher.
func (p *Publisher) Catalog() []book.Book {
	out := make([]book.Book, len(p.Books))
	copy(out, p.Books)
	return out
}

// BooksBy returns the owned books written by author.
func (p *Publisher) BooksBy(author string) []book.Book {
	return book.FindByAuthor(p.Books, author)
}

// BooksIn returns the owned books tagged with g.
func (p *Publisher) BooksIn(g book.Genre) []book.Book {
	return book.FindByGenre(p.Books, g)
}
