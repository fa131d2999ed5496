// Package loader reads raw book records from YAML input and routes
// them through the book factory. It never constructs a book.Book by
// any other path: shape checks here are a pre-filter, the factory
// stays the validation gate.
package loader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"booklib/internal/book"
)

// Record is the raw wire shape of a single book entry.
type Record struct {
	Name         string   `yaml:"name" validate:"required"`
	Author       string   `yaml:"author" validate:"required"`
	ISBN         string   `yaml:"isbn" validate:"required,isbn"`
	PageCount    int      `yaml:"page_count" validate:"required,gt=0"`
	Publisher    string   `yaml:"publisher" validate:"required"`
	Genres       []string `yaml:"genres"`
	Rating       *int     `yaml:"rating" validate:"omitempty,gte=0,lte=10"`
	NextInSeries *string  `yaml:"next_in_series"`
}

// ParseFile decodes a YAML list of records.
func ParseFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// ToBook converts the record into a validated Book via the given
// factory. Genre strings must belong to the known set.
func (r Record) ToBook(f *book.Factory) (book.Book, error) {
	var genres []book.Genre
	for _, raw := range r.Genres {
		g, err := book.ParseGenre(raw)
		if err != nil {
			return book.Book{}, err
		}
		genres = append(genres, g)
	}
	return f.Map(r.Name, r.Author, r.ISBN, r.PageCount, r.Publisher, genres, r.Rating, r.NextInSeries)
}
