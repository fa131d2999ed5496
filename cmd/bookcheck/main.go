// bookcheck validates raw book records from a YAML file by routing
// every record through the book factory, then reports the surviving
// catalog, optionally filtered by author and genre.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"booklib/internal/book"
	"booklib/internal/loader"
)

var version = "dev"

func main() {
	loadEnvFiles()
	log := newLogger(logLevel())

	app := &cli.App{
		Name:    "bookcheck",
		Usage:   "Validate raw book records and query the resulting catalog",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "YAML `FILE` with raw book records",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "require-genres",
				Usage: "Reject books without at least one genre",
				Value: requireGenresDefault(),
			},
			&cli.StringFlag{
				Name:  "by-author",
				Usage: "Only report books by this author (exact match)",
			},
			&cli.StringFlag{
				Name:  "by-genre",
				Usage: "Only report books tagged with this genre",
			},
		},
		Action: func(c *cli.Context) error {
			return run(c, log)
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("bookcheck failed")
	}
}

func run(c *cli.Context, log zerolog.Logger) error {
	records, err := loader.ParseFile(c.String("input"))
	if err != nil {
		return err
	}

	var opts []book.FactoryOption
	if c.Bool("require-genres") {
		opts = append(opts, book.RequireGenres())
	}
	factory := book.NewFactory(opts...)

	var books []book.Book
	invalid := 0
	for i, r := range records {
		if errs := loader.ValidateRecord(r); errs != nil {
			invalid++
			for _, e := range errs {
				log.Error().Int("record", i).Str("field", e.Field).Msg(e.Message)
			}
			continue
		}
		b, err := r.ToBook(factory)
		if err != nil {
			invalid++
			if inv, ok := book.AsInvalidArgument(err); ok {
				log.Error().Int("record", i).Str("field", inv.Field).Str("reason", inv.Reason).Msg("record rejected")
			} else {
				log.Error().Int("record", i).Err(err).Msg("record rejected")
			}
			continue
		}
		books = append(books, b)
	}

	books, err = applyFilters(c, books)
	if err != nil {
		return err
	}

	for _, b := range books {
		log.Info().
			Str("isbn", b.ISBN()).
			Str("name", b.Name()).
			Str("author", b.Author()).
			Int("pages", b.PageCount()).
			Msg("valid book")
	}
	log.Info().Int("valid", len(books)).Int("invalid", invalid).Msg("done")

	if invalid > 0 {
		return cli.Exit(fmt.Sprintf("%d invalid record(s)", invalid), 1)
	}
	return nil
}

func applyFilters(c *cli.Context, books []book.Book) ([]book.Book, error) {
	author := c.String("by-author")
	rawGenre := c.String("by-genre")

	var genre book.Genre
	if rawGenre != "" {
		g, err := book.ParseGenre(rawGenre)
		if err != nil {
			return nil, err
		}
		genre = g
	}

	switch {
	case author != "" && rawGenre != "":
		return book.FindByAuthorAndGenre(books, author, genre), nil
	case author != "":
		return book.FindByAuthor(books, author), nil
	case rawGenre != "":
		return book.FindByGenre(books, genre), nil
	default:
		return books, nil
	}
}
