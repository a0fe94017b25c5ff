package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
	"github.com/jmolina/libreria/internal/exporters"
)

// ListBooksCommand prints the book catalog as a fixed-width listing.
type ListBooksCommand struct {
	DatabasePath string
}

func NewListBooksCommand() *ListBooksCommand {
	return &ListBooksCommand{}
}

func (cmd *ListBooksCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("list-books", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-books [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all books with their author names.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListBooksCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	listings, err := books.NewRepository(db.DB).ListAll()
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	fmt.Print(exporters.RenderBookListing(listings))
	return nil
}
