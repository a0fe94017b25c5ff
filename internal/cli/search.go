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

// SearchCommand searches books by title substring, ignoring case and
// accents.
type SearchCommand struct {
	DatabasePath string
	Query        string
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.Query, "query", "", "Title substring to search for (required)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search -query <text> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search books by title. The match is case-insensitive and ignores\n")
		fmt.Fprintf(os.Stderr, "accents, so 'cafe' and 'café' find the same books.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Query == "" {
		return fmt.Errorf("required flag -query not provided")
	}

	return nil
}

func (cmd *SearchCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	listings, err := books.NewRepository(db.DB).Search(cmd.Query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(listings) == 0 {
		fmt.Printf("No books matched %q\n", cmd.Query)
		return nil
	}

	fmt.Print(exporters.RenderBookListing(listings))
	return nil
}
