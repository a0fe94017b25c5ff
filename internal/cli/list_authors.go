package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/authors"
)

// ListAuthorsCommand prints all authors.
type ListAuthorsCommand struct {
	DatabasePath string
}

func NewListAuthorsCommand() *ListAuthorsCommand {
	return &ListAuthorsCommand{}
}

func (cmd *ListAuthorsCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("list-authors", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-authors [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print all authors. Authors are created automatically the first time\n")
		fmt.Fprintf(os.Stderr, "a book references a new author name.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ListAuthorsCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	list, err := authors.NewRepository(db.DB).ListAll()
	if err != nil {
		return fmt.Errorf("failed to list authors: %w", err)
	}

	fmt.Printf("%-5s %-40s %-20s\n", "ID", "Nombre", "Nacionalidad")
	for _, a := range list {
		fmt.Printf("%-5d %-40s %-20s\n", a.ID, a.Name, a.Nationality)
	}
	fmt.Printf("\nTotal: %d\n", len(list))
	return nil
}
