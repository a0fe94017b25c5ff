package cli

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
)

// DeleteBookCommand removes a book after an interactive confirmation.
// Recorded sales of the book are kept.
type DeleteBookCommand struct {
	DatabasePath string
	ID           uint
	Yes          bool
}

func NewDeleteBookCommand() *DeleteBookCommand {
	return &DeleteBookCommand{}
}

func (cmd *DeleteBookCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("delete-book", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "id", 0, "Book id (required)")
	fs.BoolVar(&cmd.Yes, "yes", false, "Skip the confirmation prompt")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s delete-book -id <id> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Delete a book from the catalog. Sales already recorded for the book\n")
		fmt.Fprintf(os.Stderr, "are kept.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.ID = uint(id)

	if cmd.ID == 0 {
		return fmt.Errorf("required flag -id not provided")
	}

	return nil
}

func (cmd *DeleteBookCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)

	book, err := repo.GetByID(cmd.ID)
	if err != nil {
		return fmt.Errorf("failed to load book: %w", err)
	}

	if !cmd.Yes {
		fmt.Printf("Delete \"%s\" by %s (ID: %d)? [y/N]: ", book.Title, book.Author.Name, book.ID)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		if answer != "y" && answer != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	fmt.Printf("Deleted \"%s\" (ID: %d)\n", book.Title, book.ID)
	return nil
}
