package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
)

// UpdateBookCommand overwrites every field of an existing book.
type UpdateBookCommand struct {
	DatabasePath string
	ID           uint
	Title        string
	Author       string
	Genre        string
	ISBN         string
	Price        float64
	Stock        int
}

func NewUpdateBookCommand() *UpdateBookCommand {
	return &UpdateBookCommand{}
}

func (cmd *UpdateBookCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("update-book", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "id", 0, "Book id (required)")
	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Author name; created on first use (required)")
	fs.StringVar(&cmd.Genre, "genre", "", "Genre (required)")
	fs.StringVar(&cmd.ISBN, "isbn", "", "ISBN (required)")
	fs.Float64Var(&cmd.Price, "price", 0, "Unit price")
	fs.IntVar(&cmd.Stock, "stock", 0, "Units in stock")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s update-book -id <id> -title <title> -author <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Overwrite all fields of an existing book. Supply the complete field\n")
		fmt.Fprintf(os.Stderr, "set; omitted text fields fail validation rather than being kept.\n\n")
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
	if strings.TrimSpace(cmd.Title) == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if strings.TrimSpace(cmd.Author) == "" {
		return fmt.Errorf("required flag -author not provided")
	}

	return nil
}

func (cmd *UpdateBookCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	book, err := books.NewRepository(db.DB).Update(cmd.ID, books.BookInput{
		Title:  strings.TrimSpace(cmd.Title),
		Author: strings.TrimSpace(cmd.Author),
		Genre:  strings.TrimSpace(cmd.Genre),
		ISBN:   strings.TrimSpace(cmd.ISBN),
		Price:  cmd.Price,
		Stock:  cmd.Stock,
	})
	if err != nil {
		return fmt.Errorf("failed to update book: %w", err)
	}

	fmt.Printf("Updated \"%s\" (ID: %d)\n", book.Title, book.ID)
	return nil
}
