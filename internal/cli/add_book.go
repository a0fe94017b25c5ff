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

// AddBookCommand registers a new book, creating its author on first use.
type AddBookCommand struct {
	DatabasePath string
	Title        string
	Author       string
	Genre        string
	ISBN         string
	Price        float64
	Stock        int
}

func NewAddBookCommand() *AddBookCommand {
	return &AddBookCommand{}
}

func (cmd *AddBookCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("add-book", flag.ExitOnError)

	fs.StringVar(&cmd.Title, "title", "", "Book title (required)")
	fs.StringVar(&cmd.Author, "author", "", "Author name; created on first use (required)")
	fs.StringVar(&cmd.Genre, "genre", "", "Genre (required)")
	fs.StringVar(&cmd.ISBN, "isbn", "", "ISBN (required)")
	fs.Float64Var(&cmd.Price, "price", 0, "Unit price")
	fs.IntVar(&cmd.Stock, "stock", 0, "Units in stock")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-book -title <title> -author <name> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Register a new book. The author record is looked up by exact name\n")
		fmt.Fprintf(os.Stderr, "and created automatically if it does not exist yet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s add-book -title \"Foundation\" -author \"A. Asimov\" -genre Ciencia -isbn 000 -price 10.0 -stock 5\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.Title) == "" {
		return fmt.Errorf("required flag -title not provided")
	}
	if strings.TrimSpace(cmd.Author) == "" {
		return fmt.Errorf("required flag -author not provided")
	}

	return nil
}

func (cmd *AddBookCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	book, err := books.NewRepository(db.DB).Insert(books.BookInput{
		Title:  strings.TrimSpace(cmd.Title),
		Author: strings.TrimSpace(cmd.Author),
		Genre:  strings.TrimSpace(cmd.Genre),
		ISBN:   strings.TrimSpace(cmd.ISBN),
		Price:  cmd.Price,
		Stock:  cmd.Stock,
	})
	if err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}

	fmt.Printf("Saved \"%s\" (ID: %d)\n", book.Title, book.ID)
	return nil
}
