package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/sales"
	"github.com/jmolina/libreria/internal/entities"
	"github.com/jmolina/libreria/internal/exporters"
)

// ListSalesCommand prints recorded sales, optionally filtered by book.
type ListSalesCommand struct {
	DatabasePath string
	BookID       uint
}

func NewListSalesCommand() *ListSalesCommand {
	return &ListSalesCommand{}
}

func (cmd *ListSalesCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("list-sales", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "book", 0, "Only show sales of this book id")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s list-sales [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print recorded sales with book titles and running totals.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.BookID = uint(id)

	return nil
}

func (cmd *ListSalesCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := sales.NewRepository(db.DB)

	var listings []entities.SaleListing
	if cmd.BookID != 0 {
		listings, err = repo.ListByBook(cmd.BookID)
	} else {
		listings, err = repo.ListAll()
	}
	if err != nil {
		return fmt.Errorf("failed to list sales: %w", err)
	}

	fmt.Print(exporters.RenderSalesReport(listings))
	return nil
}
