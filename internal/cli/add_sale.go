package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
	"github.com/jmolina/libreria/internal/database/sales"
)

// AddSaleCommand records a sale and decrements the book's stock. The
// total amount defaults to quantity times the book's current price.
type AddSaleCommand struct {
	DatabasePath string
	BookID       uint
	Quantity     int
	Date         string
	Total        float64
}

func NewAddSaleCommand() *AddSaleCommand {
	return &AddSaleCommand{}
}

func (cmd *AddSaleCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("add-sale", flag.ExitOnError)

	var id uint64
	fs.Uint64Var(&id, "book", 0, "Book id (required)")
	fs.IntVar(&cmd.Quantity, "quantity", 0, "Units sold (required)")
	fs.StringVar(&cmd.Date, "date", "", "Sale date, YYYY-MM-DD (default: today)")
	fs.Float64Var(&cmd.Total, "total", -1, "Total amount (default: quantity x current price)")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s add-sale -book <id> -quantity <n> [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Record a sale. The sale is rejected when the book does not exist or\n")
		fmt.Fprintf(os.Stderr, "its stock is lower than the requested quantity.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExample:\n")
		fmt.Fprintf(os.Stderr, "  %s add-sale -book 1 -quantity 3 -date 2024-01-01\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	cmd.BookID = uint(id)

	if cmd.BookID == 0 {
		return fmt.Errorf("required flag -book not provided")
	}
	if cmd.Quantity <= 0 {
		return fmt.Errorf("-quantity must be a positive number")
	}
	if cmd.Date == "" {
		cmd.Date = time.Now().Format("2006-01-02")
	}

	return nil
}

func (cmd *AddSaleCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	total := cmd.Total
	if total < 0 {
		book, err := books.NewRepository(db.DB).GetByID(cmd.BookID)
		if err != nil {
			return fmt.Errorf("failed to load book: %w", err)
		}
		total = float64(cmd.Quantity) * book.Price
	}

	sale, err := sales.NewRepository(db.DB).Insert(sales.SaleInput{
		BookID:      cmd.BookID,
		Quantity:    cmd.Quantity,
		Date:        cmd.Date,
		TotalAmount: total,
	})
	if err != nil {
		return fmt.Errorf("failed to record sale: %w", err)
	}

	fmt.Printf("Sale recorded (ID: %d): %d units on %s, $%.2f\n", sale.ID, sale.Quantity, sale.Date, sale.TotalAmount)
	return nil
}
