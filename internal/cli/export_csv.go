package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
	"github.com/jmolina/libreria/internal/exporters"
)

// ExportCSVCommand writes the book catalog to a semicolon-delimited
// CSV file.
type ExportCSVCommand struct {
	DatabasePath string
	OutputPath   string
}

func NewExportCSVCommand() *ExportCSVCommand {
	return &ExportCSVCommand{}
}

func (cmd *ExportCSVCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("export-csv", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "out", filepath.Join(cfg.Export.Dir, config.DefaultExportFilename), "Output file path")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export-csv [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export all books as a semicolon-delimited CSV file with the header\n")
		fmt.Fprintf(os.Stderr, "ID;Título;Autor;Género;ISBN;Precio;Stock.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCSVCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	listings, err := books.NewRepository(db.DB).ListAll()
	if err != nil {
		return fmt.Errorf("failed to list books: %w", err)
	}

	if len(listings) == 0 {
		fmt.Println("No books to export.")
		return nil
	}

	if err := exporters.NewCSVExporter(cmd.OutputPath).Export(listings); err != nil {
		return fmt.Errorf("failed to export books: %w", err)
	}

	fmt.Printf("Exported %d books to %s\n", len(listings), cmd.OutputPath)
	return nil
}
