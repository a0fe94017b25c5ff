package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/jmolina/libreria/internal/config"
	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/sales"
	"github.com/jmolina/libreria/internal/exporters"
)

// ReportCommand renders the fixed-width sales report followed by the
// consolidated per-title aggregates, to stdout or to a file.
type ReportCommand struct {
	DatabasePath string
	OutputPath   string
}

func NewReportCommand() *ReportCommand {
	return &ReportCommand{}
}

func (cmd *ReportCommand) ParseFlags(args []string) error {
	cfg := config.NewConfig()
	fs := flag.NewFlagSet("report", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "out", "", "Write the report to this file instead of stdout")
	fs.StringVar(&cmd.DatabasePath, "db", cfg.Database.Path, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s report [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render the sales report: every sale with its book title, trailing\n")
		fmt.Fprintf(os.Stderr, "totals, and the consolidated per-title summary ordered by units sold.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ReportCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	repo := sales.NewRepository(db.DB)

	listings, err := repo.ListAll()
	if err != nil {
		return fmt.Errorf("failed to list sales: %w", err)
	}
	rows, err := repo.Report()
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}

	content := exporters.RenderSalesReport(listings) + "\n" + exporters.RenderConsolidatedReport(rows)

	if cmd.OutputPath == "" {
		fmt.Print(content)
		return nil
	}

	if err := os.WriteFile(cmd.OutputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Printf("Report written to %s\n", cmd.OutputPath)
	return nil
}
