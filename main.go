package main

import (
	"fmt"
	"os"

	"github.com/jmolina/libreria/internal/cli"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func run(cmd command, args []string) {
	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	// With no arguments, show the catalog
	if len(os.Args) < 2 {
		run(cli.NewListBooksCommand(), nil)
		return
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "add-book":
		run(cli.NewAddBookCommand(), args)

	case "update-book":
		run(cli.NewUpdateBookCommand(), args)

	case "delete-book":
		run(cli.NewDeleteBookCommand(), args)

	case "list-books":
		run(cli.NewListBooksCommand(), args)

	case "search":
		run(cli.NewSearchCommand(), args)

	case "list-authors":
		run(cli.NewListAuthorsCommand(), args)

	case "add-sale":
		run(cli.NewAddSaleCommand(), args)

	case "list-sales":
		run(cli.NewListSalesCommand(), args)

	case "report":
		run(cli.NewReportCommand(), args)

	case "export-csv":
		run(cli.NewExportCSVCommand(), args)

	case "version":
		fmt.Printf("libreria %s (%s)\n", Version, Commit)

	case "-h", "--help", "help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  add-book      Register a new book (creates the author on first use)\n")
	fmt.Fprintf(os.Stderr, "  update-book   Overwrite all fields of an existing book\n")
	fmt.Fprintf(os.Stderr, "  delete-book   Delete a book (recorded sales are kept)\n")
	fmt.Fprintf(os.Stderr, "  list-books    Print the catalog (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  search        Search books by title, ignoring case and accents\n")
	fmt.Fprintf(os.Stderr, "  list-authors  Print all authors\n")
	fmt.Fprintf(os.Stderr, "  add-sale      Record a sale and decrement stock\n")
	fmt.Fprintf(os.Stderr, "  list-sales    Print recorded sales\n")
	fmt.Fprintf(os.Stderr, "  report        Render the sales report and consolidated summary\n")
	fmt.Fprintf(os.Stderr, "  export-csv    Export the catalog as semicolon-delimited CSV\n")
	fmt.Fprintf(os.Stderr, "  version       Print version information\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
