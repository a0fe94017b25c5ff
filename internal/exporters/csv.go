package exporters

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/jmolina/libreria/internal/entities"
)

var csvHeader = []string{"ID", "Título", "Autor", "Género", "ISBN", "Precio", "Stock"}

// CSVExporter writes the book listing as a semicolon-delimited UTF-8
// file to a caller-chosen path.
type CSVExporter struct {
	path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

// Export writes a header row followed by one row per book. Prices are
// formatted with two decimals.
func (e *CSVExporter) Export(listings []entities.BookListing) error {
	f, err := os.Create(e.path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = ';'

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, b := range listings {
		record := []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Title,
			b.Author,
			b.Genre,
			b.ISBN,
			strconv.FormatFloat(b.Price, 'f', 2, 64),
			strconv.Itoa(b.Stock),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
