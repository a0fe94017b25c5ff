// Package exporters renders repository read models into the formats
// the bookstore hands to users: the semicolon-delimited CSV export and
// the fixed-width plain-text listings and sales reports.
package exporters

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jmolina/libreria/internal/entities"
)

const reportWidth = 80

// RenderSalesReport renders the sale listing as fixed-width text with
// trailing aggregate lines: sale count, units sold and total revenue.
func RenderSalesReport(sales []entities.SaleListing) string {
	var b strings.Builder
	b.WriteString(centerLine("Reporte Consolidado de Ventas", reportWidth, '='))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-5s %-30s %-10s %-15s %-15s\n", "ID", "Título", "Cantidad", "Fecha", "Monto Total"))
	b.WriteString(strings.Repeat("-", reportWidth))
	b.WriteString("\n")

	var totalUnits int
	var totalRevenue float64
	for _, s := range sales {
		b.WriteString(fmt.Sprintf("%-5d %-30s %-10d %-15s $%-14.2f\n",
			s.ID, clip(s.Title, 29), s.Quantity, s.Date, s.TotalAmount))
		totalUnits += s.Quantity
		totalRevenue += s.TotalAmount
	}

	b.WriteString(strings.Repeat("-", reportWidth))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-30s %d\n", "Total de Ventas:", len(sales)))
	b.WriteString(fmt.Sprintf("%-30s %d\n", "Total de Unidades Vendidas:", totalUnits))
	b.WriteString(fmt.Sprintf("%-30s $%.2f\n", "Monto Total Generado:", totalRevenue))
	return b.String()
}

// RenderBookListing renders the book catalog as fixed-width text with
// a trailing total-count line.
func RenderBookListing(books []entities.BookListing) string {
	var b strings.Builder
	b.WriteString(centerLine("Listado de Libros", reportWidth, '='))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-5s %-30s %-20s %-15s %-10s %-5s\n", "ID", "Título", "Autor", "Género", "Precio", "Stock"))
	b.WriteString(strings.Repeat("-", reportWidth))
	b.WriteString("\n")

	for _, bk := range books {
		b.WriteString(fmt.Sprintf("%-5d %-30s %-20s %-15s %-10.2f %-5d\n",
			bk.ID, clip(bk.Title, 29), clip(bk.Author, 19), clip(bk.Genre, 14), bk.Price, bk.Stock))
	}

	b.WriteString(strings.Repeat("-", reportWidth))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%-30s %d\n", "Total de Libros:", len(books)))
	return b.String()
}

// RenderConsolidatedReport renders the per-title aggregates, already
// ordered by the repository (best sellers first).
func RenderConsolidatedReport(rows []entities.ReportRow) string {
	if len(rows) == 0 {
		return "No hay datos disponibles.\n"
	}

	var b strings.Builder
	b.WriteString("Reporte Consolidado de Ventas\n\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("Título: %s\n", row.Title))
		b.WriteString(fmt.Sprintf("Cantidad Vendida: %d\n", row.TotalQuantity))
		b.WriteString(fmt.Sprintf("Total Ganado: $%.2f\n\n", row.TotalRevenue))
	}
	return b.String()
}

func clip(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func centerLine(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	right := width - n - left
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), right)
}
