// Command generate_demo creates a demo database with a sample catalog
// and a few recorded sales.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/jmolina/libreria/internal/database"
	"github.com/jmolina/libreria/internal/database/books"
	"github.com/jmolina/libreria/internal/database/sales"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	bookRepo := books.NewRepository(db.DB)
	saleRepo := sales.NewRepository(db.DB)

	bookIDs := make(map[string]uint)
	for _, in := range demoBooks() {
		book, err := bookRepo.Insert(in)
		if err != nil {
			log.Printf("Failed to save book %s: %v", in.Title, err)
			continue
		}
		bookIDs[book.Title] = book.ID
		log.Printf("Saved: %s by %s (%d in stock)", book.Title, in.Author, book.Stock)
	}

	for _, s := range demoSales() {
		id, ok := bookIDs[s.title]
		if !ok {
			continue
		}
		if _, err := saleRepo.Insert(sales.SaleInput{
			BookID:      id,
			Quantity:    s.quantity,
			Date:        s.date,
			TotalAmount: s.total,
		}); err != nil {
			log.Printf("Failed to record sale of %s: %v", s.title, err)
		}
	}

	log.Println("Demo database generated successfully!")
}

func demoBooks() []books.BookInput {
	return []books.BookInput{
		{Title: "Cien Años de Soledad", Author: "Gabriel García Márquez", Genre: "Ficción", ISBN: "978-0307474728", Price: 15.50, Stock: 12},
		{Title: "El Amor en los Tiempos del Cólera", Author: "Gabriel García Márquez", Genre: "Ficción", ISBN: "978-0307389732", Price: 13.25, Stock: 8},
		{Title: "Rayuela", Author: "Julio Cortázar", Genre: "Ficción", ISBN: "978-8437604572", Price: 18.00, Stock: 5},
		{Title: "Ficciones", Author: "Jorge Luis Borges", Genre: "Ficción", ISBN: "978-0802130303", Price: 11.75, Stock: 10},
		{Title: "Breve Historia del Tiempo", Author: "Stephen Hawking", Genre: "Ciencia", ISBN: "978-0553380163", Price: 16.90, Stock: 7},
		{Title: "Educación Financiera Básica", Author: "María Fernández", Genre: "Educativo", ISBN: "978-6071509468", Price: 9.99, Stock: 20},
	}
}

type demoSale struct {
	title    string
	quantity int
	date     string
	total    float64
}

func demoSales() []demoSale {
	return []demoSale{
		{"Cien Años de Soledad", 3, "2024-11-02", 46.50},
		{"Cien Años de Soledad", 2, "2024-11-15", 31.00},
		{"Ficciones", 4, "2024-11-08", 47.00},
		{"Rayuela", 1, "2024-11-20", 18.00},
		{"Breve Historia del Tiempo", 2, "2024-12-01", 33.80},
	}
}
