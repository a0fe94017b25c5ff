package config

const (
	// DefaultDatabasePath is the default location of the bookstore
	// database file, created on first run if absent.
	DefaultDatabasePath = "./libreria.db"

	// DefaultExportFilename is the default name of the CSV book export.
	DefaultExportFilename = "libros.csv"
)
