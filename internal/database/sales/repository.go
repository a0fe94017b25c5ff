// Package sales provides database operations for recording sales and
// reading them back for listings and the consolidated report.
package sales

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/jmolina/libreria/internal/entities"
)

var (
	// ErrBookNotFound is returned when the sale references a book id
	// that does not exist.
	ErrBookNotFound = errors.New("book not found")

	// ErrInsufficientStock is returned when the requested quantity
	// exceeds the book's current stock. Nothing is written.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// SaleInput carries the fields for recording a sale. TotalAmount is
// supplied by the caller; the CLI computes it from quantity and the
// book's current price.
type SaleInput struct {
	BookID      uint
	Quantity    int
	Date        string
	TotalAmount float64
}

func (in SaleInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.BookID, validation.Required),
		validation.Field(&in.Quantity, validation.Required, validation.Min(1)),
		validation.Field(&in.Date, validation.Required),
		validation.Field(&in.TotalAmount, validation.Min(0.0)),
	)
}

// Repository handles sale database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new sales repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const listingColumns = "sales.id, books.title, sales.quantity, sales.date, sales.total_amount"

// Insert records a sale and decrements the book's stock as one atomic
// unit. The decrement is guarded by the current stock, so a concurrent
// writer can never drive stock negative; on any failure neither the
// sale row nor the stock change is kept.
func (r *Repository) Insert(in SaleInput) (*entities.Sale, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var sale *entities.Sale
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entities.Book{}).
			Where("id = ? AND stock >= ?", in.BookID, in.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", in.Quantity))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&entities.Book{}).Where("id = ?", in.BookID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrBookNotFound
			}
			return ErrInsufficientStock
		}

		sale = &entities.Sale{
			BookID:      in.BookID,
			Quantity:    in.Quantity,
			Date:        in.Date,
			TotalAmount: in.TotalAmount,
		}
		return tx.Create(sale).Error
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// ListAll retrieves all sales with the book title resolved.
func (r *Repository) ListAll() ([]entities.SaleListing, error) {
	listings := []entities.SaleListing{}
	err := r.db.Table("sales").
		Select(listingColumns).
		Joins("INNER JOIN books ON books.id = sales.book_id").
		Order("sales.id ASC").
		Scan(&listings).Error
	return listings, err
}

// ListByBook retrieves the sales of a single book. An empty slice, not
// an error, is returned when the book has no sales.
func (r *Repository) ListByBook(bookID uint) ([]entities.SaleListing, error) {
	listings := []entities.SaleListing{}
	err := r.db.Table("sales").
		Select(listingColumns).
		Joins("INNER JOIN books ON books.id = sales.book_id").
		Where("sales.book_id = ?", bookID).
		Order("sales.id ASC").
		Scan(&listings).Error
	return listings, err
}

// Report aggregates sales per book title, best sellers first. Two
// distinct books sharing a title are merged into one row. Ties on
// quantity are ordered by title.
func (r *Repository) Report() ([]entities.ReportRow, error) {
	rows := []entities.ReportRow{}
	err := r.db.Table("sales").
		Select("books.title, SUM(sales.quantity) AS total_quantity, SUM(sales.total_amount) AS total_revenue").
		Joins("INNER JOIN books ON books.id = sales.book_id").
		Group("books.title").
		Order("total_quantity DESC, books.title ASC").
		Scan(&rows).Error
	return rows, err
}
