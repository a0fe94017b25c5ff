// Package books provides database operations for the book catalog:
// create, update, delete, listing and title search.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.Insert(books.BookInput{Title: "Foundation", Author: "A. Asimov", ...})
package books

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gorm.io/gorm"

	"github.com/jmolina/libreria/internal/database/authors"
	"github.com/jmolina/libreria/internal/entities"
	"github.com/jmolina/libreria/internal/utils"
)

// ErrBookNotFound is returned when no book matches the given id.
var ErrBookNotFound = errors.New("book not found")

// BookInput carries the form fields for creating or updating a book.
// The author is given by name and resolved to an id on write, creating
// the author on first use.
type BookInput struct {
	Title  string
	Author string
	Genre  string
	ISBN   string
	Price  float64
	Stock  int
}

func (in BookInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Author, validation.Required),
		validation.Field(&in.Genre, validation.Required),
		validation.Field(&in.ISBN, validation.Required),
		validation.Field(&in.Price, validation.Min(0.0)),
		validation.Field(&in.Stock, validation.Min(0)),
	)
}

// Repository handles book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

const listingColumns = "books.id, books.title, authors.name AS author, books.genre, books.isbn, books.price, books.stock"

// Insert validates the input, resolves the author name and persists
// the book. Author resolution and the book insert run in one
// transaction, so a failed insert never leaves a stray author behind.
func (r *Repository) Insert(in BookInput) (*entities.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var book *entities.Book
	err := r.db.Transaction(func(tx *gorm.DB) error {
		author, err := authors.NewRepository(tx).GetOrCreate(in.Author)
		if err != nil {
			return err
		}
		book = &entities.Book{
			Title:       in.Title,
			TitleFolded: utils.FoldAccents(in.Title),
			AuthorID:    author.ID,
			Genre:       in.Genre,
			ISBN:        in.ISBN,
			Price:       in.Price,
			Stock:       in.Stock,
		}
		return tx.Create(book).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert book: %w", err)
	}
	return book, nil
}

// Update overwrites every mutable field of the book with the given id.
// Like Insert, it takes the author by name and resolves via
// find-or-create.
func (r *Repository) Update(id uint, in BookInput) (*entities.Book, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var book *entities.Book
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing entities.Book
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		author, err := authors.NewRepository(tx).GetOrCreate(in.Author)
		if err != nil {
			return err
		}

		existing.Title = in.Title
		existing.TitleFolded = utils.FoldAccents(in.Title)
		existing.AuthorID = author.ID
		existing.Genre = in.Genre
		existing.ISBN = in.ISBN
		existing.Price = in.Price
		existing.Stock = in.Stock

		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
		book = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return book, nil
}

// GetByID retrieves a book with its author preloaded.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// Delete removes the book row. Sales referencing the book stay in
// place; the author row is kept as well.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&entities.Book{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// ListAll retrieves all books with the author name resolved. Books
// whose author row is missing are excluded by the inner join.
func (r *Repository) ListAll() ([]entities.BookListing, error) {
	listings := []entities.BookListing{}
	err := r.db.Table("books").
		Select(listingColumns).
		Joins("INNER JOIN authors ON authors.id = books.author_id").
		Order("books.id ASC").
		Scan(&listings).Error
	return listings, err
}

// Search matches the query as a substring of the title, ignoring case
// and accents on both sides: the query is folded here and compared
// against the folded title column.
func (r *Repository) Search(query string) ([]entities.BookListing, error) {
	listings := []entities.BookListing{}
	pattern := "%" + utils.FoldAccents(query) + "%"
	err := r.db.Table("books").
		Select(listingColumns).
		Joins("INNER JOIN authors ON authors.id = books.author_id").
		Where("books.title_folded LIKE ?", pattern).
		Order("books.id ASC").
		Scan(&listings).Error
	return listings, err
}
