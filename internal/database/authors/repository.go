// Package authors provides database operations for author records.
//
// Authors come into existence as a side effect of book writes: the
// book repository resolves an author name to an id via GetOrCreate.
// The system never updates or deletes an author.
package authors

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jmolina/libreria/internal/entities"
)

// ErrAuthorNotFound is returned by FindByName when no author matches.
var ErrAuthorNotFound = errors.New("author not found")

// Repository handles author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// FindByName returns the first author whose name matches exactly.
// The match is byte-exact: no case or accent folding is applied, and
// duplicate names are possible since name carries no unique constraint.
func (r *Repository) FindByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Where("name = ?", name).Order("id ASC").First(&author).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &author, nil
}

// Insert creates an author unconditionally. It does not check for
// duplicates; callers wanting deduplication use GetOrCreate.
func (r *Repository) Insert(name, nationality string) (*entities.Author, error) {
	author := &entities.Author{
		Name:        name,
		Nationality: nationality,
	}
	if err := r.db.Create(author).Error; err != nil {
		return nil, fmt.Errorf("failed to insert author: %w", err)
	}
	return author, nil
}

// GetOrCreate looks an author up by exact name and inserts one with an
// empty nationality when absent.
func (r *Repository) GetOrCreate(name string) (*entities.Author, error) {
	author, err := r.FindByName(name)
	if errors.Is(err, ErrAuthorNotFound) {
		return r.Insert(name, "")
	}
	if err != nil {
		return nil, err
	}
	return author, nil
}

// ListAll retrieves all authors in insertion order.
func (r *Repository) ListAll() ([]entities.Author, error) {
	var list []entities.Author
	err := r.db.Order("id ASC").Find(&list).Error
	return list, err
}
