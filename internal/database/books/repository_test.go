package books

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jmolina/libreria/internal/database/authors"
	"github.com/jmolina/libreria/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_books_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Book{},
		&entities.Sale{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func sampleInput() BookInput {
	return BookInput{
		Title:  "Cien Años de Soledad",
		Author: "Gabriel García Márquez",
		Genre:  "Ficción",
		ISBN:   "978-0307474728",
		Price:  15.50,
		Stock:  10,
	}
}

func TestRepository_Insert(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Insert(sampleInput())

	require.NoError(t, err)
	assert.NotZero(t, book.ID)
	assert.Equal(t, "Cien Años de Soledad", book.Title)
	assert.Equal(t, 15.50, book.Price)
	assert.Equal(t, 10, book.Stock)
}

func TestRepository_Insert_CreatesAuthorOnce(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	first, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	second := sampleInput()
	second.Title = "El Amor en los Tiempos del Cólera"
	inserted, err := repo.Insert(second)
	require.NoError(t, err)

	// Same author name resolves to the same author row
	assert.Equal(t, first.AuthorID, inserted.AuthorID)

	var count int64
	require.NoError(t, db.Model(&entities.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_Insert_EmptyTitleRejected(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	in := sampleInput()
	in.Title = ""
	_, err := repo.Insert(in)
	assert.Error(t, err)

	// Nothing written, including the author
	var books, authorRows int64
	require.NoError(t, db.Model(&entities.Book{}).Count(&books).Error)
	require.NoError(t, db.Model(&entities.Author{}).Count(&authorRows).Error)
	assert.Zero(t, books)
	assert.Zero(t, authorRows)
}

func TestRepository_Insert_EmptyAuthorRejected(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	in := sampleInput()
	in.Author = ""
	_, err := repo.Insert(in)
	assert.Error(t, err)
}

func TestRepository_Insert_NegativePriceRejected(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	in := sampleInput()
	in.Price = -1
	_, err := repo.Insert(in)
	assert.Error(t, err)
}

func TestRepository_Update(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	in := sampleInput()
	in.Title = "Crónica de una Muerte Anunciada"
	in.Price = 12.00
	in.Stock = 3
	updated, err := repo.Update(book.ID, in)

	require.NoError(t, err)
	assert.Equal(t, book.ID, updated.ID)
	assert.Equal(t, "Crónica de una Muerte Anunciada", updated.Title)
	assert.Equal(t, 12.00, updated.Price)
	assert.Equal(t, 3, updated.Stock)
}

func TestRepository_Update_ResolvesNewAuthor(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	in := sampleInput()
	in.Author = "Julio Cortázar"
	updated, err := repo.Update(book.ID, in)
	require.NoError(t, err)
	assert.NotEqual(t, book.AuthorID, updated.AuthorID)

	var count int64
	require.NoError(t, db.Model(&entities.Author{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Update(999, sampleInput())
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	book, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cien Años de Soledad", book.Title)
	assert.Equal(t, "Gabriel García Márquez", book.Author.Name)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByID(42)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

func TestRepository_Delete(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(book.ID))

	_, err = repo.GetByID(book.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	// A second delete reports not found
	assert.ErrorIs(t, repo.Delete(book.ID), ErrBookNotFound)
}

func TestRepository_Delete_KeepsSales(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	sale := entities.Sale{BookID: book.ID, Quantity: 2, Date: "2024-01-01", TotalAmount: 31.00}
	require.NoError(t, db.Create(&sale).Error)

	require.NoError(t, repo.Delete(book.ID))

	var count int64
	require.NoError(t, db.Model(&entities.Sale{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRepository_ListAll(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Insert(sampleInput())
	require.NoError(t, err)
	second := sampleInput()
	second.Title = "Rayuela"
	second.Author = "Julio Cortázar"
	_, err = repo.Insert(second)
	require.NoError(t, err)

	listings, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Cien Años de Soledad", listings[0].Title)
	assert.Equal(t, "Gabriel García Márquez", listings[0].Author)
	assert.Equal(t, "Rayuela", listings[1].Title)
	assert.Equal(t, "Julio Cortázar", listings[1].Author)
}

func TestRepository_ListAll_SkipsMissingAuthor(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	// A row with a dangling author id drops out of the join
	orphan := entities.Book{Title: "Sin Autor", TitleFolded: "sin autor", AuthorID: 999, Genre: "Ficción", ISBN: "0", Price: 1, Stock: 1}
	require.NoError(t, db.Create(&orphan).Error)

	listings, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Cien Años de Soledad", listings[0].Title)
}

func TestRepository_Search_IgnoresAccents(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	in := sampleInput()
	in.Title = "Crónicas Marcianas"
	in.Author = "Ray Bradbury"
	_, err := repo.Insert(in)
	require.NoError(t, err)

	accented, err := repo.Search("crónicas")
	require.NoError(t, err)
	plain, err := repo.Search("cronicas")
	require.NoError(t, err)

	require.Len(t, accented, 1)
	assert.Equal(t, accented, plain)
	assert.Equal(t, "Crónicas Marcianas", accented[0].Title)
}

func TestRepository_Search_IgnoresCase(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	listings, err := repo.Search("SOLEDAD")
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Cien Años de Soledad", listings[0].Title)
}

func TestRepository_Search_AccentedTitleFromPlainQuery(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	// "años" stored, "anos" queried
	listings, err := repo.Search("anos")
	require.NoError(t, err)
	require.Len(t, listings, 1)
}

func TestRepository_Search_NoMatch(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.Insert(sampleInput())
	require.NoError(t, err)

	listings, err := repo.Search("quijote")
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestRepository_Insert_SharedAuthorRepo(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	// Pre-created author with a nationality is reused as-is
	created, err := authors.NewRepository(db).Insert("Gabriel García Márquez", "Colombiana")
	require.NoError(t, err)

	book, err := repo.Insert(sampleInput())
	require.NoError(t, err)
	assert.Equal(t, created.ID, book.AuthorID)
}
