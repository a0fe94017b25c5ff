package entities

import "time"

// Author is created implicitly the first time a book references a new
// author name. Authors are never updated or deleted.
type Author struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"index;size:256;not null" json:"name"`
	Nationality string    `gorm:"size:100" json:"nationality,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Book struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Title string `gorm:"index;size:512;not null" json:"title"`

	// TitleFolded is the lowercased, accent-stripped copy of Title,
	// maintained by the repository on every write and matched against
	// by Search.
	TitleFolded string `gorm:"index;size:512" json:"-"`

	AuthorID  uint      `gorm:"index;not null" json:"author_id"`
	Author    Author    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Genre     string    `gorm:"size:100;not null" json:"genre"`
	ISBN      string    `gorm:"size:20;not null" json:"isbn"`
	Price     float64   `gorm:"not null" json:"price"`
	Stock     int       `gorm:"not null" json:"stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Author) TableName() string {
	return "authors"
}

func (Book) TableName() string {
	return "books"
}
