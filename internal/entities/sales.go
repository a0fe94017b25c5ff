package entities

import "time"

// Sale rows are append-only: never updated, never deleted. BookID has
// no database-level constraint; deleting a book leaves its sales in
// place instead of cascading or failing. Existence of the book is
// checked inside the sale-insert transaction.
type Sale struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	BookID      uint      `gorm:"index;not null" json:"book_id"`
	Quantity    int       `gorm:"not null" json:"quantity"`
	Date        string    `gorm:"size:10;not null" json:"date"`
	TotalAmount float64   `gorm:"not null" json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Sale) TableName() string {
	return "sales"
}

// BookListing is the read-side row for book tables and exports, with
// the author name denormalized via join.
type BookListing struct {
	ID     uint    `json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Genre  string  `json:"genre"`
	ISBN   string  `json:"isbn"`
	Price  float64 `json:"price"`
	Stock  int     `json:"stock"`
}

// SaleListing is the read-side row for sale tables, with the book
// title denormalized via join.
type SaleListing struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Quantity    int     `json:"quantity"`
	Date        string  `json:"date"`
	TotalAmount float64 `json:"total_amount"`
}

// ReportRow is one line of the consolidated sales report, aggregated
// per book title.
type ReportRow struct {
	Title         string  `json:"title"`
	TotalQuantity int64   `json:"total_quantity"`
	TotalRevenue  float64 `json:"total_revenue"`
}
