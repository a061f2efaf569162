package domain

import "time"

// Todo is one item on a user's private list. Description is a pointer
// because the column is nullable: an update that omits the field stores
// NULL, which is distinct from an empty string on the wire.
type Todo struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
