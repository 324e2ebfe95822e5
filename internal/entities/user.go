package entities

// User is the only entity kept in the database. Email is the natural key:
// the unique index is what rejects concurrent registrations with the same
// address, the application never pre-checks.
type User struct {
	ID       int    `gorm:"primaryKey"`
	Email    string `gorm:"uniqueIndex;not null"`
	Name     string
	Password string
}
