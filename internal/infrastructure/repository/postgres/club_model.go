package postgres

import "time"

type clubTableModel struct {
	ID           string    `db:"id"`
	Name         string    `db:"name"`
	ShortName    string    `db:"short_name"`
	City         string    `db:"city"`
	FoundedYear  int       `db:"founded_year"`
	CoachName    string    `db:"coach_name"`
	Stadium      string    `db:"stadium"`
	Status       string    `db:"status"`
	ContactEmail string    `db:"contact_email"`
	ContactPhone string    `db:"contact_phone"`
	Website      string    `db:"website"`
	Description  string    `db:"description"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
