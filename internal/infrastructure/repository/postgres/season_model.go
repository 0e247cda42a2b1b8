package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID          string       `db:"id"`
	Name        string       `db:"name"`
	Format      string       `db:"format"`
	StartDate   sql.NullTime `db:"start_date"`
	EndDate     sql.NullTime `db:"end_date"`
	IsActive    bool         `db:"is_active"`
	Description string       `db:"description"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

type seasonGroupTableModel struct {
	ID        string `db:"id"`
	SeasonID  string `db:"season_id"`
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}
