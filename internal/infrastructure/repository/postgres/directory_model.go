package postgres

import (
	"database/sql"
	"time"
)

type refereeTableModel struct {
	ID          string       `db:"id"`
	FirstName   string       `db:"first_name"`
	LastName    string       `db:"last_name"`
	Category    string       `db:"category"`
	DateOfBirth sql.NullTime `db:"date_of_birth"`
	Phone       string       `db:"phone"`
	Email       string       `db:"email"`
	IsActive    bool         `db:"is_active"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

type managerTableModel struct {
	ID        string    `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Position  string    `db:"position"`
	Phone     string    `db:"phone"`
	Email     string    `db:"email"`
	Bio       string    `db:"bio"`
	SortOrder int       `db:"sort_order"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type partnerTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Website     string    `db:"website"`
	Description string    `db:"description"`
	SortOrder   int       `db:"sort_order"`
	IsActive    bool      `db:"is_active"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type stadiumTableModel struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	City      string        `db:"city"`
	Capacity  sql.NullInt64 `db:"capacity"`
	Address   string        `db:"address"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

type applicationTableModel struct {
	ID             string         `db:"id"`
	SeasonID       string         `db:"season_id"`
	ClubName       string         `db:"club_name"`
	ShortName      string         `db:"short_name"`
	City           string         `db:"city"`
	FoundedYear    int            `db:"founded_year"`
	ContactPerson  string         `db:"contact_person"`
	ContactPhone   string         `db:"contact_phone"`
	ContactEmail   string         `db:"contact_email"`
	CoachName      string         `db:"coach_name"`
	AssistantCoach string         `db:"assistant_coach"`
	Description    string         `db:"description"`
	Notes          string         `db:"notes"`
	Status         string         `db:"status"`
	ClubID         sql.NullString `db:"club_id"`
	ReviewedAt     sql.NullTime   `db:"reviewed_at"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

type coachTableModel struct {
	ID          string       `db:"id"`
	ClubID      string       `db:"club_id"`
	SeasonID    string       `db:"season_id"`
	FirstName   string       `db:"first_name"`
	LastName    string       `db:"last_name"`
	DateOfBirth sql.NullTime `db:"date_of_birth"`
	Nationality string       `db:"nationality"`
	Bio         string       `db:"bio"`
	IsActive    bool         `db:"is_active"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}
