package domain

import (
	"time"

	"github.com/google/uuid"
)

type Users struct {
	ID           uuid.UUID  `db:"id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	PasswordHash *string    `db:"password_hash"`
	AuthProvider string     `db:"auth_provider"`
	GoogleID     *string    `db:"google_id"`
	CreatedAt    time.Time  `db:"created_at"`
	LastLogin    *time.Time `db:"last_login"`
}

// UserView is the public projection of a user.
type UserView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
}

func (u *Users) View() *UserView {
	return &UserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}
}

type UsersTable struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	AuthProvider string
	GoogleID     string
	CreatedAt    string
	LastLogin    string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:           "id",
		Name:         "name",
		Email:        "email",
		PasswordHash: "password_hash",
		AuthProvider: "auth_provider",
		GoogleID:     "google_id",
		CreatedAt:    "created_at",
		LastLogin:    "last_login",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}
