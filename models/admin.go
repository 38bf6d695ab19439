package models

import (
	"time"
)

const AdminRoleDefault = "admin"

type Admin struct {
	ID           string    `db:"id"            json:"id"`
	Username     string    `db:"username"      json:"username"`
	Email        string    `db:"email"         json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role"          json:"role"`
	CreatedAt    time.Time `db:"created_at"    json:"created_at"`
}

// LoginResult is returned by a successful admin login
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Admin     *Admin
}
