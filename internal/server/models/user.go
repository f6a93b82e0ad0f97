// Package models defines server-side data models persisted in the database.
package models

// User is an account record. HashedPassword is an opaque bcrypt digest and
// must never be sent to clients or written to logs in clear form.
type User struct {
	ID             int64  `db:"id"`
	Email          string `db:"email"`
	FirstName      string `db:"first_name"`
	LastName       string `db:"last_name"`
	HashedPassword string `db:"hashed_password"`
	IsActive       bool   `db:"is_active"`
	IsSuperuser    bool   `db:"is_superuser"`
}
