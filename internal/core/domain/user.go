package domain

import "time"

// Role is the closed set of permission classes a user can hold.
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleDoctor      Role = "doctor"
	RoleEmployee    Role = "employee"
	RolePendingUser Role = "pending_user"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleEmployee, RolePendingUser:
		return true
	}
	return false
}

// StaffRole reports whether r can be assigned directly when creating an
// account. Self-registration always yields pending_user.
func (r Role) StaffRole() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleEmployee:
		return true
	}
	return false
}

// Status is the account lifecycle state.
type Status string

const (
	StatusInProcess Status = "inProcess"
	StatusApproved  Status = "approved"
	StatusDeclined  Status = "declined"
	StatusActive    Status = "active"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusInProcess, StatusApproved, StatusDeclined, StatusActive:
		return true
	}
	return false
}

// Reviewable reports whether s is a value an admin may set when reviewing a
// pending registration. Only approved and declined are accepted at that
// boundary.
func (s Status) Reviewable() bool {
	return s == StatusApproved || s == StatusDeclined
}

// User models a staff account. The password hash is never serialised.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
