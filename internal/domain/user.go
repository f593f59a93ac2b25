package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleOwner Role = "owner"
)

func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleUser, RoleOwner:
		return Role(s), true
	}
	return "", false
}

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	Phone        string    `json:"phone,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Actor is the authenticated user attached to a request by the auth gate.
type Actor struct {
	ID   int64
	Role Role
}
