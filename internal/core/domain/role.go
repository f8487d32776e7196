package domain

import (
	"fmt"
	"strings"
)

// Role tags a notification subscriber. The set is closed.
type Role string

const (
	RoleManager  Role = "manager"
	RoleSupplier Role = "supplier"
	RoleUser     Role = "user"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleSupplier, RoleUser, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a tag string to its Role, case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}
