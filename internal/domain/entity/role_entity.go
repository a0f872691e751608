package entity

import (
	"errors"
	"fmt"
)

// Role and UserStatus are closed enumerations with one canonical casing.
// Input that does not match a canonical value is rejected instead of being
// stored and silently mismatching later comparisons.

type Role string

const (
	RoleDonor     Role = "Donor"
	RoleAdmin     Role = "Admin"
	RoleVolunteer Role = "Volunteer"
)

type UserStatus string

const (
	StatusActive  UserStatus = "Active"
	StatusBlocked UserStatus = "Blocked"
)

var (
	ErrInvalidRole   = errors.New("invalid role")
	ErrInvalidStatus = errors.New("invalid status")
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleDonor, RoleAdmin, RoleVolunteer:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
}

func ParseUserStatus(s string) (UserStatus, error) {
	switch UserStatus(s) {
	case StatusActive, StatusBlocked:
		return UserStatus(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}
