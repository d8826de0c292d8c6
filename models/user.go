package models

import "time"

// User represents an account entity used for authentication, authorization
// and per-user preference storage. Credential-related fields must never be
// exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier. Uniqueness is enforced among
	// non-deleted users by a partial unique index at the storage layer.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the account password.
	// Never serialized.
	PasswordHash string `json:"-"`

	// PinHash stores the bcrypt hash of the optional app-unlock PIN.
	// Empty when no PIN has been set up. Never serialized.
	PinHash string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Role is a label embedded into issued tokens ("User" by default).
	Role string `json:"role"`

	// IsDeleted marks the account as soft-deleted. Soft-deleted users are
	// invisible to every lookup and cannot authenticate.
	IsDeleted bool `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// FirstLoginAt is set exactly once, on the first successful login.
	FirstLoginAt *time.Time `json:"-"`
	// LastLoginAt is refreshed on every successful login.
	LastLoginAt *time.Time `json:"-"`
	// LoginCount is incremented on every successful login.
	LoginCount int `json:"-"`

	// Preference fields. Stored directly on the user row; see
	// [UserPreferences] for the API-facing shape and defaults.
	AutoTransferOverdueTasks    bool    `json:"-"`
	DefaultTaskDate             *string `json:"-"`
	FirstDayOfWeek              *string `json:"-"`
	EnableNotificationReminders bool    `json:"-"`
	Theme                       *string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPin reports whether an app-unlock PIN has been set up for the user.
func (u User) HasPin() bool {
	return u.PinHash != ""
}

// Profile is the client-facing projection of a user account returned by the
// auth endpoints. It carries no credential material.
type Profile struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	HasPin    bool   `json:"hasPin"`
}

// NewProfile builds a Profile from a persisted user record.
func NewProfile(u User) Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		HasPin:    u.HasPin(),
	}
}
