// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender is the self-reported gender of a user.
type Gender string

const (
	// GenderMale identifies a male user.
	GenderMale Gender = "male"
	// GenderFemale identifies a female user.
	GenderFemale Gender = "female"
)

// UserStatus represents the presence status of a user.
type UserStatus string

const (
	// UserStatusOnline means the user is currently active.
	UserStatusOnline UserStatus = "online"
	// UserStatusInactive means the user is idle.
	UserStatusInactive UserStatus = "inactive"
	// UserStatusDoNotDisturb means the user does not want to be contacted.
	UserStatusDoNotDisturb UserStatus = "do_not_disturb"
	// UserStatusOffline means the user is not connected.
	UserStatusOffline UserStatus = "offline"
)

// ValidGender reports whether g is a known gender value.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// ValidUserStatus reports whether s is a known presence status.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusOnline, UserStatusInactive, UserStatusDoNotDisturb, UserStatusOffline:
		return true
	}
	return false
}

// User represents a registered profile. UID is the short public handle,
// distinct from the stable ID used in relationship rows.
type User struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UID         string     `gorm:"size:10;uniqueIndex;not null" json:"uid"`
	Nickname    string     `gorm:"size:50;not null;index" json:"nickname"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	AvatarURL   string     `gorm:"size:255" json:"avatar_url"`
	Gender      Gender     `gorm:"type:varchar(10)" json:"gender"`
	Status      UserStatus `gorm:"type:varchar(20);not null" json:"status"`
	DateOfBirth time.Time  `gorm:"type:date" json:"date_of_birth"`

	// CreatedAt is the account creation time; set once, never updated.
	CreatedAt time.Time `json:"account_creation_time"`
	UpdatedAt time.Time `json:"-"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns a fresh ID when the caller did not provide one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
