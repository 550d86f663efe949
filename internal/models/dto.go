package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDTO is the full profile projection returned by profile endpoints.
type UserDTO struct {
	ID                  uuid.UUID  `json:"id"`
	UID                 string     `json:"uid"`
	Nickname            string     `json:"nickname"`
	Email               string     `json:"email"`
	AvatarURL           string     `json:"avatar_url"`
	Gender              Gender     `json:"gender"`
	Status              UserStatus `json:"status"`
	DateOfBirth         string     `json:"date_of_birth"`
	AccountCreationTime time.Time  `json:"account_creation_time"`
}

// ShortUserDTO is the abbreviated projection used by listings and the
// "main" profile endpoints.
type ShortUserDTO struct {
	ID        uuid.UUID  `json:"id"`
	UID       string     `json:"uid"`
	Nickname  string     `json:"nickname"`
	AvatarURL string     `json:"avatar_url"`
	Status    UserStatus `json:"status"`
}

// dateLayout is the wire format for date-only fields.
const dateLayout = "2006-01-02"

// NewUserDTO builds the full projection for a user.
func NewUserDTO(u *User) UserDTO {
	return UserDTO{
		ID:                  u.ID,
		UID:                 u.UID,
		Nickname:            u.Nickname,
		Email:               u.Email,
		AvatarURL:           u.AvatarURL,
		Gender:              u.Gender,
		Status:              u.Status,
		DateOfBirth:         u.DateOfBirth.Format(dateLayout),
		AccountCreationTime: u.CreatedAt,
	}
}

// NewShortUserDTO builds the abbreviated projection for a user.
func NewShortUserDTO(u *User) ShortUserDTO {
	return ShortUserDTO{
		ID:        u.ID,
		UID:       u.UID,
		Nickname:  u.Nickname,
		AvatarURL: u.AvatarURL,
		Status:    u.Status,
	}
}

// ShortUserDTOs converts a slice of users into short projections.
func ShortUserDTOs(users []User) []ShortUserDTO {
	out := make([]ShortUserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewShortUserDTO(&users[i]))
	}
	return out
}

// UserDTOs converts a slice of users into full projections.
func UserDTOs(users []User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, NewUserDTO(&users[i]))
	}
	return out
}

// FriendshipDTO is the relationship projection returned after a request is
// created or accepted.
type FriendshipDTO struct {
	UserID   uuid.UUID    `json:"user_id"`
	FriendID uuid.UUID    `json:"friend_id"`
	Status   FriendStatus `json:"status"`
}

// NewFriendshipDTO builds the projection for a friendship row.
func NewFriendshipDTO(f *Friendship) FriendshipDTO {
	return FriendshipDTO{
		UserID:   f.UserID,
		FriendID: f.FriendID,
		Status:   f.Status,
	}
}
