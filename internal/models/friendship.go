package models

import (
	"time"

	"github.com/google/uuid"
)

// FriendStatus represents the lifecycle state of a friendship row.
type FriendStatus string

const (
	// FriendStatusApplicationSent indicates a pending friend request.
	FriendStatusApplicationSent FriendStatus = "application_sent"
	// FriendStatusFriend indicates an accepted friendship.
	FriendStatusFriend FriendStatus = "friend"
)

// Friendship is a directed relationship row from UserID to FriendID.
// The relation is conceptually undirected once accepted; readers must
// match both orderings. The composite primary key doubles as the
// uniqueness constraint that settles concurrent duplicate requests.
type Friendship struct {
	UserID   uuid.UUID    `gorm:"type:uuid;primaryKey" json:"user_id"`
	FriendID uuid.UUID    `gorm:"type:uuid;primaryKey" json:"friend_id"`
	Status   FriendStatus `gorm:"type:varchar(20);not null;index:idx_friendships_status" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	User   User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"user,omitempty"`
	Friend User `gorm:"foreignKey:FriendID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"friend,omitempty"`
}

// TableName specifies the table name for GORM
func (Friendship) TableName() string {
	return "friendships"
}
