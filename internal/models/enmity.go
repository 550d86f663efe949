package models

import (
	"time"

	"github.com/google/uuid"
)

// Enmity records that UserID has declared EnemyID an enemy. The relation
// is asymmetric and has no lifecycle beyond present or absent.
type Enmity struct {
	UserID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	EnemyID uuid.UUID `gorm:"type:uuid;primaryKey" json:"enemy_id"`

	CreatedAt time.Time `json:"created_at"`

	// Relationships
	User  User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Enemy User `gorm:"foreignKey:EnemyID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for GORM
func (Enmity) TableName() string {
	return "enmities"
}
