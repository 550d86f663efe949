package repository

import (
	"context"
	"errors"

	"amity/internal/models"
	"amity/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EnemyRepository defines the interface for enmity data operations.
// Enmity rows are directional: user_id declared enemy_id an enemy.
type EnemyRepository interface {
	Create(ctx context.Context, enmity *models.Enmity) error
	Delete(ctx context.Context, userID, enemyID uuid.UUID) error
	Exists(ctx context.Context, userID, enemyID uuid.UUID) (bool, error)
	ListEnemies(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error)
}

type enemyRepository struct {
	db *gorm.DB
}

// NewEnemyRepository creates a new enemy repository.
func NewEnemyRepository(db *gorm.DB) EnemyRepository {
	return &enemyRepository{db: db}
}

func (r *enemyRepository) Create(ctx context.Context, enmity *models.Enmity) error {
	defer observability.TrackQuery("create", "enmities")()

	if err := r.db.WithContext(ctx).Create(enmity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("enemy already declared")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *enemyRepository) Delete(ctx context.Context, userID, enemyID uuid.UUID) error {
	defer observability.TrackQuery("delete", "enmities")()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND enemy_id = ?", userID, enemyID).
		Delete(&models.Enmity{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("enemy relation not found")
	}
	return nil
}

func (r *enemyRepository) Exists(ctx context.Context, userID, enemyID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Enmity{}).
		Where("user_id = ? AND enemy_id = ?", userID, enemyID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *enemyRepository) ListEnemies(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	defer observability.TrackQuery("list", "enmities")()

	base := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN enmities e ON users.id = e.enemy_id").
		Where("e.user_id = ?", userID)

	return pageUsers(base, offset, limit)
}
