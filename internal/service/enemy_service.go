package service

import (
	"context"

	"amity/internal/models"
	"amity/internal/observability"
	"amity/internal/repository"

	"github.com/google/uuid"
)

// EnemyService enforces enemy-declaration rules and their mutual exclusion
// with friendship.
type EnemyService struct {
	enemyRepo  repository.EnemyRepository
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	log        *observability.RelationLogger
}

// NewEnemyService returns a new EnemyService.
func NewEnemyService(
	enemyRepo repository.EnemyRepository,
	friendRepo repository.FriendRepository,
	userRepo repository.UserRepository,
) *EnemyService {
	return &EnemyService{
		enemyRepo:  enemyRepo,
		friendRepo: friendRepo,
		userRepo:   userRepo,
		log:        observability.NewRelationLogger("enmity"),
	}
}

// Declare marks enemyID as an enemy of userID. Any friendship between the
// pair, in either direction and any status, is removed first.
func (s *EnemyService) Declare(ctx context.Context, userID, enemyID uuid.UUID) error {
	if userID == enemyID {
		return models.NewValidationError("cannot add yourself as an enemy")
	}

	if err := requireUsers(ctx, s.userRepo, userID, enemyID); err != nil {
		return err
	}

	if exists, err := s.enemyRepo.Exists(ctx, userID, enemyID); err != nil {
		return err
	} else if exists {
		return models.NewConflictError("enemy already declared")
	}

	removed, err := s.friendRepo.DeleteBetween(ctx, userID, enemyID)
	if err != nil {
		return err
	}
	if removed {
		s.log.Info(ctx, "declare", "friendship removed by enemy declaration", "user_id", userID, "enemy_id", enemyID)
	}

	// The composite key resolves a concurrent duplicate to the same conflict.
	if err := s.enemyRepo.Create(ctx, &models.Enmity{UserID: userID, EnemyID: enemyID}); err != nil {
		return err
	}

	observability.RelationshipMutations.WithLabelValues("enmity", "declare").Inc()
	s.log.Info(ctx, "declare", "enemy declared", "user_id", userID, "enemy_id", enemyID)
	return nil
}

// Revoke removes a previously declared enmity.
func (s *EnemyService) Revoke(ctx context.Context, userID, enemyID uuid.UUID) error {
	if err := requireUsers(ctx, s.userRepo, userID, enemyID); err != nil {
		return err
	}

	if err := s.enemyRepo.Delete(ctx, userID, enemyID); err != nil {
		return err
	}

	observability.RelationshipMutations.WithLabelValues("enmity", "revoke").Inc()
	s.log.Info(ctx, "revoke", "enmity revoked", "user_id", userID, "enemy_id", enemyID)
	return nil
}

// Exists reports whether userID has declared enemyID an enemy.
func (s *EnemyService) Exists(ctx context.Context, userID, enemyID uuid.UUID) (bool, error) {
	if err := requireUsers(ctx, s.userRepo, userID, enemyID); err != nil {
		return false, err
	}
	return s.enemyRepo.Exists(ctx, userID, enemyID)
}

// ListEnemies returns one page of users that userID has declared enemies.
func (s *EnemyService) ListEnemies(ctx context.Context, userID uuid.UUID, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	var empty models.Paged[models.ShortUserDTO]
	if err := models.ValidatePagination(offset, limit); err != nil {
		return empty, err
	}
	if err := requireUsers(ctx, s.userRepo, userID); err != nil {
		return empty, err
	}

	users, total, err := s.enemyRepo.ListEnemies(ctx, userID, offset, limit)
	if err != nil {
		return empty, err
	}
	return models.NewPaged(models.ShortUserDTOs(users), offset, limit, total), nil
}
