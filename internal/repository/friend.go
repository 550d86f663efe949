// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"amity/internal/models"
	"amity/internal/observability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FriendRepository defines the interface for friendship data operations.
// Friendship rows are stored directionally: user_id is the side that sent
// the application, friend_id the side that received it. Symmetric queries
// match both orderings.
type FriendRepository interface {
	Create(ctx context.Context, friendship *models.Friendship) error
	Accept(ctx context.Context, requesterID, recipientID uuid.UUID) error
	DeletePending(ctx context.Context, requesterID, recipientID uuid.UUID) error
	DeleteBetween(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error)
	IsAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error)
	IsPendingOrAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error)
	ListFriends(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error)
	ListIncoming(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error)
	ListOutgoing(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error)
}

type friendRepository struct {
	db *gorm.DB
}

// NewFriendRepository creates a new friend repository.
func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{db: db}
}

func (r *friendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	defer observability.TrackQuery("create", "friendships")()

	if err := r.db.WithContext(ctx).Create(friendship).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.NewConflictError("friend request already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Accept confirms the pending application from requesterID to recipientID.
// The stored row is re-targeted so the recipient becomes the owning side,
// all inside one transaction.
func (r *friendRepository) Accept(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	defer observability.TrackQuery("accept", "friendships")()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Friendship{}).
			Where("user_id = ? AND friend_id = ? AND status = ?",
				requesterID, recipientID, models.FriendStatusApplicationSent).
			Updates(map[string]interface{}{
				"user_id":   recipientID,
				"friend_id": requesterID,
				"status":    models.FriendStatusFriend,
			})
		if res.Error != nil {
			return models.NewInternalError(res.Error)
		}
		if res.RowsAffected == 0 {
			return models.NewNotFoundError("friend request not found")
		}
		return nil
	})
}

// DeletePending removes the pending application from requesterID to recipientID.
func (r *friendRepository) DeletePending(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	defer observability.TrackQuery("delete", "friendships")()

	res := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ? AND status = ?",
			requesterID, recipientID, models.FriendStatusApplicationSent).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("friend request not found")
	}
	return nil
}

// DeleteBetween removes whatever friendship row links the two users,
// in either direction and any status. Returns whether a row was removed.
func (r *friendRepository) DeleteBetween(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	defer observability.TrackQuery("delete", "friendships")()

	res := r.db.WithContext(ctx).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID1, userID2, userID2, userID1).
		Delete(&models.Friendship{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *friendRepository) IsAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("((user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)) AND status = ?",
			userID1, userID2, userID2, userID1, models.FriendStatusFriend).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *friendRepository) IsPendingOrAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Friendship{}).
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID1, userID2, userID2, userID1).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *friendRepository) ListFriends(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	defer observability.TrackQuery("list", "friendships")()

	base := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON (users.id = f.user_id OR users.id = f.friend_id)").
		Where("f.status = ? AND (f.user_id = ? OR f.friend_id = ?) AND users.id <> ?",
			models.FriendStatusFriend, userID, userID, userID)

	return pageUsers(base, offset, limit)
}

func (r *friendRepository) ListIncoming(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	defer observability.TrackQuery("list", "friendships")()

	base := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON users.id = f.user_id").
		Where("f.friend_id = ? AND f.status = ?", userID, models.FriendStatusApplicationSent)

	return pageUsers(base, offset, limit)
}

func (r *friendRepository) ListOutgoing(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	defer observability.TrackQuery("list", "friendships")()

	base := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN friendships f ON users.id = f.friend_id").
		Where("f.user_id = ? AND f.status = ?", userID, models.FriendStatusApplicationSent)

	return pageUsers(base, offset, limit)
}

// pageUsers counts and fetches one page of a users query, ordered by id
// so successive pages never shuffle.
func pageUsers(q *gorm.DB, offset, limit int) ([]models.User, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}

	var users []models.User
	if err := q.Session(&gorm.Session{}).
		Select("users.*").
		Order("users.id").
		Offset(offset).
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, 0, models.NewInternalError(err)
	}
	return users, total, nil
}
