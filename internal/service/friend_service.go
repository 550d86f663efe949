package service

import (
	"context"

	"amity/internal/models"
	"amity/internal/notifications"
	"amity/internal/observability"
	"amity/internal/repository"

	"github.com/google/uuid"
)

// FriendService enforces the friend-request lifecycle and its mutual
// exclusion with enmity.
type FriendService struct {
	friendRepo repository.FriendRepository
	enemyRepo  repository.EnemyRepository
	userRepo   repository.UserRepository
	notifier   notifications.Notifier
	log        *observability.RelationLogger
}

// NewFriendService returns a new FriendService.
func NewFriendService(
	friendRepo repository.FriendRepository,
	enemyRepo repository.EnemyRepository,
	userRepo repository.UserRepository,
	notifier notifications.Notifier,
) *FriendService {
	return &FriendService{
		friendRepo: friendRepo,
		enemyRepo:  enemyRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		log:        observability.NewRelationLogger("friendship"),
	}
}

// SendRequest creates a pending friend application from userID to friendID.
//
// Rules, in order: no self-requests; both users must exist; any enmity the
// sender holds against the target is silently revoked; at most one active
// relationship per pair; a target-held enmity blocks the request outright.
// On success a best-effort notice goes out to the recipient.
func (s *FriendService) SendRequest(ctx context.Context, userID, friendID uuid.UUID) (*models.FriendshipDTO, error) {
	if userID == friendID {
		observability.FriendRequestOutcomes.WithLabelValues("invalid").Inc()
		return nil, models.NewValidationError("cannot send a friend request to yourself")
	}

	if err := requireUsers(ctx, s.userRepo, userID, friendID); err != nil {
		observability.FriendRequestOutcomes.WithLabelValues("not_found").Inc()
		return nil, err
	}

	// Sending a request withdraws the sender's own block, if any.
	if held, err := s.enemyRepo.Exists(ctx, userID, friendID); err != nil {
		return nil, err
	} else if held {
		if err := s.enemyRepo.Delete(ctx, userID, friendID); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "send_request", "sender enmity revoked", "user_id", userID, "friend_id", friendID)
	}

	if active, err := s.friendRepo.IsPendingOrAccepted(ctx, userID, friendID); err != nil {
		return nil, err
	} else if active {
		observability.FriendRequestOutcomes.WithLabelValues("conflict").Inc()
		return nil, models.NewConflictError("already friends or a request is pending")
	}

	if blocked, err := s.enemyRepo.Exists(ctx, friendID, userID); err != nil {
		return nil, err
	} else if blocked {
		observability.FriendRequestOutcomes.WithLabelValues("forbidden").Inc()
		return nil, models.NewForbiddenError("cannot send request: you are on that user's enemy list")
	}

	friendship := &models.Friendship{
		UserID:   userID,
		FriendID: friendID,
		Status:   models.FriendStatusApplicationSent,
	}
	// A concurrent duplicate surfaces from the composite key as the same
	// conflict the pre-check would have produced.
	if err := s.friendRepo.Create(ctx, friendship); err != nil {
		return nil, err
	}

	observability.FriendRequestOutcomes.WithLabelValues("sent").Inc()
	observability.RelationshipMutations.WithLabelValues("friendship", "request").Inc()
	s.log.Info(ctx, "send_request", "friend request sent", "user_id", userID, "friend_id", friendID)

	s.notify(ctx, userID, friendID)

	dto := models.NewFriendshipDTO(friendship)
	return &dto, nil
}

// notify delivers the friend-request notice without ever failing the caller.
// The committed write must survive a dead notification endpoint.
func (s *FriendService) notify(ctx context.Context, senderID, receiverID uuid.UUID) {
	if s.notifier == nil {
		return
	}

	sender, err := s.userRepo.GetByID(ctx, senderID)
	if err != nil {
		s.log.Warn(ctx, "send_request", "notification skipped: sender lookup failed", "error", err.Error())
		return
	}
	receiver, err := s.userRepo.GetByID(ctx, receiverID)
	if err != nil {
		s.log.Warn(ctx, "send_request", "notification skipped: receiver lookup failed", "error", err.Error())
		return
	}

	notice := notifications.NewFriendRequestNotice(sender, receiver)
	go s.notifier.FriendRequestSent(context.WithoutCancel(ctx), notice)
}

// AcceptRequest confirms the pending application from requesterID, acting
// as recipientID. Storage re-targets the row so the recipient becomes the
// owning side.
func (s *FriendService) AcceptRequest(ctx context.Context, recipientID, requesterID uuid.UUID) (*models.FriendshipDTO, error) {
	if err := requireUsers(ctx, s.userRepo, recipientID, requesterID); err != nil {
		return nil, err
	}

	if err := s.friendRepo.Accept(ctx, requesterID, recipientID); err != nil {
		return nil, err
	}

	observability.RelationshipMutations.WithLabelValues("friendship", "accept").Inc()
	s.log.Info(ctx, "accept_request", "friend request accepted", "user_id", recipientID, "friend_id", requesterID)

	dto := models.NewFriendshipDTO(&models.Friendship{
		UserID:   recipientID,
		FriendID: requesterID,
		Status:   models.FriendStatusFriend,
	})
	return &dto, nil
}

// RejectRequest drops the pending application from requesterID, acting as
// recipientID. Rejected applications leave no trace.
func (s *FriendService) RejectRequest(ctx context.Context, recipientID, requesterID uuid.UUID) error {
	if err := requireUsers(ctx, s.userRepo, recipientID, requesterID); err != nil {
		return err
	}

	if err := s.friendRepo.DeletePending(ctx, requesterID, recipientID); err != nil {
		return err
	}

	observability.RelationshipMutations.WithLabelValues("friendship", "reject").Inc()
	s.log.Info(ctx, "reject_request", "friend request rejected", "user_id", recipientID, "friend_id", requesterID)
	return nil
}

// Unfriend removes whatever relationship links the two users, regardless of
// who originally sent the application.
func (s *FriendService) Unfriend(ctx context.Context, userID, friendID uuid.UUID) error {
	if err := requireUsers(ctx, s.userRepo, userID, friendID); err != nil {
		return err
	}

	removed, err := s.friendRepo.DeleteBetween(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundError("friendship not found")
	}

	observability.RelationshipMutations.WithLabelValues("friendship", "unfriend").Inc()
	s.log.Info(ctx, "unfriend", "friendship removed", "user_id", userID, "friend_id", friendID)
	return nil
}

// IsAcceptedFriend reports whether the two users are confirmed friends.
func (s *FriendService) IsAcceptedFriend(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	if err := requireUsers(ctx, s.userRepo, userID, friendID); err != nil {
		return false, err
	}
	return s.friendRepo.IsAccepted(ctx, userID, friendID)
}

// IsPendingOrAccepted reports whether any active relationship exists
// between the two users, in either direction.
func (s *FriendService) IsPendingOrAccepted(ctx context.Context, userID, friendID uuid.UUID) (bool, error) {
	if err := requireUsers(ctx, s.userRepo, userID, friendID); err != nil {
		return false, err
	}
	return s.friendRepo.IsPendingOrAccepted(ctx, userID, friendID)
}

// ListFriends returns one page of the user's confirmed friends.
func (s *FriendService) ListFriends(ctx context.Context, userID uuid.UUID, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	return s.listRelated(ctx, userID, offset, limit, s.friendRepo.ListFriends)
}

// ListIncomingRequests returns one page of users who applied to userID.
func (s *FriendService) ListIncomingRequests(ctx context.Context, userID uuid.UUID, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	return s.listRelated(ctx, userID, offset, limit, s.friendRepo.ListIncoming)
}

// ListOutgoingRequests returns one page of users userID has applied to.
func (s *FriendService) ListOutgoingRequests(ctx context.Context, userID uuid.UUID, offset, limit int) (models.Paged[models.ShortUserDTO], error) {
	return s.listRelated(ctx, userID, offset, limit, s.friendRepo.ListOutgoing)
}

type relatedLister func(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error)

func (s *FriendService) listRelated(ctx context.Context, userID uuid.UUID, offset, limit int, list relatedLister) (models.Paged[models.ShortUserDTO], error) {
	var empty models.Paged[models.ShortUserDTO]
	if err := models.ValidatePagination(offset, limit); err != nil {
		return empty, err
	}
	if err := requireUsers(ctx, s.userRepo, userID); err != nil {
		return empty, err
	}

	users, total, err := list(ctx, userID, offset, limit)
	if err != nil {
		return empty, err
	}
	return models.NewPaged(models.ShortUserDTOs(users), offset, limit, total), nil
}
