package service

import (
	"context"

	"amity/internal/models"
	"amity/internal/notifications"

	"github.com/google/uuid"
)

type userRepoStub struct {
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uuid.UUID) error
	getByIDFn          func(context.Context, uuid.UUID) (*models.User, error)
	getByUIDFn         func(context.Context, string) (*models.User, error)
	searchByNicknameFn func(context.Context, string, int, int) ([]models.User, int64, error)
	listFn             func(context.Context, int, int) ([]models.User, int64, error)
	existsFn           func(context.Context, uuid.UUID) (bool, error)
	existsWithUIDFn    func(context.Context, string, uuid.UUID) (bool, error)
	existsWithEmailFn  func(context.Context, string, uuid.UUID) (bool, error)
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return s.getByUIDFn(ctx, uid)
}
func (s *userRepoStub) SearchByNickname(ctx context.Context, nickname string, offset, limit int) ([]models.User, int64, error) {
	return s.searchByNicknameFn(ctx, nickname, offset, limit)
}
func (s *userRepoStub) List(ctx context.Context, offset, limit int) ([]models.User, int64, error) {
	return s.listFn(ctx, offset, limit)
}
func (s *userRepoStub) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *userRepoStub) ExistsWithUID(ctx context.Context, uid string, excludeID uuid.UUID) (bool, error) {
	return s.existsWithUIDFn(ctx, uid, excludeID)
}
func (s *userRepoStub) ExistsWithEmail(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	return s.existsWithEmailFn(ctx, email, excludeID)
}

type friendRepoStub struct {
	createFn              func(context.Context, *models.Friendship) error
	acceptFn              func(context.Context, uuid.UUID, uuid.UUID) error
	deletePendingFn       func(context.Context, uuid.UUID, uuid.UUID) error
	deleteBetweenFn       func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	isAcceptedFn          func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	isPendingOrAcceptedFn func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	listFriendsFn         func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error)
	listIncomingFn        func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error)
	listOutgoingFn        func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error)
}

func (s *friendRepoStub) Create(ctx context.Context, friendship *models.Friendship) error {
	return s.createFn(ctx, friendship)
}
func (s *friendRepoStub) Accept(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	return s.acceptFn(ctx, requesterID, recipientID)
}
func (s *friendRepoStub) DeletePending(ctx context.Context, requesterID, recipientID uuid.UUID) error {
	return s.deletePendingFn(ctx, requesterID, recipientID)
}
func (s *friendRepoStub) DeleteBetween(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	return s.deleteBetweenFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) IsAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	return s.isAcceptedFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) IsPendingOrAccepted(ctx context.Context, userID1, userID2 uuid.UUID) (bool, error) {
	return s.isPendingOrAcceptedFn(ctx, userID1, userID2)
}
func (s *friendRepoStub) ListFriends(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	return s.listFriendsFn(ctx, userID, offset, limit)
}
func (s *friendRepoStub) ListIncoming(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	return s.listIncomingFn(ctx, userID, offset, limit)
}
func (s *friendRepoStub) ListOutgoing(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	return s.listOutgoingFn(ctx, userID, offset, limit)
}

type enemyRepoStub struct {
	createFn func(context.Context, *models.Enmity) error
	deleteFn func(context.Context, uuid.UUID, uuid.UUID) error
	existsFn func(context.Context, uuid.UUID, uuid.UUID) (bool, error)
	listFn   func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error)
}

func (s *enemyRepoStub) Create(ctx context.Context, enmity *models.Enmity) error {
	return s.createFn(ctx, enmity)
}
func (s *enemyRepoStub) Delete(ctx context.Context, userID, enemyID uuid.UUID) error {
	return s.deleteFn(ctx, userID, enemyID)
}
func (s *enemyRepoStub) Exists(ctx context.Context, userID, enemyID uuid.UUID) (bool, error) {
	return s.existsFn(ctx, userID, enemyID)
}
func (s *enemyRepoStub) ListEnemies(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.User, int64, error) {
	return s.listFn(ctx, userID, offset, limit)
}

// notifierStub records delivered notices on a channel so tests can wait for
// the fire-and-forget goroutine.
type notifierStub struct {
	sent chan notifications.FriendRequestNotice
}

func newNotifierStub() *notifierStub {
	return &notifierStub{sent: make(chan notifications.FriendRequestNotice, 1)}
}

func (s *notifierStub) FriendRequestSent(_ context.Context, notice notifications.FriendRequestNotice) {
	s.sent <- notice
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		updateFn: func(context.Context, *models.User) error { return nil },
		deleteFn: func(context.Context, uuid.UUID) error { return nil },
		getByIDFn: func(_ context.Context, id uuid.UUID) (*models.User, error) {
			return &models.User{ID: id, Nickname: "someone"}, nil
		},
		getByUIDFn: func(context.Context, string) (*models.User, error) { return &models.User{}, nil },
		searchByNicknameFn: func(context.Context, string, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		listFn:            func(context.Context, int, int) ([]models.User, int64, error) { return nil, 0, nil },
		existsFn:          func(context.Context, uuid.UUID) (bool, error) { return true, nil },
		existsWithUIDFn:   func(context.Context, string, uuid.UUID) (bool, error) { return false, nil },
		existsWithEmailFn: func(context.Context, string, uuid.UUID) (bool, error) { return false, nil },
	}
}

func noopFriendRepo() *friendRepoStub {
	return &friendRepoStub{
		createFn:              func(context.Context, *models.Friendship) error { return nil },
		acceptFn:              func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
		deletePendingFn:       func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
		deleteBetweenFn:       func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return true, nil },
		isAcceptedFn:          func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
		isPendingOrAcceptedFn: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
		listFriendsFn: func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		listIncomingFn: func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
		listOutgoingFn: func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error) {
			return nil, 0, nil
		},
	}
}

func noopEnemyRepo() *enemyRepoStub {
	return &enemyRepoStub{
		createFn: func(context.Context, *models.Enmity) error { return nil },
		deleteFn: func(context.Context, uuid.UUID, uuid.UUID) error { return nil },
		existsFn: func(context.Context, uuid.UUID, uuid.UUID) (bool, error) { return false, nil },
		listFn:   func(context.Context, uuid.UUID, int, int) ([]models.User, int64, error) { return nil, 0, nil },
	}
}
