package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"amity/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestUserRepositoryCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := &models.User{
		UID:      "alice1",
		Nickname: "alice",
		Email:    "alice@example.com",
		Gender:   models.GenderFemale,
		Status:   models.UserStatusOnline,
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID, "create must assign an ID")

	got, err := repo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice1", got.UID)

	got, err = repo.GetByUID(ctx, "alice1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserRepositoryGetUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

func TestUserRepositoryDuplicateUID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	mustCreateUser(t, db, "dupuid")

	err := repo.Create(ctx, &models.User{
		UID:      "dupuid",
		Nickname: "other",
		Email:    "other@example.com",
		Gender:   models.GenderMale,
		Status:   models.UserStatusOnline,
	})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusConflict, appErr.Status)
}

func TestUserRepositorySearchByNicknamePrefix(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "sa1")
	b := mustCreateUser(t, db, "sa2")
	require.NoError(t, db.Model(a).Update("nickname", "gandalf").Error)
	require.NoError(t, db.Model(b).Update("nickname", "gandu").Error)
	c := mustCreateUser(t, db, "sa3")
	require.NoError(t, db.Model(c).Update("nickname", "frodo").Error)

	users, total, err := repo.SearchByNickname(ctx, "gand", 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	// Total stays the full match count even for a smaller page.
	users, total, err = repo.SearchByNickname(ctx, "gand", 0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 1)
}

func TestUserRepositoryListTotals(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		mustCreateUser(t, db, "list"+string(rune('a'+i)))
	}

	users, total, err := repo.List(ctx, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, users, 3)

	users, _, err = repo.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestUserRepositoryExistsWithExclusion(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	user := mustCreateUser(t, db, "excl1")

	taken, err := repo.ExistsWithUID(ctx, "excl1", uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	// The user's own row never counts against them.
	taken, err = repo.ExistsWithUID(ctx, "excl1", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsWithEmail(ctx, "excl1@example.com", user.ID)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestUserRepositoryDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "casa")
	b := mustCreateUser(t, db, "casb")
	require.NoError(t, db.Create(&models.Friendship{
		UserID: a.ID, FriendID: b.ID, Status: models.FriendStatusFriend,
	}).Error)
	require.NoError(t, db.Create(&models.Enmity{UserID: b.ID, EnemyID: a.ID}).Error)

	require.NoError(t, repo.Delete(ctx, a.ID))

	var friendships, enmities int64
	require.NoError(t, db.Model(&models.Friendship{}).Count(&friendships).Error)
	require.NoError(t, db.Model(&models.Enmity{}).Count(&enmities).Error)
	assert.Zero(t, friendships, "friendship rows must cascade")
	assert.Zero(t, enmities, "enmity rows must cascade")
}

func TestUserRepositoryDeleteUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewUserRepository(db)

	err := repo.Delete(context.Background(), uuid.New())
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for driver-level
// error-path tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepositoryCreateTranslatesUniqueViolation(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	// A concurrent register losing the race hits the unique index; the
	// driver error must surface as the same conflict as the pre-check.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "users"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		UID:      "raced",
		Nickname: "raced",
		Email:    "raced@example.com",
		Gender:   models.GenderMale,
		Status:   models.UserStatusOnline,
	})

	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, fiber.StatusConflict, appErr.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
