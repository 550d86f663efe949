package repository

import (
	"context"
	"testing"

	"amity/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyRepositoryExistsIsDirectional(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnemyRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "ena")
	b := mustCreateUser(t, db, "enb")
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: a.ID, EnemyID: b.ID}))

	ok, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	// The reverse direction is a separate relation.
	ok, err = repo.Exists(ctx, b.ID, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnemyRepositoryDuplicateDeclaration(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnemyRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "eda")
	b := mustCreateUser(t, db, "edb")
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: a.ID, EnemyID: b.ID}))

	err := repo.Create(ctx, &models.Enmity{UserID: a.ID, EnemyID: b.ID})
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusConflict, appErr.Status)
}

func TestEnemyRepositoryDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnemyRepository(db)
	ctx := context.Background()

	a := mustCreateUser(t, db, "era")
	b := mustCreateUser(t, db, "erb")
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: a.ID, EnemyID: b.ID}))

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))

	ok, err := repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	err = repo.Delete(ctx, a.ID, b.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

func TestEnemyRepositoryDeleteUnknown(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnemyRepository(db)

	err := repo.Delete(context.Background(), uuid.New(), uuid.New())
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, fiber.StatusNotFound, appErr.Status)
}

func TestEnemyRepositoryListEnemies(t *testing.T) {
	db := setupTestDB(t)
	repo := NewEnemyRepository(db)
	ctx := context.Background()

	me := mustCreateUser(t, db, "elme")
	foe1 := mustCreateUser(t, db, "elf1")
	foe2 := mustCreateUser(t, db, "elf2")
	rival := mustCreateUser(t, db, "elr")
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: me.ID, EnemyID: foe1.ID}))
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: me.ID, EnemyID: foe2.ID}))
	// Someone who declared me does not appear in my list.
	require.NoError(t, repo.Create(ctx, &models.Enmity{UserID: rival.ID, EnemyID: me.ID}))

	users, total, err := repo.ListEnemies(ctx, me.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.NotEqual(t, rival.ID, u.ID)
	}

	page, total, err := repo.ListEnemies(ctx, me.ID, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, page, 1)
}
