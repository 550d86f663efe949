package server

import (
	"amity/internal/models"

	"github.com/gofiber/fiber/v2"
)

// DeclareEnemy handles POST /api/users/:userId/enemies/:enemyId
func (s *Server) DeclareEnemy(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	enemyID, err := s.parseUUID(c, "enemyId")
	if err != nil {
		return nil
	}

	if err := s.enemyService.Declare(c.UserContext(), userID, enemyID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// RevokeEnemy handles DELETE /api/users/:userId/enemies/:enemyId
func (s *Server) RevokeEnemy(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	enemyID, err := s.parseUUID(c, "enemyId")
	if err != nil {
		return nil
	}

	if err := s.enemyService.Revoke(c.UserContext(), userID, enemyID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// EnemyExists handles GET /api/users/:userId/enemies/:enemyId/exists
func (s *Server) EnemyExists(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	enemyID, err := s.parseUUID(c, "enemyId")
	if err != nil {
		return nil
	}

	exists, err := s.enemyService.Exists(c.UserContext(), userID, enemyID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"exists": exists})
}

// ListEnemies handles GET /api/users/:userId/enemies
func (s *Server) ListEnemies(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	page, err := s.enemyService.ListEnemies(c.UserContext(), userID, p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}
