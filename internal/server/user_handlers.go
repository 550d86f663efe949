package server

import (
	"amity/internal/models"
	"amity/internal/service"

	"github.com/gofiber/fiber/v2"
)

// RegisterUser handles POST /api/users/register
func (s *Server) RegisterUser(c *fiber.Ctx) error {
	var input service.RegisterUserInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	dto, err := s.userService.Register(c.UserContext(), input)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto)
}

// GetUser handles GET /api/users/:id
func (s *Server) GetUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	dto, err := s.userService.Get(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(dto)
}

// GetUserShort handles GET /api/users/:id/main
func (s *Server) GetUserShort(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	dto, err := s.userService.GetShort(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(dto)
}

// UpdateUser handles PATCH /api/users/:id
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	var input service.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return models.RespondWithError(c,
			models.NewValidationError("Invalid request body"))
	}

	dto, err := s.userService.Update(c.UserContext(), id, input)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(dto)
}

// DeleteUser handles DELETE /api/users/:id
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := s.parseUUID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.userService.Delete(c.UserContext(), id); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers handles GET /api/users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	p := parsePagination(c)

	page, err := s.userService.ListAll(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}

// ListUsersShort handles GET /api/users/main
func (s *Server) ListUsersShort(c *fiber.Ctx) error {
	p := parsePagination(c)

	page, err := s.userService.ListAllShort(c.UserContext(), p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}

// SearchUsers handles GET /api/users/search-api?uid=|nickname=
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	if uid := c.Query("uid"); uid != "" {
		dto, err := s.userService.GetByUID(c.UserContext(), uid)
		if err != nil {
			return models.RespondWithError(c, err)
		}
		return c.JSON(dto)
	}

	nickname := c.Query("nickname")
	if nickname == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Either uid or nickname query parameter is required"))
	}

	p := parsePagination(c)
	page, err := s.userService.SearchByNickname(c.UserContext(), nickname, p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}
