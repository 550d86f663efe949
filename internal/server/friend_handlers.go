package server

import (
	"amity/internal/models"

	"github.com/gofiber/fiber/v2"
)

// SendFriendRequest handles POST /api/users/:userId/friends/:friendId
func (s *Server) SendFriendRequest(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseUUID(c, "friendId")
	if err != nil {
		return nil
	}

	dto, err := s.friendService.SendRequest(c.UserContext(), userID, friendID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto)
}

// AcceptFriendRequest handles PATCH /api/users/:userId/friends/:friendId/accept.
// The route's userId is the recipient acting on a request sent by friendId.
func (s *Server) AcceptFriendRequest(c *fiber.Ctx) error {
	recipientID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	requesterID, err := s.parseUUID(c, "friendId")
	if err != nil {
		return nil
	}

	dto, err := s.friendService.AcceptRequest(c.UserContext(), recipientID, requesterID)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(dto)
}

// RejectFriendRequest handles PATCH /api/users/:userId/friends/:friendId/reject
func (s *Server) RejectFriendRequest(c *fiber.Ctx) error {
	recipientID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	requesterID, err := s.parseUUID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.friendService.RejectRequest(c.UserContext(), recipientID, requesterID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Unfriend handles DELETE /api/users/:userId/friends/:friendId
func (s *Server) Unfriend(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseUUID(c, "friendId")
	if err != nil {
		return nil
	}

	if err := s.friendService.Unfriend(c.UserContext(), userID, friendID); err != nil {
		return models.RespondWithError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// FriendshipExists handles GET /api/users/:userId/friends/:friendId/exists.
// With ?pending=1 the check also counts pending applications.
func (s *Server) FriendshipExists(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}
	friendID, err := s.parseUUID(c, "friendId")
	if err != nil {
		return nil
	}

	var exists bool
	if c.QueryBool("pending") {
		exists, err = s.friendService.IsPendingOrAccepted(c.UserContext(), userID, friendID)
	} else {
		exists, err = s.friendService.IsAcceptedFriend(c.UserContext(), userID, friendID)
	}
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(fiber.Map{"exists": exists})
}

// ListFriends handles GET /api/users/:userId/friends
func (s *Server) ListFriends(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	page, err := s.friendService.ListFriends(c.UserContext(), userID, p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}

// ListIncomingRequests handles GET /api/users/:userId/friends/requests/incoming
func (s *Server) ListIncomingRequests(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	page, err := s.friendService.ListIncomingRequests(c.UserContext(), userID, p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}

// ListOutgoingRequests handles GET /api/users/:userId/friends/requests/outgoing
func (s *Server) ListOutgoingRequests(c *fiber.Ctx) error {
	userID, err := s.parseUUID(c, "userId")
	if err != nil {
		return nil
	}

	p := parsePagination(c)
	page, err := s.friendService.ListOutgoingRequests(c.UserContext(), userID, p.Offset, p.Limit)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	return c.JSON(page)
}
