package server

import (
	"errors"
	"strings"

	"amity/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// Pagination holds raw limit/offset query parameters. Values are passed to
// the service layer unclamped so out-of-range requests fail with 400 there.
type Pagination struct {
	Offset int
	Limit  int
}

// parsePagination extracts offset and limit query parameters with the
// shared defaults.
func parsePagination(c *fiber.Ctx) Pagination {
	return Pagination{
		Offset: c.QueryInt("offset", 0),
		Limit:  c.QueryInt("limit", models.DefaultPageLimit),
	}
}

// parseUUID extracts a route parameter by name as a UUID.
// On failure it writes a 400 JSON response and returns errResponseWritten.
// Callers should check: if err != nil { return nil }
func (s *Server) parseUUID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		_ = models.RespondWithError(c,
			models.NewValidationError("Invalid "+humanizeParam(param)))
		return uuid.Nil, errResponseWritten
	}
	return id, nil
}

// humanizeParam converts a route param name into a human-readable label.
// Examples: "id" -> "ID", "userId" -> "user ID", "enemyId" -> "enemy ID".
func humanizeParam(param string) string {
	if param == "id" {
		return "ID"
	}
	if strings.HasSuffix(param, "Id") {
		return strings.ToLower(param[:len(param)-2]) + " ID"
	}
	return param
}
