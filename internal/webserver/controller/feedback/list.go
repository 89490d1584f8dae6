package feedback

import (
	"github.com/feedbox/feedbox/internal/webserver/model"
	"github.com/gofiber/fiber/v2"
)

// List returns one page of feedback entries, newest first unless told
// otherwise. Only reachable by logged-in admins.
func (f *Controller) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}

	entries, err := f.repository.List(
		page,
		c.QueryInt("size", model.ResultsPerPage),
		c.Query("sort_by", "created_at"),
		c.Query("sort_direction", "desc"),
	)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"items": entries.Hits(),
		"total": entries.TotalHits(),
		"page":  entries.Page(),
		"size":  entries.MaxResultsPerPage(),
		"pages": entries.TotalPages(),
	})
}
