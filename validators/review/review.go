package reviewValidator

import (
	"capserv/middleware"
	"capserv/models"

	"github.com/gofiber/fiber/v2"
)

const maxCommentLength = 2000

// SubmitReview is the parsed submission body passed to the controller via
// c.Locals once validation succeeds.
type SubmitReview struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Service       string `json:"service"`
	OverallRating int    `json:"overallRating"`
	Satisfaction  int    `json:"satisfaction"`
	Quality       int    `json:"quality"`
	Communication int    `json:"communication"`
	Timeliness    int    `json:"timeliness"`
	Value         int    `json:"value"`
	Comments      string `json:"comments"`

	ProjectType            string `json:"projectType"`
	ProjectDuration        string `json:"projectDuration"`
	Budget                 string `json:"budget"`
	WouldRecommend         bool   `json:"wouldRecommend"`
	ImprovementSuggestions string `json:"improvementSuggestions"`
	ContactPermission      bool   `json:"contactPermission"`
}

// Submit validator middleware. Required fields and rating ranges are checked
// here, before the content filter runs.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitReview)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reqData.Name == "" || reqData.Email == "" || reqData.Service == "" || reqData.OverallRating == 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields")
		}

		if reqData.OverallRating < 1 || reqData.OverallRating > 5 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
		}

		// Detailed ratings are optional; when present they share the 1-5 scale.
		for _, rating := range []int{reqData.Satisfaction, reqData.Quality, reqData.Communication, reqData.Timeliness, reqData.Value} {
			if rating != 0 && (rating < 1 || rating > 5) {
				return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Rating must be between 1 and 5")
			}
		}

		if !models.IsValidService(reqData.Service) {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Unknown service category")
		}

		if len(reqData.Comments) > maxCommentLength {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Comments are too long")
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
