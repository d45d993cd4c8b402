package reviewRoutes

import (
	reviewController "capserv/controllers/reviewControllers"
	"capserv/middleware"
	reviewValidator "capserv/validators/review"

	"github.com/gofiber/fiber/v2"
)

// SetupReviewRoutes sets up the public review routes. The submit route runs
// the full gate: rate limiter, field validation, then the content filter.
func SetupReviewRoutes(app *fiber.App, rc *reviewController.ReviewController, limiter *middleware.RateLimiter) {
	app.Get("/", rc.Root)
	app.Get("/api/health", rc.Health)

	app.Get("/api/reviews", rc.GetReviews)
	app.Post("/api/reviews",
		middleware.SubmissionRateLimit(limiter),
		reviewValidator.Submit(),
		middleware.DetectSpam(),
		rc.SubmitReview,
	)
	app.Get("/api/reviews/service/:service", rc.GetReviewsByService)

	app.Get("/api/analytics", rc.GetAnalytics)
}
