package adminRoutes

import (
	adminController "capserv/controllers/adminControllers"
	"capserv/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up the moderation routes behind admin auth.
func SetupAdminRoutes(app *fiber.App, ac *adminController.AdminController, auth middleware.Authenticator) {
	adminGroup := app.Group("/api/admin", middleware.AdminAuth(auth))

	adminGroup.Get("/reviews", ac.GetReviews)
	adminGroup.Put("/reviews/:id/status", ac.UpdateReviewStatus)
	adminGroup.Delete("/reviews/:id", ac.DeleteReview)
	adminGroup.Get("/analytics", ac.GetAnalytics)
}
