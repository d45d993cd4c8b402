package reviewController

import (
	"log"
	"net/url"
	"time"

	"capserv/analytics"
	"capserv/middleware"
	"capserv/models"
	"capserv/store"
	"capserv/utils"
	reviewValidator "capserv/validators/review"

	"github.com/gofiber/fiber/v2"
)

// Public listings never show more than the ten most recent approved reviews.
const publicListLimit = 10

// ReviewController serves the public review endpoints.
type ReviewController struct {
	Store    *store.ReviewStore
	Notifier utils.Notifier

	// Health endpoint details, filled in by main.
	DatabaseKind string
	EmailEnabled bool

	startedAt time.Time
}

func New(reviewStore *store.ReviewStore, notifier utils.Notifier) *ReviewController {
	return &ReviewController{
		Store:     reviewStore,
		Notifier:  notifier,
		startedAt: time.Now(),
	}
}

// Root returns the service info payload.
func (rc *ReviewController) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message":  "CAPSTONE & THESIS Development Services API",
		"version":  "1.0.0",
		"status":   "running",
		"database": rc.DatabaseKind,
		"features": []string{"Admin Dashboard", "Spam Prevention", "Email Notifications", "Enhanced Form Fields"},
	})
}

// GetReviews returns the most recent approved reviews.
func (rc *ReviewController) GetReviews(c *fiber.Ctx) error {
	reviews, err := rc.Store.Approved(publicListLimit)
	if err != nil {
		log.Printf("Error fetching reviews: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}
	return c.JSON(reviews)
}

// SubmitReview persists a validated, non-spam submission as pending and
// notifies the admin. Notification failures never fail the request.
func (rc *ReviewController) SubmitReview(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*reviewValidator.SubmitReview)
	if !ok {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	review := models.Review{
		Name:          reqData.Name,
		Email:         reqData.Email,
		Service:       reqData.Service,
		OverallRating: reqData.OverallRating,
		Satisfaction:  reqData.Satisfaction,
		Quality:       reqData.Quality,
		Communication: reqData.Communication,
		Timeliness:    reqData.Timeliness,
		Value:         reqData.Value,
		Comments:      reqData.Comments,

		ProjectType:            defaultIfEmpty(reqData.ProjectType),
		ProjectDuration:        defaultIfEmpty(reqData.ProjectDuration),
		Budget:                 defaultIfEmpty(reqData.Budget),
		WouldRecommend:         reqData.WouldRecommend,
		ImprovementSuggestions: reqData.ImprovementSuggestions,
		ContactPermission:      reqData.ContactPermission,

		Status: models.ReviewStatusPending,
	}

	if err := rc.Store.Insert(&review); err != nil {
		log.Printf("Error submitting review: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit review")
	}

	rc.Notifier.NotifyNewReview(review)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted successfully",
		"review":  review,
	})
}

// GetReviewsByService returns approved reviews for one service category.
func (rc *ReviewController) GetReviewsByService(c *fiber.Ctx) error {
	service, err := url.PathUnescape(c.Params("service"))
	if err != nil {
		service = c.Params("service")
	}

	reviews, err := rc.Store.ByService(service)
	if err != nil {
		log.Printf("Error fetching reviews by service: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}
	return c.JSON(reviews)
}

// GetAnalytics returns the public analytics snapshot over approved reviews.
func (rc *ReviewController) GetAnalytics(c *fiber.Ctx) error {
	reviews, err := rc.Store.All()
	if err != nil {
		log.Printf("Error fetching analytics: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}
	return c.JSON(analytics.Public(reviews))
}

// Health is the liveness endpoint.
func (rc *ReviewController) Health(c *fiber.Ctx) error {
	count, err := rc.Store.Count()
	if err != nil {
		log.Printf("Error counting reviews: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Something went wrong!")
	}

	return c.JSON(fiber.Map{
		"status":       "healthy",
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
		"uptime":       time.Since(rc.startedAt).Seconds(),
		"database":     rc.DatabaseKind,
		"reviewsCount": count,
		"features": fiber.Map{
			"adminDashboard":     true,
			"spamPrevention":     true,
			"emailNotifications": rc.EmailEnabled,
			"enhancedFormFields": true,
		},
	})
}

func defaultIfEmpty(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
