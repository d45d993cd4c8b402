package adminController

import (
	"errors"
	"log"

	"capserv/analytics"
	"capserv/middleware"
	"capserv/models"
	"capserv/store"
	"capserv/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminController serves the moderation endpoints behind admin auth.
type AdminController struct {
	Store    *store.ReviewStore
	Notifier utils.Notifier
}

func New(reviewStore *store.ReviewStore, notifier utils.Notifier) *AdminController {
	return &AdminController{Store: reviewStore, Notifier: notifier}
}

// GetReviews returns a filtered, paginated listing of every review.
func (ac *AdminController) GetReviews(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	filter := store.ReviewFilter{
		Status:  c.Query("status"),
		Service: c.Query("service"),
	}

	reviews, pagination, err := ac.Store.List(filter, page, limit)
	if err != nil {
		log.Printf("Error fetching admin reviews: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch reviews")
	}

	return c.JSON(fiber.Map{
		"reviews":    reviews,
		"pagination": pagination,
	})
}

// UpdateReviewStatus approves or rejects a pending review, optionally
// attaching an admin response. Approving a review whose submitter granted
// contact permission sends them the response notification.
func (ac *AdminController) UpdateReviewStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review id")
	}

	reqData := new(struct {
		Status        models.ReviewStatus `json:"status"`
		AdminResponse string              `json:"adminResponse"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if !models.IsValidStatus(reqData.Status) {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Status must be approved or rejected")
	}

	review, err := ac.Store.UpdateStatus(uint(id), reqData.Status, reqData.AdminResponse)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		log.Printf("Error updating review status: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update review status")
	}

	if reqData.Status == models.ReviewStatusApproved && reqData.AdminResponse != "" && review.ContactPermission {
		ac.Notifier.NotifyReviewResponse(*review, reqData.AdminResponse)
	}

	return c.JSON(fiber.Map{
		"message": "Review status updated successfully",
		"review":  review,
	})
}

// DeleteReview removes a review for good and returns the removed record.
func (ac *AdminController) DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid review id")
	}

	review, err := ac.Store.Remove(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Review not found")
		}
		log.Printf("Error deleting review: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete review")
	}

	return c.JSON(fiber.Map{
		"message": "Review deleted successfully",
		"review":  review,
	})
}

// GetAnalytics returns the admin analytics snapshot over every review.
func (ac *AdminController) GetAnalytics(c *fiber.Ctx) error {
	reviews, err := ac.Store.All()
	if err != nil {
		log.Printf("Error fetching admin analytics: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch analytics")
	}

	snapshot := analytics.Admin(reviews)

	monthCount, err := ac.Store.CountCreatedSince(now.BeginningOfMonth())
	if err != nil {
		log.Printf("Error counting reviews this month: %v", err)
	} else {
		snapshot.ReviewsThisMonth = int(monthCount)
	}

	return c.JSON(snapshot)
}
