package analytics

import (
	"time"

	"capserv/models"
)

const recentSliceSize = 5

// RecentReview is the reduced projection used in analytics snapshots.
// Comments are only filled in for the public snapshot.
type RecentReview struct {
	Name          string    `json:"name"`
	OverallRating int       `json:"overallRating"`
	Service       string    `json:"service"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// PublicSnapshot aggregates approved reviews for the public endpoint.
type PublicSnapshot struct {
	TotalReviews       int            `json:"totalReviews"`
	AverageRating      float64        `json:"averageRating"`
	RatingDistribution map[int]int    `json:"ratingDistribution"`
	RecentReviews      []RecentReview `json:"recentReviews"`
}

// AdminSnapshot aggregates every review, whatever its status, for the admin
// dashboard. ReviewsThisMonth is filled in by the caller since it needs a
// store query rather than the snapshot slice.
type AdminSnapshot struct {
	TotalReviews        int            `json:"totalReviews"`
	ApprovedReviews     int            `json:"approvedReviews"`
	PendingReviews      int            `json:"pendingReviews"`
	RejectedReviews     int            `json:"rejectedReviews"`
	AverageRating       float64        `json:"averageRating"`
	RatingDistribution  map[int]int    `json:"ratingDistribution"`
	ServiceDistribution map[string]int `json:"serviceDistribution"`
	RecommendationRate  float64        `json:"recommendationRate"`
	ReviewsThisMonth    int            `json:"reviewsThisMonth"`
	RecentReviews       []RecentReview `json:"recentReviews"`
}

// Public computes the public analytics snapshot from a newest-first review
// snapshot. Only approved reviews contribute.
func Public(reviews []models.Review) PublicSnapshot {
	approved := filterByStatus(reviews, models.ReviewStatusApproved)
	return PublicSnapshot{
		TotalReviews:       len(approved),
		AverageRating:      averageRating(approved),
		RatingDistribution: ratingHistogram(approved),
		RecentReviews:      recent(approved, true),
	}
}

// Admin computes the admin analytics snapshot from a newest-first review
// snapshot. Every review contributes regardless of status.
func Admin(reviews []models.Review) AdminSnapshot {
	snapshot := AdminSnapshot{
		TotalReviews:        len(reviews),
		AverageRating:       averageRating(reviews),
		RatingDistribution:  ratingHistogram(reviews),
		ServiceDistribution: make(map[string]int),
		RecentReviews:       recent(reviews, false),
	}

	recommenders := 0
	for _, review := range reviews {
		switch review.Status {
		case models.ReviewStatusApproved:
			snapshot.ApprovedReviews++
		case models.ReviewStatusPending:
			snapshot.PendingReviews++
		case models.ReviewStatusRejected:
			snapshot.RejectedReviews++
		}
		snapshot.ServiceDistribution[review.Service]++
		if review.WouldRecommend {
			recommenders++
		}
	}
	if len(reviews) > 0 {
		snapshot.RecommendationRate = 100 * float64(recommenders) / float64(len(reviews))
	}
	return snapshot
}

func filterByStatus(reviews []models.Review, status models.ReviewStatus) []models.Review {
	filtered := make([]models.Review, 0, len(reviews))
	for _, review := range reviews {
		if review.Status == status {
			filtered = append(filtered, review)
		}
	}
	return filtered
}

// averageRating special-cases the empty set to 0 so an empty scope never
// produces NaN.
func averageRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.OverallRating
	}
	return float64(sum) / float64(len(reviews))
}

// ratingHistogram counts occurrences per rating value. Values that never
// occur are simply absent, which readers treat as 0.
func ratingHistogram(reviews []models.Review) map[int]int {
	histogram := make(map[int]int)
	for _, review := range reviews {
		histogram[review.OverallRating]++
	}
	return histogram
}

func recent(reviews []models.Review, includeComments bool) []RecentReview {
	n := recentSliceSize
	if len(reviews) < n {
		n = len(reviews)
	}
	slice := make([]RecentReview, 0, n)
	for _, review := range reviews[:n] {
		entry := RecentReview{
			Name:          review.Name,
			OverallRating: review.OverallRating,
			Service:       review.Service,
			CreatedAt:     review.CreatedAt,
		}
		if includeComments {
			entry.Comments = review.Comments
		}
		slice = append(slice, entry)
	}
	return slice
}
