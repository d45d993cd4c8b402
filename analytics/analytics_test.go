package analytics

import (
	"testing"
	"time"

	"capserv/models"

	"github.com/stretchr/testify/assert"
)

func sampleReviews() []models.Review {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.Review{
		{ID: 6, Name: "Fred", Service: "Other", OverallRating: 2, Status: models.ReviewStatusPending, CreatedAt: base.Add(5 * time.Hour)},
		{ID: 5, Name: "Eve", Service: "Website Development", OverallRating: 5, WouldRecommend: true, Status: models.ReviewStatusApproved, Comments: "Great work", CreatedAt: base.Add(4 * time.Hour)},
		{ID: 4, Name: "Dan", Service: "System Development", OverallRating: 4, WouldRecommend: true, Status: models.ReviewStatusApproved, CreatedAt: base.Add(3 * time.Hour)},
		{ID: 3, Name: "Carol", Service: "System Development", OverallRating: 1, Status: models.ReviewStatusRejected, CreatedAt: base.Add(2 * time.Hour)},
		{ID: 2, Name: "Bob", Service: "Mobile Development", OverallRating: 5, Status: models.ReviewStatusApproved, Comments: "Solid app", CreatedAt: base.Add(time.Hour)},
		{ID: 1, Name: "Alice", Service: "Database Design", OverallRating: 3, Status: models.ReviewStatusPending, CreatedAt: base},
	}
}

func TestPublicSnapshotCountsApprovedOnly(t *testing.T) {
	snapshot := Public(sampleReviews())

	assert.Equal(t, 3, snapshot.TotalReviews)
	assert.InDelta(t, 14.0/3.0, snapshot.AverageRating, 1e-9)
	assert.Equal(t, map[int]int{4: 1, 5: 2}, snapshot.RatingDistribution)
}

func TestPublicSnapshotRecentIncludesComments(t *testing.T) {
	snapshot := Public(sampleReviews())

	assert.Len(t, snapshot.RecentReviews, 3)
	assert.Equal(t, "Eve", snapshot.RecentReviews[0].Name)
	assert.Equal(t, "Great work", snapshot.RecentReviews[0].Comments)
	assert.Equal(t, "Bob", snapshot.RecentReviews[2].Name)
}

func TestAdminSnapshotCoversAllStatuses(t *testing.T) {
	snapshot := Admin(sampleReviews())

	assert.Equal(t, 6, snapshot.TotalReviews)
	assert.Equal(t, 3, snapshot.ApprovedReviews)
	assert.Equal(t, 2, snapshot.PendingReviews)
	assert.Equal(t, 1, snapshot.RejectedReviews)
	assert.InDelta(t, 20.0/6.0, snapshot.AverageRating, 1e-9)
	assert.Equal(t, map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 2}, snapshot.RatingDistribution)
	assert.Equal(t, map[string]int{
		"Other":               1,
		"Website Development": 1,
		"System Development":  2,
		"Mobile Development":  1,
		"Database Design":     1,
	}, snapshot.ServiceDistribution)
	assert.InDelta(t, 100.0*2.0/6.0, snapshot.RecommendationRate, 1e-9)
}

func TestAdminSnapshotRecentOmitsComments(t *testing.T) {
	snapshot := Admin(sampleReviews())

	assert.Len(t, snapshot.RecentReviews, 5)
	assert.Equal(t, "Fred", snapshot.RecentReviews[0].Name)
	for _, entry := range snapshot.RecentReviews {
		assert.Empty(t, entry.Comments)
	}
}

func TestSnapshotsAreIdempotent(t *testing.T) {
	reviews := sampleReviews()

	assert.Equal(t, Public(reviews), Public(reviews))
	assert.Equal(t, Admin(reviews), Admin(reviews))
}

func TestEmptyScopeAveragesToZero(t *testing.T) {
	public := Public(nil)
	assert.Equal(t, 0, public.TotalReviews)
	assert.Equal(t, 0.0, public.AverageRating)
	assert.Empty(t, public.RecentReviews)

	admin := Admin(nil)
	assert.Equal(t, 0.0, admin.AverageRating)
	assert.Equal(t, 0.0, admin.RecommendationRate)
}

func TestPendingOnlySetIsInvisibleToPublic(t *testing.T) {
	reviews := []models.Review{
		{ID: 1, Name: "Alice", Service: "Other", OverallRating: 5, Status: models.ReviewStatusPending},
	}
	snapshot := Public(reviews)

	assert.Equal(t, 0, snapshot.TotalReviews)
	assert.Equal(t, 0.0, snapshot.AverageRating)
}
