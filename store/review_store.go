package store

import (
	"errors"
	"time"

	"capserv/models"

	"gorm.io/gorm"
)

// ErrNotFound is returned when no review exists for the requested identifier.
var ErrNotFound = errors.New("review not found")

// ReviewFilter narrows a listing. Empty fields match everything.
type ReviewFilter struct {
	Status  string
	Service string
}

// Pagination describes the page of results returned by List.
type Pagination struct {
	CurrentPage  int  `json:"currentPage"`
	TotalPages   int  `json:"totalPages"`
	TotalReviews int  `json:"totalReviews"`
	HasNext      bool `json:"hasNext"`
	HasPrev      bool `json:"hasPrev"`
}

// ReviewStore owns all review persistence. Handlers get a store instance
// instead of reaching for a package-level database handle, so a different
// backend can be substituted without touching them.
type ReviewStore struct {
	db *gorm.DB
}

// NewReviewStore returns a store backed by db. The reviews table must
// already be migrated.
func NewReviewStore(db *gorm.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// Insert persists a new review and assigns its identifier.
func (s *ReviewStore) Insert(review *models.Review) error {
	return s.db.Create(review).Error
}

// List returns the page of reviews matching filter, newest first, together
// with pagination metadata. Page and pageSize are clamped to sane minimums.
func (s *ReviewStore) List(filter ReviewFilter, page, pageSize int) ([]models.Review, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	query := s.db.Model(&models.Review{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Service != "" {
		query = query.Where("service = ?", filter.Service)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, Pagination{}, err
	}

	var reviews []models.Review
	offset := (page - 1) * pageSize
	if err := query.
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&reviews).Error; err != nil {
		return nil, Pagination{}, err
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	pagination := Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalReviews: int(total),
		HasNext:      page < totalPages,
		HasPrev:      page > 1,
	}
	return reviews, pagination, nil
}

// Approved returns the most recent approved reviews, capped at limit.
func (s *ReviewStore) Approved(limit int) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("status = ?", models.ReviewStatusApproved).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}

// ByService returns all approved reviews for one service category, newest first.
func (s *ReviewStore) ByService(service string) ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Where("status = ? AND service = ?", models.ReviewStatusApproved, service).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

// All returns a snapshot of every review, newest first. Analytics runs over
// this snapshot.
func (s *ReviewStore) All() ([]models.Review, error) {
	var reviews []models.Review
	err := s.db.
		Order("created_at DESC, id DESC").
		Find(&reviews).Error
	return reviews, err
}

// UpdateStatus sets the moderation status and admin response of a review and
// returns the updated record. ErrNotFound when the id is unknown.
func (s *ReviewStore) UpdateStatus(id uint, status models.ReviewStatus, adminResponse string) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	review.Status = status
	review.AdminResponse = adminResponse
	if err := s.db.Save(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Remove deletes a review by identifier and returns the removed record.
// ErrNotFound when the id is unknown.
func (s *ReviewStore) Remove(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Delete(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

// Count returns the total number of stored reviews.
func (s *ReviewStore) Count() (int64, error) {
	var count int64
	err := s.db.Model(&models.Review{}).Count(&count).Error
	return count, err
}

// CountCreatedSince counts reviews submitted at or after t.
func (s *ReviewStore) CountCreatedSince(t time.Time) (int64, error) {
	var count int64
	err := s.db.Model(&models.Review{}).Where("created_at >= ?", t).Count(&count).Error
	return count, err
}
