package utils

import (
	"log"

	"capserv/models"

	"github.com/google/uuid"
)

// Notifier delivers review events. Delivery is best effort: implementations
// log failures and never surface them, because a submission must not fail
// just because a notification did.
type Notifier interface {
	NotifyNewReview(review models.Review)
	NotifyReviewResponse(review models.Review, response string)
}

// Dispatcher fans a notification out to every configured channel without
// waiting for any of them.
type Dispatcher struct {
	channels []Notifier
}

func NewDispatcher(channels ...Notifier) *Dispatcher {
	return &Dispatcher{channels: channels}
}

func (d *Dispatcher) NotifyNewReview(review models.Review) {
	for _, channel := range d.channels {
		go channel.NotifyNewReview(review)
	}
}

func (d *Dispatcher) NotifyReviewResponse(review models.Review, response string) {
	for _, channel := range d.channels {
		go channel.NotifyReviewResponse(review, response)
	}
}

// ConsoleNotifier logs notifications instead of delivering them. It stands
// in when neither email nor webhook delivery is configured, mirroring how
// the review system behaves in development.
type ConsoleNotifier struct{}

func (ConsoleNotifier) NotifyNewReview(review models.Review) {
	log.Printf("[NOTIFY %s] new review #%d from %s (%s, %d/5)",
		uuid.NewString(), review.ID, review.Name, review.Service, review.OverallRating)
}

func (ConsoleNotifier) NotifyReviewResponse(review models.Review, response string) {
	log.Printf("[NOTIFY %s] response to review #%d for %s: %q",
		uuid.NewString(), review.ID, review.Email, response)
}
