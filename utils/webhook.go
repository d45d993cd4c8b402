package utils

import (
	"log"
	"time"

	"capserv/models"

	"github.com/go-resty/resty/v2"
)

// WebhookNotifier POSTs review events to a configured URL. It is a one-way
// send: non-2xx responses and transport errors are logged and dropped.
type WebhookNotifier struct {
	URL    string
	client *resty.Client
}

func NewWebhookNotifier(url string) *WebhookNotifier {
	return &WebhookNotifier{
		URL:    url,
		client: resty.New().SetTimeout(10 * time.Second),
	}
}

func (n *WebhookNotifier) NotifyNewReview(review models.Review) {
	n.post(map[string]interface{}{
		"event":  "review.submitted",
		"review": review,
	})
}

func (n *WebhookNotifier) NotifyReviewResponse(review models.Review, response string) {
	n.post(map[string]interface{}{
		"event":    "review.responded",
		"review":   review,
		"response": response,
	})
}

func (n *WebhookNotifier) post(payload map[string]interface{}) {
	resp, err := n.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(n.URL)
	if err != nil {
		log.Printf("Webhook delivery failed: %v", err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Webhook delivery failed, status %d", resp.StatusCode())
	}
}
