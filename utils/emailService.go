package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"capserv/models"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const emailSenderName = "CAPSTONE & THESIS Services"

// SMTPNotifier emails review events through a plain SMTP server. New-review
// notifications go to the admin, response notifications back to the submitter.
type SMTPNotifier struct {
	Host       string
	Port       string
	User       string
	Pass       string
	AdminEmail string
}

func (n SMTPNotifier) NotifyNewReview(review models.Review) {
	subject := "New Review Submitted - " + review.Service
	if err := n.send([]string{n.AdminEmail}, subject, newReviewEmail(review)); err != nil {
		log.Printf("Error sending new review notification: %v", err)
	}
}

func (n SMTPNotifier) NotifyReviewResponse(review models.Review, response string) {
	subject := "Response to Your Review - " + review.Service
	if err := n.send([]string{review.Email}, subject, reviewResponseEmail(review, response)); err != nil {
		log.Printf("Error sending review response notification: %v", err)
	}
}

func (n SMTPNotifier) send(to []string, subject, htmlBody string) error {
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: %s <%s>\r\n", emailSenderName, n.User)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", n.User, n.Pass, n.Host)
	return smtp.SendMail(n.Host+":"+n.Port, auth, n.User, to, []byte(msg))
}

// SendGridNotifier delivers the same review emails through the SendGrid API
// instead of raw SMTP.
type SendGridNotifier struct {
	APIKey     string
	From       string
	AdminEmail string
}

func (n SendGridNotifier) NotifyNewReview(review models.Review) {
	subject := "New Review Submitted - " + review.Service
	n.send(n.AdminEmail, subject, newReviewEmail(review))
}

func (n SendGridNotifier) NotifyReviewResponse(review models.Review, response string) {
	subject := "Response to Your Review - " + review.Service
	n.send(review.Email, subject, reviewResponseEmail(review, response))
}

func (n SendGridNotifier) send(to, subject, htmlBody string) {
	from := mail.NewEmail(emailSenderName, n.From)
	message := mail.NewSingleEmail(from, subject, mail.NewEmail("", to), "", htmlBody)

	client := sendgrid.NewSendClient(n.APIKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email via SendGrid: %v", err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("SendGrid rejected email, status %d: %s", resp.StatusCode, resp.Body)
	}
}

// emailTemplate wraps body content in the shared HTML shell.
func emailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f4f4f4; margin: 0; padding: 20px; }
			.container { max-width: 600px; margin: auto; background: #ffffff; border-radius: 8px; overflow: hidden; box-shadow: 0 2px 8px rgba(0,0,0,0.1); }
			.header { background-color: #2c3e50; padding: 24px; text-align: center; }
			.header h1 { color: #ffffff; margin: 0; font-size: 22px; }
			.content { padding: 30px; color: #333333; line-height: 1.6; }
			.content h2 { color: #2c3e50; margin-top: 0; }
			.info-box { background: #e8f5e8; padding: 15px; border-radius: 4px; border-left: 4px solid #28a745; margin: 20px 0; }
			.footer { background-color: #f4f4f4; padding: 16px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CAPSTONE &amp; THESIS Development Services</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated notification from the review system.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func newReviewEmail(review models.Review) string {
	body := fmt.Sprintf(`
		<div class="info-box">
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Service:</strong> %s</p>
			<p><strong>Overall Rating:</strong> %d/5</p>
			<p><strong>Submitted:</strong> %s</p>
		</div>
		<p><strong>Satisfaction:</strong> %d/5 &middot; <strong>Quality:</strong> %d/5 &middot; <strong>Communication:</strong> %d/5 &middot; <strong>Timeliness:</strong> %d/5 &middot; <strong>Value:</strong> %d/5</p>
		<p><strong>Project:</strong> %s, %s, budget %s</p>
		<p><strong>Would recommend:</strong> %s &middot; <strong>Contact permission:</strong> %s</p>
	`,
		review.Name, review.Email, review.Service, review.OverallRating,
		review.CreatedAt.Format("Jan 2, 2006 15:04"),
		review.Satisfaction, review.Quality, review.Communication, review.Timeliness, review.Value,
		review.ProjectType, review.ProjectDuration, review.Budget,
		yesNo(review.WouldRecommend), yesNo(review.ContactPermission),
	)
	if review.Comments != "" {
		body += fmt.Sprintf(`<p><strong>Comments:</strong> <em>%q</em></p>`, review.Comments)
	}
	if review.ImprovementSuggestions != "" {
		body += fmt.Sprintf(`<p><strong>Improvement suggestions:</strong> %s</p>`, review.ImprovementSuggestions)
	}
	body += fmt.Sprintf(`<p style="color: #6c757d; font-size: 12px;">Review ID: %d | Status: %s</p>`, review.ID, review.Status)

	return emailTemplate("New Review Received", body)
}

func reviewResponseEmail(review models.Review, response string) string {
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your feedback about our <strong>%s</strong> service.</p>
		<div class="info-box">
			<p><strong>Our response:</strong></p>
			<p>%s</p>
		</div>
		<p>Your review: %d/5, submitted %s.</p>
		<p>We appreciate your trust in our services and look forward to serving you again.</p>
	`, review.Name, review.Service, response, review.OverallRating, review.CreatedAt.Format("Jan 2, 2006"))

	return emailTemplate("Thank You for Your Review", body)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
