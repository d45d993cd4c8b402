package middleware

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var (
	uppercaseRun    = regexp.MustCompile(`[A-Z]{10,}`)
	invalidNameChar = regexp.MustCompile(`[^A-Za-z0-9@._\- ]`)
	emailShape      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// spamPhrases is the lexicon of phrases that mark a comment as spam.
var spamPhrases = []string{
	"buy now",
	"click here",
	"free money",
	"make money fast",
	"work from home",
	"earn money",
	"get rich quick",
}

const (
	// Comments shorter than this many tokens are too short for the
	// repetition ratio to mean anything.
	repetitionMinTokens = 10
	// Minimum ratio of distinct tokens to total tokens.
	repetitionMinRatio = 0.3
	// A character repeated this many times in a row marks a bogus name.
	maxCharRun = 6
)

// CheckReviewContent runs the spam heuristics over a candidate submission
// and returns the user-facing rejection reason, or "" when the content is
// acceptable. Checks run in a fixed order so the same input always reports
// the same reason.
func CheckReviewContent(name, email, comments string) string {
	if name != "" {
		if uppercaseRun.MatchString(name) || hasCharRun(name, maxCharRun) || invalidNameChar.MatchString(name) {
			return "Invalid name format detected"
		}
	}

	if comments != "" {
		lower := strings.ToLower(comments)
		for _, phrase := range spamPhrases {
			if strings.Contains(lower, phrase) {
				return "Comment contains suspicious content"
			}
		}

		words := strings.Fields(comments)
		if len(words) >= repetitionMinTokens {
			distinct := make(map[string]struct{}, len(words))
			for _, word := range words {
				distinct[word] = struct{}{}
			}
			if float64(len(distinct))/float64(len(words)) < repetitionMinRatio {
				return "Comment appears to be spam"
			}
		}
	}

	if email != "" && !emailShape.MatchString(email) {
		return "Invalid email format"
	}

	return ""
}

// hasCharRun reports whether s contains the same rune at least n times in a
// row. Go's regexp has no backreferences, so this is done by hand.
func hasCharRun(s string, n int) bool {
	run := 0
	var prev rune
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= n {
			return true
		}
		prev = r
	}
	return false
}

// DetectSpam rejects submissions whose content trips the spam heuristics.
func DetectSpam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Comments string `json:"comments"`
		}
		if err := c.BodyParser(&body); err != nil {
			return ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
		}

		if reason := CheckReviewContent(body.Name, body.Email, body.Comments); reason != "" {
			return ErrorResponse(c, fiber.StatusBadRequest, reason)
		}
		return c.Next()
	}
}
