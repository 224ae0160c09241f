package models

import (
	"fmt"
	"strings"
)

const maxFeedbackDescriptionLen = 2000

// FeedbackRequest is the body of POST /feedback: a bug report or feature
// request with an optional contact email.
type FeedbackRequest struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Email       string `json:"email,omitempty"`
	UserAgent   string `json:"userAgent,omitempty"`
}

func (r *FeedbackRequest) Validate() error {
	if r.Type != "bug" && r.Type != "feature_request" {
		return fmt.Errorf("type must be bug or feature_request")
	}

	description := strings.TrimSpace(r.Description)
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}

	if len(r.Description) > maxFeedbackDescriptionLen {
		return fmt.Errorf("description must be %d characters or less", maxFeedbackDescriptionLen)
	}

	return nil
}
