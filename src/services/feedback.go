package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/richardzimring/heatmap/src/models"
)

// FeedbackService relays user feedback to a configured webhook as a JSON
// message.
type FeedbackService struct {
	webhookURL string
}

func NewFeedbackService(webhookURL string) *FeedbackService {
	return &FeedbackService{webhookURL: webhookURL}
}

// SendFeedback posts the report to the webhook. The subject line carries
// the feedback type and a truncated description.
func (s *FeedbackService) SendFeedback(ctx context.Context, report *models.FeedbackRequest) error {
	subject := report.Description
	if len(subject) > 80 {
		subject = subject[:80]
	}

	lines := []string{
		fmt.Sprintf("[Heatmap %s] %s", report.Type, subject),
		fmt.Sprintf("Received: %s", time.Now().UTC().Format(time.RFC3339)),
		"",
		report.Description,
	}

	if report.Email != "" {
		lines = append(lines, "", fmt.Sprintf("Contact: %s", report.Email))
	}

	if report.UserAgent != "" {
		lines = append(lines, "", fmt.Sprintf("User agent: %s", report.UserAgent))
	}

	body := map[string]interface{}{
		"text": strings.Join(lines, "\n"),
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("SendFeedback: failed to marshal payload: %w", err)
	}

	client := http.Client{
		Timeout: 60 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("SendFeedback: failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("SendFeedback: failed to post feedback: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return fmt.Errorf("SendFeedback: invalid status code: %s", res.Status)
	}

	return nil
}
