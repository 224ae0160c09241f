package handler

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/richardzimring/heatmap/src/models"
	"github.com/richardzimring/heatmap/src/services"
)

type FeedbackHandler struct {
	service *services.FeedbackService
}

func NewFeedbackHandler(service *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// PostFeedback serves POST /feedback: validates the report and relays it.
func (h *FeedbackHandler) PostFeedback(w http.ResponseWriter, r *http.Request) {
	var report models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		setErrorResponse("invalid request body", http.StatusBadRequest, w)
		return
	}

	if err := report.Validate(); err != nil {
		setErrorResponse(err.Error(), http.StatusBadRequest, w)
		return
	}

	if err := h.service.SendFeedback(r.Context(), &report); err != nil {
		log.Errorf("PostFeedback: %v", err)
		setResponse(map[string]string{"message": "Failed to submit feedback"}, http.StatusInternalServerError, w)
		return
	}

	setResponse(map[string]string{"message": "Feedback submitted successfully"}, http.StatusOK, w)
}
