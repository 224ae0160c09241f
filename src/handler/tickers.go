package handler

import (
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/richardzimring/heatmap/src/services"
)

type TickersHandler struct {
	service *services.TickerService
}

func NewTickersHandler(service *services.TickerService) *TickersHandler {
	return &TickersHandler{service: service}
}

// GetTickers serves GET /tickers: the full directory of valid symbols
// and company names.
func (h *TickersHandler) GetTickers(w http.ResponseWriter, r *http.Request) {
	tickers, err := h.service.GetTickers(r.Context())
	if err != nil {
		log.Errorf("GetTickers: failed to load tickers: %v", err)
		setErrorResponse("failed to load tickers", http.StatusInternalServerError, w)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=3600")
	setResponse(tickers, http.StatusOK, w)
}
