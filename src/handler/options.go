package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/richardzimring/heatmap/src/models"
	"github.com/richardzimring/heatmap/src/services"
)

type OptionsHandler struct {
	service *services.OptionsService
}

func NewOptionsHandler(service *services.OptionsService) *OptionsHandler {
	return &OptionsHandler{service: service}
}

// GetOptionsData serves GET /data/{ticker}. A malformed ticker is
// rejected before the cache or upstream is touched; service failures come
// back as a 400 with the same error shape.
func (h *OptionsHandler) GetOptionsData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	symbol, err := models.NewStockSymbol(vars["ticker"])
	if err != nil {
		setResponse(&models.ErrorResponse{
			Ticker:    strings.ToUpper(strings.TrimSpace(vars["ticker"])),
			UpdatedAt: time.Now().UTC().Format(time.RFC3339),
			Message:   models.ErrInvalidTicker.Error(),
		}, http.StatusBadRequest, w)
		return
	}

	data, errResponse := h.service.GetOptionsData(r.Context(), symbol)
	if errResponse != nil {
		setResponse(errResponse, http.StatusBadRequest, w)
		return
	}

	setResponse(data, http.StatusOK, w)
}
