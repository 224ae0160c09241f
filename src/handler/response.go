package handler

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type errorBody struct {
	Error string `json:"error"`
}

func setResponse(response interface{}, statusCode int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Errorf("setResponse: encode: %v", err)
	}
}

func setErrorResponse(message string, statusCode int, w http.ResponseWriter) {
	setResponse(&errorBody{Error: message}, statusCode, w)
}

// NotFoundHandler is the JSON 404 fallthrough for unmatched routes.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	setErrorResponse("Not Found", http.StatusNotFound, w)
}
