package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/richardzimring/heatmap/src/cache"
	"github.com/richardzimring/heatmap/src/handler"
	"github.com/richardzimring/heatmap/src/services"
	"github.com/richardzimring/heatmap/src/utils"
)

func main() {
	ctx := context.Background()

	utils.InitEnvironmentVariables()

	tradierKey, err := utils.GetEnv("TRADIER_KEY")
	if err != nil {
		log.Fatalf("failed to read Tradier credentials: %v", err)
	}

	tradierBaseURL := utils.GetEnvOrDefault("TRADIER_BASE_URL", services.DefaultTradierBaseURL)
	redisAddr := utils.GetEnvOrDefault("REDIS_ADDR", "localhost:6379")

	store, err := cache.NewRedisStore(ctx, redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
	if err != nil {
		log.Fatalf("failed to connect to redis at %s: %v", redisAddr, err)
	}

	defer store.Close()

	tradierClient := services.NewTradierClient(tradierBaseURL, tradierKey)
	optionsService := services.NewOptionsService(tradierClient, store)
	tickerService := services.NewTickerService(store)
	feedbackService := services.NewFeedbackService(os.Getenv("FEEDBACK_WEBHOOK_URL"))

	optionsHandler := handler.NewOptionsHandler(optionsService)
	tickersHandler := handler.NewTickersHandler(tickerService)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	// setup router
	router := mux.NewRouter()
	port := os.Getenv("PORT")
	if len(port) == 0 {
		port = "3000"
	}

	router.Use(handler.RequestLogger)
	router.Use(handler.CORS)

	router.HandleFunc("/data/{ticker}", optionsHandler.GetOptionsData).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/tickers", tickersHandler.GetTickers).Methods(http.MethodGet, http.MethodOptions)
	router.HandleFunc("/feedback", feedbackHandler.PostFeedback).Methods(http.MethodPost, http.MethodOptions)
	router.NotFoundHandler = http.HandlerFunc(handler.NotFoundHandler)

	// start the http server
	srv := &http.Server{
		Handler: router,
		Addr:    fmt.Sprintf(":%s", port),
	}

	go func() {
		log.Infof("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				log.Fatalf("http: failed to listen and serve: %v", err)
			}
		}
	}()

	// Create channel for shutdown signals.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	signal.Notify(stop, syscall.SIGTERM)

	<-stop
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("error shutting down server %s", err)
	} else {
		log.Println("Server gracefully stopped")
	}
}
