package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/richardzimring/heatmap/src/cache"
	"github.com/richardzimring/heatmap/src/services"
	"github.com/richardzimring/heatmap/src/utils"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/refresh_tickers/main.go",
	Short: "Rebuild the tradable-ticker directory from the OCC feed",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		utils.InitEnvironmentVariables()

		redisAddr := utils.GetEnvOrDefault("REDIS_ADDR", "localhost:6379")

		store, err := cache.NewRedisStore(ctx, redisAddr, os.Getenv("REDIS_PASSWORD"), 0)
		if err != nil {
			log.Fatalf("failed to connect to redis at %s: %v", redisAddr, err)
		}

		defer store.Close()

		tickerService := services.NewTickerService(store)

		count, err := tickerService.RefreshTickers(ctx)
		if err != nil {
			log.Fatalf("failed to refresh tickers: %v", err)
		}

		log.Infof("stored %d tickers", count)
	},
}

func main() {
	if err := runCmd.Execute(); err != nil {
		log.Fatalf("error: %v", err)
	}
}
