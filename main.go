package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpLayer "prepay-engine/http"
	"prepay-engine/repository"
	"prepay-engine/service"
)

func main() {
	ctx := context.Background()

	var repo repository.CalculationRepository
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pgRepo, err := repository.NewCalculationRepositoryPostgres(ctx, dsn)
		if err != nil {
			log.Fatalf("Error connecting to postgres: %v", err)
		}
		defer pgRepo.Close()
		repo = pgRepo
		log.Println("Using postgres calculation repository")
	} else {
		repo = repository.NewCalculationRepositoryMemory()
	}

	var cache repository.CacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cache = repository.NewRedisCache(addr)
		log.Println("Using redis comparison cache")
	} else {
		cache = repository.NewMockCache()
	}

	loanService := service.NewLoanService(repo)
	loanHandler := httpLayer.NewLoanHandler(loanService)

	scheduleService := service.NewScheduleService()
	scheduleHandler := httpLayer.NewScheduleHandler(scheduleService)

	comparisonService := service.NewComparisonService(scheduleService, repo, cache)
	compareHandler := httpLayer.NewCompareHandler(comparisonService)

	rateLimiter := httpLayer.NewRateLimiter(5, time.Minute)
	defer rateLimiter.Stop()

	mux := http.NewServeMux()
	mux.Handle(
		"/loan/calculate",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(loanHandler.CalculateEMI),
		),
	)

	mux.Handle(
		"/loan/schedule",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.GenerateSchedule),
		),
	)

	mux.Handle(
		"/loan/schedule/export",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(scheduleHandler.ExportSchedule),
		),
	)

	mux.Handle(
		"/loan/compare",
		httpLayer.RateLimitMiddleware(
			rateLimiter,
			http.HandlerFunc(compareHandler.CompareScenarios),
		),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("🚀 API corriendo en http://localhost:%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
