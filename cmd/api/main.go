package main

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"bookshop/internal/httpx"
	"bookshop/internal/intake"
	"bookshop/internal/platform/openlibrary"
	"bookshop/internal/platform/priceclient"
	"bookshop/internal/pricing"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load(".env.local")

	serverAddress := getEnv("APP_ADDR", ":8080")
	priceAPIURL := getEnv("PRICE_API_URL", "http://localhost:8080")
	openLibraryURL := getEnv("OPENLIBRARY_URL", openlibrary.DefaultBaseURL)
	userAgent := getEnv("USER_AGENT", "bookshop/1.0")
	openLibraryRPS := getEnvInt("OPENLIBRARY_RPS", 3)
	openLibraryRetries := getEnvInt("OPENLIBRARY_MAX_RETRIES", 2)
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 10)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 20)
	maxBodyBytes := int64(getEnvInt("MAX_BODY_BYTES", 1<<20))
	corsOrigins := splitCSV(getEnv("CORS_ALLOWED_ORIGINS", ""))

	pricingService := pricing.NewService()
	pricingHandler := pricing.NewHTTPHandler(pricingService)

	olClient := openlibrary.NewClient(openLibraryURL, userAgent, openLibraryRPS, openLibraryRetries)
	priceClient := priceclient.NewClient(priceAPIURL)

	intakeService := intake.NewService(
		intake.NewPriceAPISource(priceClient),
		intake.NewOpenLibraryTitles(olClient),
	)
	intakeHandler := intake.NewHTTPHandler(intakeService)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("POST /v1/books", intakeHandler.AddBook)
	router.HandleFunc("GET /v1/price", pricingHandler.GetPrice)

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(maxBodyBytes)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(corsOrigins)(handler)
	handler = httpx.AccessLogMiddleware(handler)
	handler = httpx.RecoveryMiddleware(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Starting server on %s", serverAddress)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Fatalf("invalid integer for %s: %q", key, v)
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Fatalf("invalid number for %s: %q", key, v)
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
