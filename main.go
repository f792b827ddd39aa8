package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wandervoice/agi"
	"wandervoice/assistant"
	"wandervoice/itinerary"
	"wandervoice/ratelim"
	"wandervoice/rdx"
	"wandervoice/routes"
	"wandervoice/search"
	"wandervoice/tripplan"
	"wandervoice/utils"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		w.Header().Set("Referrer-Policy", "no-referrer")
		w.Header().Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s – %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

// Index is a simple health check handler.
func Index(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fmt.Fprint(w, "200")
}

func setupRouter(rateLimiter *ratelim.RateLimiter, deps routes.Deps) *httprouter.Router {
	router := httprouter.New()
	router.GET("/health", Index)

	router.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	routes.RoutesWrapper(router, rateLimiter, deps)
	return router
}

func allowedOrigins() []string {
	origins := utils.SplitCSV(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func main() {
	// load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else if port[0] != ':' {
		port = ":" + port
	}

	// The assistant degrades to a configuration error response when no API
	// key is present, so a missing key must not kill startup.
	var completer agi.Completer
	client, err := agi.NewClient()
	switch {
	case err == nil:
		completer = client
	case errors.Is(err, agi.ErrMissingAPIKey):
		log.Println("OPENAI_API_KEY not set; assistant endpoints will reply 503")
	default:
		log.Fatalf("OpenAI client init failed: %v", err)
	}

	rateLimiter := ratelim.NewRateLimiter()
	searchSvc := search.NewService()
	chat := assistant.New(searchSvc.Search, completer, rdx.AppendChatMessage)
	planAPI := itinerary.NewAPI()
	tripPlanner := tripplan.NewHandler(completer)

	router := setupRouter(rateLimiter, routes.Deps{
		Search:    searchSvc,
		Assistant: chat,
		Plan:      planAPI,
		TripPlan:  tripPlanner,
	})

	go rdx.FlushChatMessages()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}

	log.Println("Server stopped cleanly")
}
