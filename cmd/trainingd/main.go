package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/zubenkoruslan/hospitalitai-sub005/internal/api/http"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/auth"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/config"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/db"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/grading"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/store"
	"github.com/zubenkoruslan/hospitalitai-sub005/internal/syncx"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	st := store.NewSQLStore(dbh)
	events := syncx.NewEventRepo(dbh).WithSite(cfg.SiteID)
	grader := grading.NewGrader()

	// --- Auth ---
	authSvc := auth.NewAuthService(cfg.AuthSecret)
	if err := auth.EnsureUser(ctx, dbh, cfg.AdminUser, cfg.AdminPass, "manager"); err != nil {
		log.Fatalf("seed manager account: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Post("/auth/login", auth.LoginHandler(authSvc, dbh))

	// Protected API: the quiz-taking flow plus manager-only quiz ingest.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		api.MountAttemptRoutes(pr, st, grader, events, time.Now)
		pr.With(auth.RequireRole("manager")).
			Post("/quizzes", api.UploadQuizHandler(st))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
