package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sebuszqo/ExpenseTracker/internal/auth"
	"github.com/sebuszqo/ExpenseTracker/internal/config"
	database "github.com/sebuszqo/ExpenseTracker/internal/db"
	"github.com/sebuszqo/ExpenseTracker/internal/digest"
	emailService "github.com/sebuszqo/ExpenseTracker/internal/email"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/application"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/infrastructure"
	"github.com/sebuszqo/ExpenseTracker/internal/ledger/interfaces"
	"github.com/sebuszqo/ExpenseTracker/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	authService     auth.Service
	userHandler     *user.Handler
	categoryHandler *interfaces.CategoryHandler
	entryHandler    *interfaces.EntryHandler
	summaryHandler  *interfaces.SummaryHandler
}

func NewServer(
	dbService *database.DBService,
	authService auth.Service,
	userHandler *user.Handler,
	categoryHandler *interfaces.CategoryHandler,
	entryHandler *interfaces.EntryHandler,
	summaryHandler *interfaces.SummaryHandler,
) *Server {
	return &Server{
		dbService:       dbService,
		authService:     authService,
		userHandler:     userHandler,
		categoryHandler: categoryHandler,
		entryHandler:    entryHandler,
		summaryHandler:  summaryHandler,
		router:          http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	status := http.StatusOK
	if health["status"] != "up" {
		status = http.StatusServiceUnavailable
	}
	respondJSON(w, status, health)
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/register", http.HandlerFunc(s.userHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.userHandler.HandleLogin))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes: every handler below runs with the owner id resolved
	// from the bearer token by the auth middleware.
	protectedRoutes := http.NewServeMux()
	protectedRoutes.Handle("GET /api/protected/profile",
		s.authService.Middleware()(http.HandlerFunc(s.userHandler.HandleGetProfile)))
	protectedRoutes.Handle("PUT /api/protected/theme",
		s.authService.Middleware()(http.HandlerFunc(s.userHandler.HandleUpdateTheme)))

	// CATEGORIES API
	protectedRoutes.Handle("GET /api/protected/categories",
		s.authService.Middleware()(http.HandlerFunc(s.categoryHandler.GetCategories)))
	protectedRoutes.Handle("POST /api/protected/categories",
		s.authService.Middleware()(http.HandlerFunc(s.categoryHandler.CreateCategory)))

	// ENTRIES API
	protectedRoutes.Handle("POST /api/protected/entries",
		s.authService.Middleware()(http.HandlerFunc(s.entryHandler.CreateEntry)))
	protectedRoutes.Handle("GET /api/protected/entries",
		s.authService.Middleware()(http.HandlerFunc(s.entryHandler.GetEntries)))
	protectedRoutes.Handle("DELETE /api/protected/entries/{entryID}",
		s.authService.Middleware()(http.HandlerFunc(s.entryHandler.DeleteEntry)))

	// SUMMARY API
	protectedRoutes.Handle("GET /api/protected/summary",
		s.authService.Middleware()(http.HandlerFunc(s.summaryHandler.GetSummary)))
	protectedRoutes.Handle("GET /api/protected/summary/categories",
		s.authService.Middleware()(http.HandlerFunc(s.summaryHandler.GetCategorySummary)))
	protectedRoutes.Handle("GET /api/protected/entries/day",
		s.authService.Middleware()(http.HandlerFunc(s.summaryHandler.GetEntriesByDay)))
	protectedRoutes.Handle("GET /api/protected/entries/month",
		s.authService.Middleware()(http.HandlerFunc(s.summaryHandler.GetEntriesByMonth)))

	// Main router
	mainRouter := http.NewServeMux()
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DBConnectionString)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.Migrate(); err != nil {
		log.Fatalf("Could not run database migrations: %v", err)
	}

	newEmailService := emailService.NewEmailService(emailService.Config{
		From:         cfg.EmailAddress,
		Password:     cfg.EmailPassword,
		TemplatesDir: cfg.TemplatesDir,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
	})

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret)
	authService := auth.NewAuthService(jwtManager, userService, cfg.AccessTokenTTL)
	userHandler := user.NewHandler(userService, authService, newEmailService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)

	entryRepo := infrastructure.NewEntryRepository(dbService.DB)
	entryService := application.NewEntryService(entryRepo, categoryService)

	if err := categoryService.SeedGlobalDefaults(context.Background()); err != nil {
		log.Fatalf("Could not seed global categories: %v", err)
	}
	log.Println("Global default categories seeded")

	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	entryHandler := interfaces.NewEntryHandler(entryService, respondJSON, respondError)
	summaryHandler := interfaces.NewSummaryHandler(entryService, respondJSON, respondError)

	server := NewServer(dbService, authService, userHandler, categoryHandler, entryHandler, summaryHandler)
	server.RegisterRoutes()

	if cfg.DigestEnabled {
		digestService := digest.NewService(userService, entryService, newEmailService)
		if err := StartDigestScheduler(digestService, cfg.DigestSchedule); err != nil {
			log.Fatalf("Digest scheduler didn't start, stoping the app ...")
		}
	}

	handler := loggingMiddleware(http.HandlerFunc(server.router.ServeHTTP))
	log.Printf("Server starting on port %s...", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func StartDigestScheduler(digestService *digest.Service, schedule string) error {
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		err := digestService.Run(context.Background())
		if err != nil {
			log.Printf("Error running daily digest: %v", err)
		} else {
			log.Println("Daily digest completed successfully.")
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
