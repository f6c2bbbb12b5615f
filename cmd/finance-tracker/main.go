package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/matferreira/finance-tracker/internal/config"
	database "github.com/matferreira/finance-tracker/internal/db"
	"github.com/matferreira/finance-tracker/internal/finance/application"
	"github.com/matferreira/finance-tracker/internal/finance/infrastructure"
	"github.com/matferreira/finance-tracker/internal/finance/interfaces"
)

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

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)
			logger.WithFields(logrus.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   recorder.status,
				"duration": time.Since(start).String(),
			}).Info("request completed")
		})
	}
}

type Server struct {
	router             *mux.Router
	userHandler        *interfaces.UserHandler
	categoryHandler    *interfaces.CategoryHandler
	transactionHandler *interfaces.TransactionHandler
	dbService          *database.DBService
}

func NewServer(
	userHandler *interfaces.UserHandler,
	categoryHandler *interfaces.CategoryHandler,
	transactionHandler *interfaces.TransactionHandler,
	dbService *database.DBService,
) *Server {
	return &Server{
		router:             mux.NewRouter(),
		userHandler:        userHandler,
		categoryHandler:    categoryHandler,
		transactionHandler: transactionHandler,
		dbService:          dbService,
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": "API running"})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}
	respondJSON(w, http.StatusOK, health)
}

func (s *Server) RegisterRoutes() {
	s.router.StrictSlash(true)
	s.router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	s.router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)

	// the by_email route is registered before the {id} routes so the literal
	// segment wins the match
	api.HandleFunc("/users/", s.userHandler.ListUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/", s.userHandler.CreateUser).Methods(http.MethodPost)
	api.HandleFunc("/users/by_email/", s.userHandler.GetUserByEmail).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/", s.userHandler.GetUser).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/", s.userHandler.UpdateUser).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}/", s.userHandler.DeleteUser).Methods(http.MethodDelete)

	api.HandleFunc("/categories/", s.categoryHandler.ListCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories/", s.categoryHandler.CreateCategory).Methods(http.MethodPost)
	api.HandleFunc("/categories/{id}/", s.categoryHandler.GetCategory).Methods(http.MethodGet)
	api.HandleFunc("/categories/{id}/", s.categoryHandler.UpdateCategory).Methods(http.MethodPatch)
	api.HandleFunc("/categories/{id}/", s.categoryHandler.DeleteCategory).Methods(http.MethodDelete)

	api.HandleFunc("/users/{id}/transactions/", s.transactionHandler.ListUserTransactions).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/transactions/", s.transactionHandler.CreateTransaction).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/transactions/{tid}/", s.transactionHandler.GetUserTransaction).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/transactions/{tid}/", s.transactionHandler.UpdateTransaction).Methods(http.MethodPatch)
	api.HandleFunc("/users/{id}/transactions/{tid}/", s.transactionHandler.DeleteTransaction).Methods(http.MethodDelete)
	api.HandleFunc("/transactions/", s.transactionHandler.ListAllTransactions).Methods(http.MethodGet)
}

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	dbService, err := database.NewDBService(cfg.DBConn)
	if err != nil {
		logger.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := dbService.EnsureSchema(); err != nil {
		logger.Fatalf("Could not ensure database schema: %v", err)
	}

	userRepo := infrastructure.NewUserRepository(dbService.DB)
	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)

	userService := application.NewUserService(userRepo)
	categoryService := application.NewCategoryService(categoryRepo)
	transactionService := application.NewTransactionService(transactionRepo, userService, categoryService)

	userHandler := interfaces.NewUserHandler(userService, respondJSON, respondError)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	server := NewServer(userHandler, categoryHandler, transactionHandler, dbService)
	server.RegisterRoutes()
	server.router.Use(loggingMiddleware(logger))

	addr := fmt.Sprintf(":%s", cfg.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      server.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
