package router

import (
	"database/sql"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"crop-exchange/internal/config"
	"crop-exchange/internal/handlers"
	"crop-exchange/internal/middleware"
)

func SetupRouter(db *sql.DB, cfg config.Config, logger zerolog.Logger) *mux.Router {
	authHandler := handlers.NewAuthHandler(db, cfg.JWTSecret, logger)
	productHandler := handlers.NewProductHandler(db, logger)
	resourceHandler := handlers.NewResourceHandler(db, logger)
	requestHandler := handlers.NewRequestHandler(db, logger)
	diagnosisHandler := handlers.NewDiagnosisHandler(db, cfg.ClassifierURL, logger)

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "default-secret-key-change-in-production"
		logger.Warn().Msg("JWT_SECRET not set, using default key")
	}

	r := mux.NewRouter()

	rateLimiter := middleware.NewRateLimiter(rate.Limit(10), 20)

	r.Use(middleware.ErrorHandling(logger))
	r.Use(middleware.PerformanceMonitoring(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(rateLimiter.Middleware())

	api := r.PathPrefix("/api").Subrouter()

	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", authHandler.Register).Methods("POST")
	auth.HandleFunc("/login", authHandler.Login).Methods("POST")

	protectedAuth := auth.PathPrefix("").Subrouter()
	protectedAuth.Use(middleware.Authentication(jwtSecret, logger))
	protectedAuth.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Product reads are public; everything else needs a token.
	api.HandleFunc("/products", productHandler.GetAll).Methods("GET")
	api.HandleFunc("/products/{id}", productHandler.GetByID).Methods("GET")

	products := api.PathPrefix("/products").Subrouter()
	products.Use(middleware.Authentication(jwtSecret, logger))
	products.Use(middleware.RequestValidation())
	products.HandleFunc("", productHandler.Create).Methods("POST")
	products.HandleFunc("/farmer/me", productHandler.GetMine).Methods("GET")
	products.HandleFunc("/{id}", productHandler.Update).Methods("PUT")
	products.HandleFunc("/{id}", productHandler.Delete).Methods("DELETE")

	// The resource-sharing feature is farmer-only on its read side;
	// request inboxes stay open to any authenticated caller. Fixed
	// segments are registered ahead of the {id} catch-all.
	farmerOnly := middleware.RequireFarmer()
	resources := api.PathPrefix("/resources").Subrouter()
	resources.Use(middleware.Authentication(jwtSecret, logger))
	resources.Use(middleware.RequestValidation())
	resources.HandleFunc("", resourceHandler.Create).Methods("POST")
	resources.Handle("/all", farmerOnly(http.HandlerFunc(resourceHandler.GetAll))).Methods("GET")
	resources.HandleFunc("/user/me", resourceHandler.GetMine).Methods("GET")
	resources.HandleFunc("/request", requestHandler.Create).Methods("POST")
	resources.HandleFunc("/requests/received", requestHandler.GetReceived).Methods("GET")
	resources.HandleFunc("/requests/sent", requestHandler.GetSent).Methods("GET")
	resources.HandleFunc("/requests/{id}", requestHandler.UpdateStatus).Methods("PUT")
	resources.Handle("/{id}", farmerOnly(http.HandlerFunc(resourceHandler.GetByID))).Methods("GET")
	resources.HandleFunc("/{id}", resourceHandler.Update).Methods("PUT")
	resources.HandleFunc("/{id}", resourceHandler.Delete).Methods("DELETE")

	diagnosis := api.PathPrefix("/diagnosis").Subrouter()
	diagnosis.Use(middleware.Authentication(jwtSecret, logger))
	diagnosis.Use(middleware.RequestValidation())
	diagnosis.HandleFunc("/upload", diagnosisHandler.Upload).Methods("POST")
	diagnosis.HandleFunc("/report", diagnosisHandler.Report).Methods("POST")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}
