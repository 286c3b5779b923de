package api

import (
	"log"
	"net/http"
	"os"

	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
	"github.com/Team-lead001/silver-walks-backend/service/availability"
	"github.com/Team-lead001/silver-walks-backend/service/dashboard"
	notification "github.com/Team-lead001/silver-walks-backend/service/notifications"
	"github.com/Team-lead001/silver-walks-backend/service/nurses"
	"github.com/Team-lead001/silver-walks-backend/service/walks"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

type APIServer struct {
	address string
	db      *gorm.DB
}

func NewApiServer(address string, db *gorm.DB) *APIServer {
	return &APIServer{
		address: address,
		db:      db,
	}
}

func (s *APIServer) Run() error {
	router := mux.NewRouter()
	subrouter := router.PathPrefix("/api/v1").Subrouter()
	subrouter.Use(utils.RateLimitMiddleware(rate.Limit(10), 20))

	notifier := notification.NewNotifier(s.db, notification.MailConfigFromEnv())

	nurseHandler := nurses.NewNurseHandler(s.db)
	nurseHandler.RegisterRoutes(subrouter)

	availabilityHandler := availability.NewAvailabilityHandler(s.db)
	availabilityHandler.RegisterRoutes(subrouter)

	walkHandler := walks.NewWalkHandler(s.db, notifier)
	walkHandler.RegisterRoutes(subrouter)

	notificationHandler := notification.NewNotificationHandler(s.db)
	notificationHandler.RegisterRoutes(subrouter)

	dashboardHandler := dashboard.NewDashboardHandler(s.db)
	dashboardHandler.RegisterRoutes(subrouter)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	corsOrigins := handlers.AllowedOrigins([]string{envOr("CORS_ORIGIN", "*")})
	corsMethods := handlers.AllowedMethods([]string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	corsHeaders := handlers.AllowedHeaders([]string{"Content-Type", "Authorization"})

	handler := handlers.CORS(corsOrigins, corsMethods, corsHeaders)(router)
	handler = handlers.LoggingHandler(os.Stdout, handler)

	log.Println("Server running at", s.address)
	return http.ListenAndServe(s.address, handler)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
