package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type DashboardHandler struct {
	db *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	TotalElderly    int64 `json:"total_elderly"`
	TotalNurses     int64 `json:"total_nurses"`
	PendingNurses   int64 `json:"pending_nurses"`
	ScheduledWalks  int64 `json:"scheduled_walks"`
	CompletedWalks  int64 `json:"completed_walks"`
	CancelledWalks  int64 `json:"cancelled_walks"`
	RegisteredUsers int64 `json:"registered_users"`
}

func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	dashboardRouter := router.PathPrefix("/dashboard").Subrouter()
	dashboardRouter.HandleFunc("/stats", h.GetDashboardStats).Methods("GET")
}

// GetDashboardStats returns platform-wide counts for the admin overview.
func (h *DashboardHandler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	var stats DashboardStats

	h.db.Model(&models.ElderlyProfile{}).Count(&stats.TotalElderly)
	h.db.Model(&models.NurseProfile{}).Count(&stats.TotalNurses)
	h.db.Model(&models.NurseProfile{}).
		Where("verification_status = ?", models.VerificationPending).
		Count(&stats.PendingNurses)
	h.db.Model(&models.WalkSession{}).
		Where("status = ?", models.WalkScheduled).
		Count(&stats.ScheduledWalks)
	h.db.Model(&models.WalkSession{}).
		Where("status = ?", models.WalkCompleted).
		Count(&stats.CompletedWalks)
	h.db.Model(&models.WalkSession{}).
		Where("status = ?", models.WalkCancelled).
		Count(&stats.CancelledWalks)
	h.db.Model(&models.User{}).Count(&stats.RegisteredUsers)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
