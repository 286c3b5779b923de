package nurses

import (
	"encoding/json"
	"net/http"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
	"github.com/Team-lead001/silver-walks-backend/service/availability"
	"github.com/Team-lead001/silver-walks-backend/service/observability"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type NurseHandler struct {
	db *gorm.DB
}

func NewNurseHandler(db *gorm.DB) *NurseHandler {
	return &NurseHandler{db: db}
}

func (h *NurseHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/nurses", h.ListAvailableNurses).Methods("GET")
	router.HandleFunc("/nurses/{id}", h.GetNurse).Methods("GET")
	router.HandleFunc("/nurses/{id}/profile", h.UpdateProfile).Methods("PATCH")
	router.HandleFunc("/nurses/{id}/status", h.SetAvailabilityStatus).Methods("PATCH")
	router.HandleFunc("/nurses/{id}/certifications", h.AddCertification).Methods("POST")
	router.HandleFunc("/nurses/{id}/certifications/{certId}", h.DeleteCertification).Methods("DELETE")
	router.HandleFunc("/elderly/{id}/assigned-nurse", h.SetAssignedNurse).Methods("PATCH")
}

// ListAvailableNurses returns verification-approved nurses, highest rated
// first, optionally narrowed by specialization and a date/time window. When
// the caller identifies as an elderly profile via elderly_id, nurses reserved
// for that profile stay visible.
func (h *NurseHandler) ListAvailableNurses(w http.ResponseWriter, r *http.Request) {
	query := h.db.Model(&models.NurseProfile{}).
		Where("verification_status = ?", models.VerificationApproved).
		Preload("Availability").
		Preload("Certifications").
		Order("rating DESC")

	var nurses []models.NurseProfile
	if err := query.Find(&nurses).Error; err != nil {
		http.Error(w, "Error retrieving nurses", http.StatusInternalServerError)
		return
	}

	if spec := r.URL.Query().Get("specialization"); spec != "" {
		filtered := nurses[:0]
		for _, nurse := range nurses {
			for _, s := range nurse.Specializations {
				if s == spec {
					filtered = append(filtered, nurse)
					break
				}
			}
		}
		nurses = filtered
	}

	var elderly *models.ElderlyProfile
	if elderlyID := r.URL.Query().Get("elderly_id"); elderlyID != "" {
		id, err := uuid.Parse(elderlyID)
		if err != nil {
			http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
			return
		}
		var profile models.ElderlyProfile
		if err := h.db.First(&profile, "id = ?", id).Error; err == nil {
			elderly = &profile
		}
	}

	dateParam := r.URL.Query().Get("date")
	clockParam := r.URL.Query().Get("time")
	if dateParam != "" && clockParam != "" {
		date, err := utils.ParseDate(dateParam)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if _, err := utils.ClockMinutes(clockParam); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		observability.MatchQueriesTotal.Inc()
		nurses = availability.FilterAvailableNurses(nurses, date, clockParam, elderly)
	} else {
		// Without a window, only the status gate applies.
		filtered := nurses[:0]
		for i := range nurses {
			if availability.StatusAdmits(&nurses[i], elderly) {
				filtered = append(filtered, nurses[i])
			}
		}
		nurses = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nurses)
}

func (h *NurseHandler) GetNurse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.Preload("Availability").Preload("Certifications").
		First(&nurse, "id = ?", id).Error; err != nil {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nurse)
}

// UpdateProfile applies partial profile updates. Rating, walk counters and
// verification status are not writable here.
func (h *NurseHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Name              *string  `json:"name"`
		Phone             *string  `json:"phone"`
		Bio               *string  `json:"bio"`
		Specializations   []string `json:"specializations"`
		ExperienceYears   *int     `json:"experience_years"`
		MaxPatientsPerDay *int     `json:"max_patients_per_day"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Specializations != nil {
		updates["specializations"] = pq.StringArray(req.Specializations)
	}
	if req.ExperienceYears != nil {
		if *req.ExperienceYears < 0 || *req.ExperienceYears > 50 {
			http.Error(w, "experience_years must be between 0 and 50", http.StatusBadRequest)
			return
		}
		updates["experience_years"] = *req.ExperienceYears
	}
	if req.MaxPatientsPerDay != nil {
		if *req.MaxPatientsPerDay < 1 || *req.MaxPatientsPerDay > 20 {
			http.Error(w, "max_patients_per_day must be between 1 and 20", http.StatusBadRequest)
			return
		}
		updates["max_patients_per_day"] = *req.MaxPatientsPerDay
	}
	if len(updates) == 0 {
		http.Error(w, "No updatable fields provided", http.StatusBadRequest)
		return
	}

	result := h.db.Model(&models.NurseProfile{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		http.Error(w, "Error updating nurse profile", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.First(&nurse, "id = ?", id).Error; err != nil {
		http.Error(w, "Error retrieving nurse", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(nurse)
}

// SetAvailabilityStatus is the administrative reservation-status switch. It
// accepts only the four known states; bookability fails closed on anything
// else, so nothing else may be stored.
func (h *NurseHandler) SetAvailabilityStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status models.AvailabilityStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	switch req.Status {
	case models.NurseAvailable, models.NurseReserved, models.NurseSuspended, models.NurseOffline:
	default:
		http.Error(w, "status must be one of available, reserved, suspended, offline", http.StatusBadRequest)
		return
	}

	result := h.db.Model(&models.NurseProfile{}).Where("id = ?", id).
		Update("availability_status", req.Status)
	if result.Error != nil {
		http.Error(w, "Error updating status", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":     id,
		"status": req.Status,
	})
}

// SetAssignedNurse sets or clears the elderly's reserved-nurse reference.
func (h *NurseHandler) SetAssignedNurse(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}

	var req struct {
		NurseID *uuid.UUID `json:"nurse_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.NurseID != nil {
		var nurse models.NurseProfile
		if err := h.db.First(&nurse, "id = ?", *req.NurseID).Error; err != nil {
			http.Error(w, "Nurse not found", http.StatusNotFound)
			return
		}
	}

	result := h.db.Model(&models.ElderlyProfile{}).Where("id = ?", id).
		Update("assigned_nurse_id", req.NurseID)
	if result.Error != nil {
		http.Error(w, "Error updating assignment", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Elderly profile not found", http.StatusNotFound)
		return
	}

	var elderly models.ElderlyProfile
	if err := h.db.Preload("AssignedNurse").First(&elderly, "id = ?", id).Error; err != nil {
		http.Error(w, "Error retrieving elderly profile", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(elderly)
}

func (h *NurseHandler) AddCertification(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Name       string `json:"name"`
		Issuer     string `json:"issuer"`
		IssueDate  string `json:"issue_date"`
		ExpiryDate string `json:"expiry_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Issuer == "" {
		http.Error(w, "Certification name and issuer are required", http.StatusBadRequest)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.First(&nurse, "id = ?", id).Error; err != nil {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	issueDate, err := utils.ParseDate(req.IssueDate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	cert := models.NurseCertification{
		NurseID:   id,
		Name:      req.Name,
		Issuer:    req.Issuer,
		IssueDate: issueDate,
	}
	if req.ExpiryDate != "" {
		expiryDate, err := utils.ParseDate(req.ExpiryDate)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		cert.ExpiryDate = &expiryDate
	}

	if err := h.db.Create(&cert).Error; err != nil {
		http.Error(w, "Error creating certification", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(cert)
}

func (h *NurseHandler) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}
	certID, err := uuid.Parse(mux.Vars(r)["certId"])
	if err != nil {
		http.Error(w, "Invalid certification ID", http.StatusBadRequest)
		return
	}

	result := h.db.Where("id = ? AND nurse_id = ?", certID, nurseID).
		Delete(&models.NurseCertification{})
	if result.Error != nil {
		http.Error(w, "Error deleting certification", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Certification not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Certification deleted successfully",
	})
}
