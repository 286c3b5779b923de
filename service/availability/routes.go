package availability

import (
	"encoding/json"
	"net/http"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

func (h *AvailabilityHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/nurses/{nurseId}/availability", h.GetAvailability).Methods("GET")
	router.HandleFunc("/nurses/{nurseId}/availability", h.ReplaceAvailability).Methods("PUT")
	router.HandleFunc("/nurses/{nurseId}/availability/dates", h.AddSpecificDateSlot).Methods("POST")
	router.HandleFunc("/nurses/{nurseId}/availability/dates/{id}", h.DeleteSpecificDateSlot).Methods("DELETE")
}

func (h *AvailabilityHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var slots []models.AvailabilitySlot
	if err := h.db.Where("nurse_id = ?", nurseID).
		Order("is_recurring DESC, day_of_week ASC, start_time ASC").
		Find(&slots).Error; err != nil {
		http.Error(w, "Error retrieving availability", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

// ReplaceAvailability swaps out the nurse's entire recurring weekly schedule.
// The delete and the inserts run in one transaction so a failed write never
// leaves the nurse with a half-replaced week. Specific-date slots are not
// touched.
func (h *AvailabilityHandler) ReplaceAvailability(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Slots []SlotInput `json:"slots"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := ValidateRecurringSlots(req.Slots); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.First(&nurse, "id = ?", nurseID).Error; err != nil {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	var created []models.AvailabilitySlot
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("nurse_id = ? AND is_recurring = ?", nurseID, true).
			Delete(&models.AvailabilitySlot{}).Error; err != nil {
			return err
		}
		for _, slot := range req.Slots {
			created = append(created, models.AvailabilitySlot{
				NurseID:     nurseID,
				IsRecurring: true,
				DayOfWeek:   slot.DayOfWeek,
				StartTime:   slot.StartTime,
				EndTime:     slot.EndTime,
			})
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		http.Error(w, "Error updating availability", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(created)
}

// AddSpecificDateSlot records a one-off availability window for an exact
// calendar date. These are additive and independent of the weekly schedule.
func (h *AvailabilityHandler) AddSpecificDateSlot(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Date      string `json:"date"`
		StartTime string `json:"start_time"`
		EndTime   string `json:"end_time"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := ValidateInterval(req.StartTime, req.EndTime); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.First(&nurse, "id = ?", nurseID).Error; err != nil {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	slot := models.AvailabilitySlot{
		NurseID:      nurseID,
		IsRecurring:  false,
		SpecificDate: &date,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
	}
	if err := h.db.Create(&slot).Error; err != nil {
		http.Error(w, "Error creating availability slot", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(slot)
}

func (h *AvailabilityHandler) DeleteSpecificDateSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	nurseID, err := uuid.Parse(vars["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		http.Error(w, "Invalid slot ID", http.StatusBadRequest)
		return
	}

	result := h.db.Where("id = ? AND nurse_id = ? AND is_recurring = ?", slotID, nurseID, false).
		Delete(&models.AvailabilitySlot{})
	if result.Error != nil {
		http.Error(w, "Error deleting availability slot", http.StatusInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		http.Error(w, "Availability slot not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message": "Availability slot deleted successfully",
	})
}
