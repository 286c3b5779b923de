package walks

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/Team-lead001/silver-walks-backend/cmd/utils"
	"github.com/Team-lead001/silver-walks-backend/service/availability"
	"github.com/Team-lead001/silver-walks-backend/service/observability"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Notification templates dispatched at lifecycle transitions.
const (
	TemplateWalkRequested = "walk_requested"
	TemplateWalkConfirmed = "walk_confirmed"
	TemplateWalkRejected  = "walk_rejected"
	TemplateWalkCancelled = "walk_cancelled"
	TemplateWalkCompleted = "walk_completed"
	TemplateWalkReminder  = "walk_reminder"
)

// Notifier dispatches a templated event to a user's registered devices.
// Implementations must swallow their own failures; a missed notification
// never fails the transition it accompanies.
type Notifier interface {
	Dispatch(userID uuid.UUID, template string, data map[string]string)
}

type WalkHandler struct {
	db       *gorm.DB
	notifier Notifier
	now      func() time.Time
}

func NewWalkHandler(db *gorm.DB, notifier Notifier) *WalkHandler {
	return &WalkHandler{db: db, notifier: notifier, now: time.Now}
}

func (h *WalkHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/walks", h.RequestWalk).Methods("POST")
	router.HandleFunc("/walks/reminders/due", h.DispatchDueReminders).Methods("GET")
	router.HandleFunc("/walks/{id}", h.GetWalk).Methods("GET")
	router.HandleFunc("/walks/{id}/confirm", h.ConfirmWalk).Methods("PATCH")
	router.HandleFunc("/walks/{id}/reject", h.RejectWalk).Methods("PATCH")
	router.HandleFunc("/walks/{id}/cancel", h.CancelWalk).Methods("PATCH")
	router.HandleFunc("/walks/{id}/start", h.StartWalk).Methods("PATCH")
	router.HandleFunc("/walks/{id}/finish", h.FinishWalk).Methods("PATCH")
	router.HandleFunc("/walks/{id}/feedback", h.AttachFeedback).Methods("POST")
	router.HandleFunc("/elderly/{elderlyId}/walks", h.GetElderlyWalks).Methods("GET")
	router.HandleFunc("/elderly/{elderlyId}/walks/today", h.GetTodayWalk).Methods("GET")
	router.HandleFunc("/elderly/{elderlyId}/walks/week", h.GetWeeklyWalks).Methods("GET")
	router.HandleFunc("/elderly/{elderlyId}/walks/upcoming", h.GetElderlyUpcomingWalks).Methods("GET")
	router.HandleFunc("/elderly/{elderlyId}/walks/statistics", h.GetWalkStatistics).Methods("GET")
	router.HandleFunc("/nurses/{nurseId}/walks", h.GetNurseWalks).Methods("GET")
	router.HandleFunc("/nurses/{nurseId}/walks/upcoming", h.GetNurseUpcomingWalks).Methods("GET")
}

// RequestWalk matches a booking request against the nurse's availability and
// creates the session in the scheduled state. The match itself is advisory;
// the authoritative decision is this create.
func (h *WalkHandler) RequestWalk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ElderlyID       uuid.UUID `json:"elderly_id"`
		NurseID         uuid.UUID `json:"nurse_id"`
		Date            string    `json:"date"`
		Time            string    `json:"time"`
		DurationMinutes int       `json:"duration_minutes"`
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
	if _, err := utils.ClockMinutes(req.Time); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.DurationMinutes <= 0 {
		http.Error(w, "duration_minutes must be positive", http.StatusBadRequest)
		return
	}

	var elderly models.ElderlyProfile
	if err := h.db.First(&elderly, "id = ?", req.ElderlyID).Error; err != nil {
		http.Error(w, "Elderly profile not found", http.StatusNotFound)
		return
	}

	var nurse models.NurseProfile
	if err := h.db.Preload("Availability").First(&nurse, "id = ?", req.NurseID).Error; err != nil {
		http.Error(w, "Nurse not found", http.StatusNotFound)
		return
	}

	observability.MatchQueriesTotal.Inc()
	if !availability.IsNurseAvailable(&nurse, date, req.Time, &elderly) {
		http.Error(w, "Nurse is not available at the requested time", http.StatusConflict)
		return
	}

	walk := models.WalkSession{
		ElderlyID:       elderly.ID,
		NurseID:         nurse.ID,
		ScheduledDate:   date,
		ScheduledTime:   req.Time,
		DurationMinutes: req.DurationMinutes,
		Status:          models.WalkScheduled,
	}
	if err := h.db.Create(&walk).Error; err != nil {
		http.Error(w, "Error creating walk session", http.StatusInternalServerError)
		return
	}

	h.notify(nurse.UserID, TemplateWalkRequested, map[string]string{
		"walk_id":      walk.ID.String(),
		"elderly_name": elderly.Name,
		"date":         req.Date,
		"time":         req.Time,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(walk)
}

func (h *WalkHandler) GetWalk(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid walk ID", http.StatusBadRequest)
		return
	}

	var walk models.WalkSession
	if err := h.db.Preload("Elderly").Preload("Nurse").First(&walk, "id = ?", id).Error; err != nil {
		http.Error(w, "Walk session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(walk)
}

func (h *WalkHandler) ConfirmWalk(w http.ResponseWriter, r *http.Request) {
	h.handleTransition(w, r, TransitionConfirm, nil, nil, TemplateWalkConfirmed, notifyElderly)
}

func (h *WalkHandler) RejectWalk(w http.ResponseWriter, r *http.Request) {
	// A rejection records no cancellation reason; the fields carry distinct
	// semantics even though both paths end the session.
	h.handleTransition(w, r, TransitionReject, nil, nil, TemplateWalkRejected, notifyElderly)
}

func (h *WalkHandler) CancelWalk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	build := func(walk *models.WalkSession) (map[string]interface{}, error) {
		if req.Reason == "" {
			return nil, models.ValidationError{Field: "reason", Message: "a cancellation reason is required"}
		}
		return map[string]interface{}{"cancellation_reason": req.Reason}, nil
	}
	h.handleTransition(w, r, TransitionCancel, build, nil, TemplateWalkCancelled, notifyBoth)
}

func (h *WalkHandler) StartWalk(w http.ResponseWriter, r *http.Request) {
	build := func(walk *models.WalkSession) (map[string]interface{}, error) {
		return map[string]interface{}{"actual_start_time": time.Now()}, nil
	}
	h.handleTransition(w, r, TransitionStart, build, nil, "", 0)
}

// FinishWalk completes the session, stamps the actual end time and records
// whatever telemetry the caller supplies. Points are derived from distance
// (one per 100 meters); nurse counters are bumped in the same transaction.
func (h *WalkHandler) FinishWalk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DistanceMeters *int            `json:"distance_meters"`
		StepsCount     *int            `json:"steps_count"`
		CaloriesBurned *int            `json:"calories_burned"`
		RouteData      json.RawMessage `json:"route_data"`
	}
	// Telemetry is optional; an empty finish body is fine.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var points *int
	if req.DistanceMeters != nil {
		p := *req.DistanceMeters / 100
		points = &p
	}

	build := func(walk *models.WalkSession) (map[string]interface{}, error) {
		updates := map[string]interface{}{"actual_end_time": time.Now()}
		if req.DistanceMeters != nil {
			updates["distance_meters"] = *req.DistanceMeters
		}
		if req.StepsCount != nil {
			updates["steps_count"] = *req.StepsCount
		}
		if req.CaloriesBurned != nil {
			updates["calories_burned"] = *req.CaloriesBurned
		}
		if points != nil {
			updates["points_earned"] = *points
		}
		if len(req.RouteData) > 0 {
			updates["route_data"] = []byte(req.RouteData)
		}
		return updates, nil
	}

	after := func(tx *gorm.DB, walk *models.WalkSession) error {
		counters := map[string]interface{}{
			"total_walks": gorm.Expr("total_walks + 1"),
		}
		if points != nil {
			counters["points_earned"] = gorm.Expr("points_earned + ?", *points)
		}
		return tx.Model(&models.NurseProfile{}).
			Where("id = ?", walk.NurseID).
			Updates(counters).Error
	}

	h.handleTransition(w, r, TransitionFinish, build, after, TemplateWalkCompleted, notifyElderly)
}

type notifyTarget int

const (
	notifyElderly notifyTarget = iota + 1
	notifyNurse
	notifyBoth
)

// handleTransition runs the shared fetch-check-write cycle for a lifecycle
// operation and dispatches the transition's notification after commit.
func (h *WalkHandler) handleTransition(
	w http.ResponseWriter,
	r *http.Request,
	transition Transition,
	build func(*models.WalkSession) (map[string]interface{}, error),
	after func(*gorm.DB, *models.WalkSession) error,
	template string,
	target notifyTarget,
) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid walk ID", http.StatusBadRequest)
		return
	}

	walk, err := h.transitionWalk(id, transition, build, after)
	if err != nil {
		observability.WalkTransitionsTotal.WithLabelValues(string(transition), "error").Inc()
		writeError(w, err)
		return
	}
	observability.WalkTransitionsTotal.WithLabelValues(string(transition), "ok").Inc()

	if template != "" {
		h.notifyParties(walk, template, target)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(walk)
}

// transitionWalk applies one lifecycle transition inside a single storage
// transaction. The status write is conditional on the status that was read,
// so of two racing transitions on the same session exactly one commits and
// the loser surfaces a ConflictError. An illegal move is detected before any
// write and leaves the row untouched.
func (h *WalkHandler) transitionWalk(
	id uuid.UUID,
	transition Transition,
	build func(*models.WalkSession) (map[string]interface{}, error),
	after func(*gorm.DB, *models.WalkSession) error,
) (*models.WalkSession, error) {
	var walk models.WalkSession
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&walk, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFoundError{Resource: "walk session", ID: id.String()}
			}
			return err
		}

		to, err := NextStatus(walk.Status, transition)
		if err != nil {
			return err
		}

		updates := map[string]interface{}{"status": to}
		if build != nil {
			extra, err := build(&walk)
			if err != nil {
				return err
			}
			for k, v := range extra {
				updates[k] = v
			}
		}

		res := tx.Model(&models.WalkSession{}).
			Where("id = ? AND status = ?", id, walk.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return models.ConflictError{Resource: "walk session", ID: id.String()}
		}

		if err := tx.First(&walk, "id = ?", id).Error; err != nil {
			return err
		}
		if after != nil {
			return after(tx, &walk)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &walk, nil
}

// AttachFeedback stores one side's feedback on a completed walk. Attaching
// before completion is rejected. An elderly rating feeds the nurse's profile
// rating, which is recomputed from feedback history rather than written
// directly.
func (h *WalkHandler) AttachFeedback(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid walk ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Role   string   `json:"role"`
		Rating *float64 `json:"rating"`
		Note   string   `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Role != "elderly" && req.Role != "nurse" {
		http.Error(w, "role must be \"elderly\" or \"nurse\"", http.StatusBadRequest)
		return
	}
	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		http.Error(w, "rating must be between 0 and 5", http.StatusBadRequest)
		return
	}

	feedback := &models.WalkFeedback{Rating: req.Rating, Note: req.Note}

	var walk models.WalkSession
	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&walk, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NotFoundError{Resource: "walk session", ID: id.String()}
			}
			return err
		}
		if walk.Status != models.WalkCompleted {
			return models.ValidationError{Field: "status", Message: "feedback can only be attached to a completed walk"}
		}

		column := "ElderlyFeedback"
		if req.Role == "nurse" {
			column = "NurseFeedback"
			walk.NurseFeedback = feedback
		} else {
			walk.ElderlyFeedback = feedback
		}
		if err := tx.Model(&walk).Select(column).Updates(&walk).Error; err != nil {
			return err
		}

		if req.Role == "elderly" && req.Rating != nil {
			return recomputeNurseRating(tx, walk.NurseID)
		}
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(walk)
}

// recomputeNurseRating rederives the nurse's profile rating from the elderly
// feedback left on their completed walks. The profile field is never assigned
// from a single booking operation.
func recomputeNurseRating(tx *gorm.DB, nurseID uuid.UUID) error {
	var sessions []models.WalkSession
	if err := tx.Where("nurse_id = ? AND status = ?", nurseID, models.WalkCompleted).
		Find(&sessions).Error; err != nil {
		return err
	}

	var sum float64
	var count int
	for _, s := range sessions {
		if s.ElderlyFeedback != nil && s.ElderlyFeedback.Rating != nil {
			sum += *s.ElderlyFeedback.Rating
			count++
		}
	}
	if count == 0 {
		return nil
	}

	return tx.Model(&models.NurseProfile{}).
		Where("id = ?", nurseID).
		Update("rating", sum/float64(count)).Error
}

func (h *WalkHandler) GetElderlyWalks(w http.ResponseWriter, r *http.Request) {
	elderlyID, err := uuid.Parse(mux.Vars(r)["elderlyId"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}

	query := h.db.Model(&models.WalkSession{}).Where("elderly_id = ?", elderlyID).Preload("Nurse")

	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if startDate := r.URL.Query().Get("start_date"); startDate != "" {
		query = query.Where("scheduled_date >= ?", startDate)
	}
	if endDate := r.URL.Query().Get("end_date"); endDate != "" {
		query = query.Where("scheduled_date <= ?", endDate)
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		if n, err := parsePositiveInt(limit); err == nil {
			query = query.Limit(n)
		}
	}

	var sessions []models.WalkSession
	if err := query.Order("scheduled_date DESC, scheduled_time DESC").Find(&sessions).Error; err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *WalkHandler) GetTodayWalk(w http.ResponseWriter, r *http.Request) {
	elderlyID, err := uuid.Parse(mux.Vars(r)["elderlyId"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}

	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	var walk models.WalkSession
	err = h.db.Where("elderly_id = ? AND scheduled_date >= ? AND scheduled_date < ?", elderlyID, today, tomorrow).
		Order("scheduled_time ASC").
		Preload("Nurse").
		First(&walk).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "No walk scheduled for today", http.StatusNotFound)
			return
		}
		http.Error(w, "Error retrieving walk session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(walk)
}

func (h *WalkHandler) GetWeeklyWalks(w http.ResponseWriter, r *http.Request) {
	elderlyID, err := uuid.Parse(mux.Vars(r)["elderlyId"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}

	weekStart, err := utils.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		http.Error(w, "start query parameter is required (YYYY-MM-DD)", http.StatusBadRequest)
		return
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	var sessions []models.WalkSession
	if err := h.db.Where("elderly_id = ? AND scheduled_date >= ? AND scheduled_date <= ?", elderlyID, weekStart, weekEnd).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&sessions).Error; err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *WalkHandler) GetElderlyUpcomingWalks(w http.ResponseWriter, r *http.Request) {
	elderlyID, err := uuid.Parse(mux.Vars(r)["elderlyId"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}
	h.upcomingWalks(w, "elderly_id", elderlyID)
}

func (h *WalkHandler) GetNurseUpcomingWalks(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}
	h.upcomingWalks(w, "nurse_id", nurseID)
}

func (h *WalkHandler) upcomingWalks(w http.ResponseWriter, column string, id uuid.UUID) {
	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var sessions []models.WalkSession
	err := h.db.Where(column+" = ? AND status IN ? AND scheduled_date >= ?",
		id, []models.WalkStatus{models.WalkScheduled, models.WalkConfirmed}, today).
		Order("scheduled_date ASC, scheduled_time ASC").
		Find(&sessions).Error
	if err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

func (h *WalkHandler) GetNurseWalks(w http.ResponseWriter, r *http.Request) {
	nurseID, err := uuid.Parse(mux.Vars(r)["nurseId"])
	if err != nil {
		http.Error(w, "Invalid nurse ID", http.StatusBadRequest)
		return
	}

	query := h.db.Where("nurse_id = ?", nurseID)
	if status := r.URL.Query().Get("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var sessions []models.WalkSession
	if err := query.Order("scheduled_date DESC, scheduled_time DESC").Find(&sessions).Error; err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessions)
}

// GetWalkStatistics aggregates the elderly's history over an optional
// calendar period (month, year or all-time).
func (h *WalkHandler) GetWalkStatistics(w http.ResponseWriter, r *http.Request) {
	elderlyID, err := uuid.Parse(mux.Vars(r)["elderlyId"])
	if err != nil {
		http.Error(w, "Invalid elderly ID", http.StatusBadRequest)
		return
	}

	period := r.URL.Query().Get("period")
	switch period {
	case "", "month", "year", "all-time":
	default:
		http.Error(w, "period must be one of month, year, all-time", http.StatusBadRequest)
		return
	}

	query := h.db.Where("elderly_id = ?", elderlyID)
	if start, bounded := PeriodStart(period, h.now()); bounded {
		query = query.Where("scheduled_date >= ?", start)
	}

	var sessions []models.WalkSession
	if err := query.Find(&sessions).Error; err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ComputeStatistics(sessions))
}

// DispatchDueReminders notifies the elderly side of confirmed walks starting
// within the next hour. The sweep is caller-triggered; there is no background
// scheduler in this service. The query spans today and tomorrow so a sweep
// shortly before midnight still sees walks starting just after it.
func (h *WalkHandler) DispatchDueReminders(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var sessions []models.WalkSession
	if err := h.db.Where("status = ? AND scheduled_date >= ? AND scheduled_date < ?",
		models.WalkConfirmed, today, today.AddDate(0, 0, 2)).
		Preload("Elderly").Preload("Nurse").
		Find(&sessions).Error; err != nil {
		http.Error(w, "Error retrieving walk sessions", http.StatusInternalServerError)
		return
	}

	var due []models.WalkSession
	for _, s := range sessions {
		minutes, err := utils.ClockMinutes(s.ScheduledTime)
		if err != nil {
			continue
		}
		day := time.Date(s.ScheduledDate.Year(), s.ScheduledDate.Month(), s.ScheduledDate.Day(),
			0, 0, 0, 0, now.Location())
		startsAt := day.Add(time.Duration(minutes) * time.Minute)
		if startsAt.After(now) && startsAt.Before(now.Add(time.Hour)) {
			due = append(due, s)
		}
	}

	for _, s := range due {
		if s.Elderly == nil {
			continue
		}
		data := map[string]string{
			"walk_id": s.ID.String(),
			"time":    s.ScheduledTime,
		}
		if s.Nurse != nil {
			data["nurse_name"] = s.Nurse.Name
		}
		h.notify(s.Elderly.UserID, TemplateWalkReminder, data)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"reminders_sent": len(due),
		"walks":          due,
	})
}

// notifyParties resolves the profile owners of a walk and dispatches the
// template to the requested side(s).
func (h *WalkHandler) notifyParties(walk *models.WalkSession, template string, target notifyTarget) {
	data := map[string]string{
		"walk_id": walk.ID.String(),
		"date":    walk.ScheduledDate.Format("2006-01-02"),
		"time":    walk.ScheduledTime,
		"status":  string(walk.Status),
	}

	if target == notifyElderly || target == notifyBoth {
		var elderly models.ElderlyProfile
		if err := h.db.First(&elderly, "id = ?", walk.ElderlyID).Error; err == nil {
			h.notify(elderly.UserID, template, data)
		}
	}
	if target == notifyNurse || target == notifyBoth {
		var nurse models.NurseProfile
		if err := h.db.First(&nurse, "id = ?", walk.NurseID).Error; err == nil {
			h.notify(nurse.UserID, template, data)
		}
	}
}

func (h *WalkHandler) notify(userID uuid.UUID, template string, data map[string]string) {
	if h.notifier == nil {
		return
	}
	h.notifier.Dispatch(userID, template, data)
}

func parsePositiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, errors.New("must be positive")
	}
	return n, nil
}

// writeError maps the core's typed errors onto HTTP statuses. Validation and
// not-found are permanent; an invalid transition is permanent for the current
// state; a conflict may be transient, so it gets its own status and message
// for callers deciding whether to retry.
func writeError(w http.ResponseWriter, err error) {
	var (
		validation models.ValidationError
		notFound   models.NotFoundError
		invalid    models.InvalidTransitionError
		conflict   models.ConflictError
	)
	switch {
	case errors.As(err, &validation):
		http.Error(w, validation.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, notFound.Error(), http.StatusNotFound)
	case errors.As(err, &invalid):
		http.Error(w, invalid.Error(), http.StatusUnprocessableEntity)
	case errors.As(err, &conflict):
		http.Error(w, conflict.Error(), http.StatusConflict)
	default:
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
