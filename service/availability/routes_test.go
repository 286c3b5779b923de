package availability

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Team-lead001/silver-walks-backend/cmd/models"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.NurseProfile{},
		&models.ElderlyProfile{},
		&models.AvailabilitySlot{},
	); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *mux.Router {
	router := mux.NewRouter()
	NewAvailabilityHandler(db).RegisterRoutes(router)
	return router
}

func createNurse(t *testing.T, db *gorm.DB) models.NurseProfile {
	t.Helper()
	nurse := models.NurseProfile{
		UserID:             uuid.New(),
		Name:               "Ama Mensah",
		AvailabilityStatus: models.NurseAvailable,
		VerificationStatus: models.VerificationApproved,
	}
	if err := db.Create(&nurse).Error; err != nil {
		t.Fatalf("creating nurse: %v", err)
	}
	return nurse
}

func TestReplaceAvailability_KeepsSpecificDateSlots(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	nurse := createNurse(t, db)

	old := models.AvailabilitySlot{
		NurseID: nurse.ID, IsRecurring: true, DayOfWeek: 1,
		StartTime: "08:00", EndTime: "10:00",
	}
	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	oneOff := models.AvailabilitySlot{
		NurseID: nurse.ID, IsRecurring: false, SpecificDate: &date,
		StartTime: "14:00", EndTime: "16:00",
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seeding recurring slot: %v", err)
	}
	if err := db.Create(&oneOff).Error; err != nil {
		t.Fatalf("seeding specific-date slot: %v", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"slots": []SlotInput{
			{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"},
			{DayOfWeek: 4, StartTime: "13:00", EndTime: "17:00"},
		},
	})
	req := httptest.NewRequest(http.MethodPut, "/nurses/"+nurse.ID.String()+"/availability", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var recurring []models.AvailabilitySlot
	if err := db.Where("nurse_id = ? AND is_recurring = ?", nurse.ID, true).
		Order("day_of_week ASC").Find(&recurring).Error; err != nil {
		t.Fatalf("querying recurring slots: %v", err)
	}
	if len(recurring) != 2 || recurring[0].DayOfWeek != 2 || recurring[1].DayOfWeek != 4 {
		t.Fatalf("recurring schedule not replaced: %+v", recurring)
	}

	var oneOffs []models.AvailabilitySlot
	if err := db.Where("nurse_id = ? AND is_recurring = ?", nurse.ID, false).Find(&oneOffs).Error; err != nil {
		t.Fatalf("querying specific-date slots: %v", err)
	}
	if len(oneOffs) != 1 || oneOffs[0].ID != oneOff.ID {
		t.Fatalf("specific-date slot must survive replacement: %+v", oneOffs)
	}
}

func TestReplaceAvailability_RejectsInvalidSlots(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	nurse := createNurse(t, db)

	before := models.AvailabilitySlot{
		NurseID: nurse.ID, IsRecurring: true, DayOfWeek: 1,
		StartTime: "08:00", EndTime: "10:00",
	}
	if err := db.Create(&before).Error; err != nil {
		t.Fatalf("seeding slot: %v", err)
	}

	body, _ := json.Marshal(map[string]interface{}{
		"slots": []SlotInput{{DayOfWeek: 9, StartTime: "09:00", EndTime: "12:00"}},
	})
	req := httptest.NewRequest(http.MethodPut, "/nurses/"+nurse.ID.String()+"/availability", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Rejected input must leave the existing schedule untouched.
	var count int64
	db.Model(&models.AvailabilitySlot{}).Where("nurse_id = ?", nurse.ID).Count(&count)
	if count != 1 {
		t.Fatalf("schedule modified by rejected request, %d slots", count)
	}
}

func TestReplaceAvailability_UnknownNurse(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)

	body, _ := json.Marshal(map[string]interface{}{
		"slots": []SlotInput{{DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00"}},
	})
	req := httptest.NewRequest(http.MethodPut, "/nurses/"+uuid.NewString()+"/availability", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAddSpecificDateSlot(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	nurse := createNurse(t, db)

	body, _ := json.Marshal(map[string]string{
		"date":       "2025-03-01",
		"start_time": "10:00",
		"end_time":   "12:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/nurses/"+nurse.ID.String()+"/availability/dates", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var slots []models.AvailabilitySlot
	db.Where("nurse_id = ? AND is_recurring = ?", nurse.ID, false).Find(&slots)
	if len(slots) != 1 || slots[0].SpecificDate == nil {
		t.Fatalf("specific-date slot not persisted: %+v", slots)
	}
}

func TestAddSpecificDateSlot_InvalidInterval(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	nurse := createNurse(t, db)

	body, _ := json.Marshal(map[string]string{
		"date":       "2025-03-01",
		"start_time": "12:00",
		"end_time":   "10:00",
	})
	req := httptest.NewRequest(http.MethodPost, "/nurses/"+nurse.ID.String()+"/availability/dates", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDeleteSpecificDateSlot_IgnoresRecurring(t *testing.T) {
	db := setupTestDB(t)
	router := setupRouter(db)
	nurse := createNurse(t, db)

	recurring := models.AvailabilitySlot{
		NurseID: nurse.ID, IsRecurring: true, DayOfWeek: 1,
		StartTime: "08:00", EndTime: "10:00",
	}
	if err := db.Create(&recurring).Error; err != nil {
		t.Fatalf("seeding slot: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete,
		"/nurses/"+nurse.ID.String()+"/availability/dates/"+recurring.ID.String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("recurring slots must not be deletable here, got %d", rec.Code)
	}

	date := time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC)
	oneOff := models.AvailabilitySlot{
		NurseID: nurse.ID, IsRecurring: false, SpecificDate: &date,
		StartTime: "14:00", EndTime: "16:00",
	}
	if err := db.Create(&oneOff).Error; err != nil {
		t.Fatalf("seeding slot: %v", err)
	}

	req = httptest.NewRequest(http.MethodDelete,
		"/nurses/"+nurse.ID.String()+"/availability/dates/"+oneOff.ID.String(), nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var count int64
	db.Model(&models.AvailabilitySlot{}).Where("id = ?", oneOff.ID).Count(&count)
	if count != 0 {
		t.Fatal("specific-date slot not deleted")
	}
}
