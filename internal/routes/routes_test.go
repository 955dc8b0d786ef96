package routes

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/config"
	"vehicle_logbook/internal/export"
	"vehicle_logbook/internal/service"
	"vehicle_logbook/internal/storetest"
)

func newTestRouter(t *testing.T) (*gin.Engine, *storetest.MemStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := storetest.New()
	cfg := &config.Config{CORSAllowedOrigins: []string{"*"}}
	return SetupRouter(service.NewService(store), cfg, io.Discard), store
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func seed(t *testing.T, r http.Handler) {
	t.Helper()
	w := do(t, r, http.MethodPost, "/workers", gin.H{"name": "Ana Gómez", "national_id": "20111222", "shift_label": "morning"})
	if w.Code != http.StatusOK {
		t.Fatalf("create worker: %d %s", w.Code, w.Body)
	}
	w = do(t, r, http.MethodPost, "/vehicles", gin.H{"plate": "ab123cd", "model": "Hilux", "year": 2019})
	if w.Code != http.StatusOK {
		t.Fatalf("create vehicle: %d %s", w.Code, w.Body)
	}
}

var examplePayload = gin.H{
	"worker_id":      1,
	"vehicle_id":     2,
	"date":           "2024-03-01",
	"shift_label":    "morning",
	"record_type":    "start_of_shift",
	"odometer_km":    15234.5,
	"equipment":      gin.H{"pertiga": true},
	"vehicle_checks": gin.H{"luces": true},
}

type detail struct {
	ID            uint            `json:"id"`
	Date          string          `json:"date"`
	OdometerKm    *float64        `json:"odometer_km"`
	WorkerName    string          `json:"worker_name"`
	VehiclePlate  string          `json:"vehicle_plate"`
	Equipment     map[string]bool `json:"equipment"`
	VehicleChecks map[string]bool `json:"vehicle_checks"`
	Fuel          *struct {
		FuelLiters *float64 `json:"fuel_liters"`
		FuelNotes  *string  `json:"fuel_notes"`
	} `json:"fuel"`
}

func TestCreateThenGetShiftRecord(t *testing.T) {
	r, _ := newTestRouter(t)
	seed(t, r)

	w := do(t, r, http.MethodPost, "/shift-records", examplePayload)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	created := decode[struct{ ID uint }](t, w)
	if created.ID == 0 {
		t.Fatalf("no id in %s", w.Body)
	}

	w = do(t, r, http.MethodGet, "/shift-records/"+itoa(created.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}
	d := decode[detail](t, w)
	if d.OdometerKm == nil || *d.OdometerKm != 15234.5 {
		t.Errorf("odometer = %v", d.OdometerKm)
	}
	if d.Date != "2024-03-01" || d.WorkerName != "Ana Gómez" || d.VehiclePlate != "AB123CD" {
		t.Errorf("detail = %+v", d)
	}
	if len(d.Equipment) != 16 || len(d.VehicleChecks) != 12 {
		t.Fatalf("checklist sizes = %d/%d", len(d.Equipment), len(d.VehicleChecks))
	}
	for item, on := range d.Equipment {
		if on != (item == "pertiga") {
			t.Errorf("equipment.%s = %v", item, on)
		}
	}
	for item, on := range d.VehicleChecks {
		if on != (item == "luces") {
			t.Errorf("vehicle_checks.%s = %v", item, on)
		}
	}
	if d.Fuel != nil {
		t.Errorf("fuel = %+v, want null", d.Fuel)
	}
}

func TestCreateShiftRecordFromForm(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, r)

	values := url.Values{
		"worker_id":      {"1"},
		"vehicle_id":     {"2"},
		"date":           {"2024-03-01"},
		"shift_label":    {"morning"},
		"record_type":    {"start_of_shift"},
		"odometer_km":    {"15234.5"},
		"equipment":      {"pertiga"},
		"vehicle_checks": {"luces"},
		"fuel_liters":    {"35"},
	}
	req := httptest.NewRequest(http.MethodPost, "/shift-records", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body)
	}
	id := decode[struct{ ID uint }](t, w).ID

	d := decode[detail](t, do(t, r, http.MethodGet, "/shift-records/"+itoa(id), nil))
	if !d.Equipment["pertiga"] || !d.VehicleChecks["luces"] || d.Equipment["linterna"] {
		t.Errorf("checklists = %v / %v", d.Equipment, d.VehicleChecks)
	}
	if d.Fuel == nil || d.Fuel.FuelLiters == nil || *d.Fuel.FuelLiters != 35 {
		t.Errorf("fuel = %+v", d.Fuel)
	}
	if _, _, _, fuel := store.Counts(); fuel != 1 {
		t.Errorf("fuel rows = %d", fuel)
	}
}

func TestCreateShiftRecordErrors(t *testing.T) {
	with := func(k string, v any) gin.H {
		out := gin.H{}
		for key, val := range examplePayload {
			out[key] = val
		}
		if v == nil {
			delete(out, k)
		} else {
			out[k] = v
		}
		return out
	}

	cases := []struct {
		name    string
		body    gin.H
		failAt  string
		status  int
		message string
	}{
		{"missing worker", with("worker_id", nil), "", http.StatusBadRequest, "missing required fields: worker_id"},
		{"missing odometer", with("odometer_km", nil), "", http.StatusBadRequest, "odometer_km is required"},
		{"unknown equipment", with("equipment", gin.H{"taladro": true}), "", http.StatusBadRequest, `unknown equipment item "taladro"`},
		{"unknown vehicle check", with("vehicle_checks", gin.H{"gps": true}), "", http.StatusBadRequest, `unknown vehicle check "gps"`},
		{"storage failure", with("fuel", gin.H{"fuel_liters": 20}), storetest.StepFuel, http.StatusInternalServerError, "internal server error"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, store := newTestRouter(t)
			seed(t, r)
			store.FailAt = c.failAt

			w := do(t, r, http.MethodPost, "/shift-records", c.body)
			if w.Code != c.status {
				t.Fatalf("status = %d, want %d (%s)", w.Code, c.status, w.Body)
			}
			got := decode[struct{ Error string }](t, w)
			if !strings.Contains(got.Error, c.message) {
				t.Errorf("error = %q, want it to contain %q", got.Error, c.message)
			}
			if rows, _, _, _ := store.Counts(); rows != 0 {
				t.Errorf("records = %d after failure", rows)
			}
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	r, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodPost, "/shift-records", strings.NewReader(`{"worker_id":`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestWorkerAndVehicleEndpoints(t *testing.T) {
	r, store := newTestRouter(t)
	seed(t, r)

	w := do(t, r, http.MethodPost, "/workers", gin.H{"name": "Otra", "national_id": "20111222", "shift_label": "night"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate worker status = %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/vehicles", gin.H{"plate": "AB123CD"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate vehicle status = %d", w.Code)
	}
	if store.WorkerCount() != 1 || store.VehicleCount() != 1 {
		t.Errorf("counts changed: %d workers, %d vehicles", store.WorkerCount(), store.VehicleCount())
	}

	w = do(t, r, http.MethodPost, "/workers", gin.H{"name": "Sin DNI", "shift_label": "night"})
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "national_id") {
		t.Errorf("missing national id: %d %s", w.Code, w.Body)
	}

	vehicles := decode[[]struct{ Plate string }](t, do(t, r, http.MethodGet, "/vehicles", nil))
	if len(vehicles) != 1 || vehicles[0].Plate != "AB123CD" {
		t.Errorf("vehicles = %+v", vehicles)
	}

	if w := do(t, r, http.MethodDelete, "/workers/1", nil); w.Code != http.StatusOK {
		t.Errorf("deactivate status = %d", w.Code)
	}
	workers := decode[[]struct{ ID uint }](t, do(t, r, http.MethodGet, "/workers", nil))
	if len(workers) != 0 {
		t.Errorf("workers after deactivation = %+v", workers)
	}
	if w := do(t, r, http.MethodDelete, "/vehicles/99", nil); w.Code != http.StatusNotFound {
		t.Errorf("unknown vehicle status = %d", w.Code)
	}
	if w := do(t, r, http.MethodDelete, "/vehicles/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", w.Code)
	}
}

func TestListAndExportShiftRecords(t *testing.T) {
	r, _ := newTestRouter(t)
	seed(t, r)
	for _, day := range []string{"2023-12-31", "2024-01-10", "2024-01-31", "2024-02-01"} {
		body := gin.H{}
		for k, v := range examplePayload {
			body[k] = v
		}
		body["date"] = day
		if w := do(t, r, http.MethodPost, "/shift-records", body); w.Code != http.StatusOK {
			t.Fatalf("create %s: %d %s", day, w.Code, w.Body)
		}
	}

	w := do(t, r, http.MethodGet, "/shift-records?date_from=2024-01-01&date_to=2024-01-31", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	rows := decode[[]struct {
		Date       string `json:"date"`
		WorkerName string `json:"worker_name"`
	}](t, w)
	if len(rows) != 2 || rows[0].Date != "2024-01-31" || rows[1].Date != "2024-01-10" {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].WorkerName != "Ana Gómez" {
		t.Errorf("worker name = %q", rows[0].WorkerName)
	}

	for _, q := range []string{"limit=-1", "date_from=ayer", "worker_id=abc", "date_from=2024-02-01&date_to=2024-01-01"} {
		if w := do(t, r, http.MethodGet, "/shift-records?"+q, nil); w.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", q, w.Code)
		}
	}

	w = do(t, r, http.MethodGet, "/shift-records/export?limit=3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("export status = %d %s", w.Code, w.Body)
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/vnd.openxmlformats") {
		t.Errorf("content type = %q", ct)
	}
	f, err := excelize.OpenReader(w.Body)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer f.Close()
	sheet, _ := f.GetRows(export.SheetName)
	if len(sheet) != 4 {
		t.Errorf("export rows = %d, want header + 3", len(sheet))
	}
}

func TestShiftRecordNotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/shift-records/12345", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if got := decode[struct{ Error string }](t, w); got.Error == "" {
		t.Errorf("empty error body")
	}
}

func TestFormTemplate(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/shift-records/form", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	tpl := decode[struct {
		Date           string   `json:"date"`
		EquipmentItems []string `json:"equipment_items"`
	}](t, w)
	if len(tpl.Date) != len("2006-01-02") || len(tpl.EquipmentItems) != 16 {
		t.Errorf("template = %+v", tpl)
	}
}

func TestHealth(t *testing.T) {
	r, store := newTestRouter(t)
	if w := do(t, r, http.MethodGet, "/health", nil); w.Code != http.StatusOK {
		t.Errorf("healthy status = %d", w.Code)
	}
	store.PingErr = apperr.Storage("database unreachable", errors.New("connection refused"))
	if w := do(t, r, http.MethodGet, "/health", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("unhealthy status = %d", w.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("response has no request id")
	}
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
