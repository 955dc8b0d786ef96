package form

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
	"time"

	"vehicle_logbook/internal/apperr"
	"vehicle_logbook/internal/models"
	"vehicle_logbook/internal/service"
)

func baseValues() url.Values {
	return url.Values{
		"worker_id":      {"1"},
		"vehicle_id":     {"2"},
		"date":           {"2024-03-01"},
		"shift_label":    {"morning"},
		"record_type":    {"start_of_shift"},
		"odometer_km":    {"15234.5"},
		"equipment":      {"pertiga"},
		"vehicle_checks": {"luces"},
	}
}

func TestCollectMatchesJSONSubmission(t *testing.T) {
	in, err := Collect(baseValues())
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	odo := 15234.5
	jsonIn := service.ShiftRecordInput{
		WorkerID: 1, VehicleID: 2, Date: "2024-03-01", ShiftLabel: "morning",
		RecordType: "start_of_shift", OdometerKm: &odo,
		Equipment:     map[string]bool{"pertiga": true},
		VehicleChecks: map[string]bool{"luces": true},
	}

	fromForm, err := service.BuildShiftRecord(in)
	if err != nil {
		t.Fatalf("BuildShiftRecord(form): %v", err)
	}
	fromJSON, err := service.BuildShiftRecord(jsonIn)
	if err != nil {
		t.Fatalf("BuildShiftRecord(json): %v", err)
	}
	if !reflect.DeepEqual(fromForm, fromJSON) {
		t.Errorf("form record %+v differs from json record %+v", fromForm, fromJSON)
	}
}

func TestCollectRequiredFields(t *testing.T) {
	for _, name := range requiredFields {
		t.Run(name, func(t *testing.T) {
			v := baseValues()
			v.Set(name, "  ")
			_, err := Collect(v)
			var appErr *apperr.Error
			if !errors.As(err, &appErr) || !errors.Is(err, apperr.ErrValidation) {
				t.Fatalf("err = %v, want validation", err)
			}
			if want := "missing required fields: " + name; appErr.Message != want {
				t.Errorf("message = %q, want %q", appErr.Message, want)
			}
		})
	}
}

func TestCollectOdometer(t *testing.T) {
	cases := []struct {
		name       string
		recordType string
		odometer   string
		wantErr    bool
		wantOdo    *float64
	}{
		{"start requires it", "start_of_shift", "", true, nil},
		{"end requires it", "end_of_shift", "", true, nil},
		{"end with value", "end_of_shift", "1200", false, ptr(1200.0)},
		{"decimal comma", "start_of_shift", "99,5", false, ptr(99.5)},
		{"not a number", "start_of_shift", "mucho", true, nil},
		{"other discards it", "other", "500", false, nil},
		{"other without it", "other", "", false, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := baseValues()
			v.Set("record_type", c.recordType)
			v.Set("odometer_km", c.odometer)
			in, err := Collect(v)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if c.wantErr {
				return
			}
			if !reflect.DeepEqual(in.OdometerKm, c.wantOdo) {
				t.Errorf("odometer = %v, want %v", in.OdometerKm, c.wantOdo)
			}
		})
	}
}

func TestCollectFuelAndNotes(t *testing.T) {
	v := baseValues()
	v.Set("fuel_liters", "")
	v.Set("fuel_notes", "  ")
	v.Set("general_notes", "sin novedad")
	in, err := Collect(v)
	if err != nil {
		t.Fatal(err)
	}
	if in.Fuel != nil {
		t.Errorf("fuel = %+v, want nil", in.Fuel)
	}
	if in.GeneralNotes == nil || *in.GeneralNotes != "sin novedad" {
		t.Errorf("general notes = %v", in.GeneralNotes)
	}

	v.Set("fuel_liters", "40")
	in, err = Collect(v)
	if err != nil {
		t.Fatal(err)
	}
	if in.Fuel == nil || in.Fuel.FuelLiters == nil || *in.Fuel.FuelLiters != 40 {
		t.Errorf("fuel = %+v", in.Fuel)
	}

	v.Set("fuel_liters", "x")
	if _, err := Collect(v); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("bad liters: err = %v", err)
	}
}

func TestCollectRejectsBadIDs(t *testing.T) {
	v := baseValues()
	v.Set("worker_id", "abc")
	if _, err := Collect(v); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v", err)
	}
	v = baseValues()
	v.Set("vehicle_id", "0")
	if _, err := Collect(v); !errors.Is(err, apperr.ErrValidation) {
		t.Errorf("err = %v", err)
	}
}

func TestTemplate(t *testing.T) {
	tpl := Template(time.Date(2024, 3, 1, 23, 30, 0, 0, time.UTC))
	if tpl.Date != "2024-03-01" {
		t.Errorf("date = %q", tpl.Date)
	}
	if tpl.ShiftLabel != "" || tpl.RecordType != "" {
		t.Errorf("template not blank: %+v", tpl)
	}
	want := []models.RecordType{models.RecordStartOfShift, models.RecordEndOfShift}
	if !reflect.DeepEqual(tpl.OdometerRequired, want) {
		t.Errorf("odometer required = %v", tpl.OdometerRequired)
	}
	if len(tpl.Equipment) != 16 || len(tpl.VehicleChecks) != 12 {
		t.Fatalf("item counts = %d/%d", len(tpl.Equipment), len(tpl.VehicleChecks))
	}
	for item, on := range tpl.Equipment {
		if on {
			t.Errorf("%s checked in blank template", item)
		}
	}
}

func ptr[T any](v T) *T { return &v }
