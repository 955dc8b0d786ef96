package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"vehicle_logbook/internal/export"
	"vehicle_logbook/internal/form"
	"vehicle_logbook/internal/models"
	"vehicle_logbook/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type shiftRecordSummary struct {
	ID           uint              `json:"id"`
	Date         string            `json:"date"`
	ShiftLabel   string            `json:"shift_label"`
	RecordType   models.RecordType `json:"record_type"`
	OdometerKm   *float64          `json:"odometer_km"`
	GeneralNotes *string           `json:"general_notes"`
	CreatedAt    time.Time         `json:"created_at"`
	WorkerName   string            `json:"worker_name"`
	VehiclePlate string            `json:"vehicle_plate"`
	VehicleModel *string           `json:"vehicle_model"`
}

type fuelDetail struct {
	FuelLiters *float64 `json:"fuel_liters"`
	FuelNotes  *string  `json:"fuel_notes"`
}

type shiftRecordDetail struct {
	ID            uint              `json:"id"`
	Date          string            `json:"date"`
	ShiftLabel    string            `json:"shift_label"`
	RecordType    models.RecordType `json:"record_type"`
	OdometerKm    *float64          `json:"odometer_km"`
	GeneralNotes  *string           `json:"general_notes"`
	CreatedAt     time.Time         `json:"created_at"`
	WorkerID      uint              `json:"worker_id"`
	WorkerName    string            `json:"worker_name"`
	VehicleID     uint              `json:"vehicle_id"`
	VehiclePlate  string            `json:"vehicle_plate"`
	VehicleModel  *string           `json:"vehicle_model"`
	Equipment     map[string]bool   `json:"equipment"`
	VehicleChecks map[string]bool   `json:"vehicle_checks"`
	Fuel          *fuelDetail       `json:"fuel"`
}

func toSummary(s models.ShiftRecordSummary) shiftRecordSummary {
	return shiftRecordSummary{
		ID:           s.ID,
		Date:         s.Date.Format(service.DateLayout),
		ShiftLabel:   s.ShiftLabel,
		RecordType:   s.RecordType,
		OdometerKm:   s.OdometerKm,
		GeneralNotes: s.GeneralNotes,
		CreatedAt:    s.CreatedAt,
		WorkerName:   s.WorkerName,
		VehiclePlate: s.VehiclePlate,
		VehicleModel: s.VehicleModel,
	}
}

func toDetail(rec *models.ShiftRecord) shiftRecordDetail {
	d := shiftRecordDetail{
		ID:           rec.ID,
		Date:         time.Time(rec.Date).Format(service.DateLayout),
		ShiftLabel:   rec.ShiftLabel,
		RecordType:   rec.RecordType,
		OdometerKm:   rec.OdometerKm,
		GeneralNotes: rec.GeneralNotes,
		CreatedAt:    rec.CreatedAt,
		WorkerID:     rec.WorkerID,
		VehicleID:    rec.VehicleID,
	}
	if rec.Worker != nil {
		d.WorkerName = rec.Worker.Name
	}
	if rec.Vehicle != nil {
		d.VehiclePlate = rec.Vehicle.Plate
		d.VehicleModel = rec.Vehicle.Model
	}

	// A record always has both checklists; a missing row reads as all unchecked.
	equipment := models.EquipmentChecklist{}
	if rec.Equipment != nil {
		equipment = *rec.Equipment
	}
	checks := models.VehicleChecklist{}
	if rec.VehicleChecklist != nil {
		checks = *rec.VehicleChecklist
	}
	d.Equipment = equipment.Items()
	d.VehicleChecks = checks.Items()

	if rec.Fuel != nil {
		d.Fuel = &fuelDetail{FuelLiters: rec.Fuel.FuelLiters, FuelNotes: rec.Fuel.FuelNotes}
	}
	return d
}

// CreateShiftRecord accepts the submission as JSON or as a posted HTML form.
func CreateShiftRecord(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input service.ShiftRecordInput

		switch c.ContentType() {
		case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
			values, err := postedValues(c)
			if err != nil {
				respondBindError(c, err)
				return
			}
			if input, err = form.Collect(values); err != nil {
				respondError(c, err)
				return
			}
		default:
			if err := c.ShouldBindJSON(&input); err != nil {
				respondBindError(c, err)
				return
			}
		}

		id, err := svc.CreateShiftRecord(c.Request.Context(), input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "message": "shift record saved"})
	}
}

func postedValues(c *gin.Context) (url.Values, error) {
	if c.ContentType() == binding.MIMEMultipartPOSTForm {
		mf, err := c.MultipartForm()
		if err != nil {
			return nil, err
		}
		return url.Values(mf.Value), nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return c.Request.PostForm, nil
}

// ListShiftRecords returns the filtered history, newest first.
func ListShiftRecords(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q service.ShiftRecordQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondBindError(c, err)
			return
		}

		rows, err := svc.ListShiftRecords(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}
		out := make([]shiftRecordSummary, 0, len(rows))
		for _, r := range rows {
			out = append(out, toSummary(r))
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetShiftRecord(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		rec, err := svc.GetShiftRecord(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, toDetail(rec))
	}
}

// ExportShiftRecords sends the filtered history as an xlsx workbook.
func ExportShiftRecords(svc *service.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q service.ShiftRecordQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			respondBindError(c, err)
			return
		}

		rows, err := svc.ListShiftRecords(c.Request.Context(), q)
		if err != nil {
			respondError(c, err)
			return
		}

		var buf bytes.Buffer
		if err := export.WriteShiftRecords(&buf, rows); err != nil {
			respondError(c, err)
			return
		}
		filename := fmt.Sprintf("shift-records-%s.xlsx", time.Now().Format("20060102-150405"))
		c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
		c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	}
}

// ShiftRecordForm returns the blank form with today's date.
func ShiftRecordForm(now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, form.Template(now()))
	}
}
