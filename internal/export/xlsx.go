// Package export renders the shift record history as a spreadsheet.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"vehicle_logbook/internal/models"
)

const SheetName = "Historial"

// Header is the first row of the exported sheet.
var Header = []any{"ID", "Fecha", "Turno", "Tipo", "Trabajador", "Patente", "Modelo", "Kilometraje", "Observaciones", "Registrado"}

// WriteShiftRecords writes one row per summary, in the given order, after a bold header row.
func WriteShiftRecords(w io.Writer, rows []models.ShiftRecordSummary) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			r.ID,
			r.Date.Format("2006-01-02"),
			r.ShiftLabel,
			string(r.RecordType),
			r.WorkerName,
			r.VehiclePlate,
			deref(r.VehicleModel),
			floatOrBlank(r.OdometerKm),
			deref(r.GeneralNotes),
			r.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", r.ID, err)
		}
	}

	if err := f.SetColWidth(SheetName, "E", "E", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "I", "I", 40); err != nil {
		return err
	}
	return f.Write(w)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatOrBlank(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
