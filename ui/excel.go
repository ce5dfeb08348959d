package ui

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xuri/excelize/v2"
)

// handlePMFExport serves a die's exact distribution as an xlsx workbook with
// one Value/Probability row per distinct value.
func (a *App) handlePMFExport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	v, ok := a.lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown die: " + name})
		return
	}
	entries, err := a.pmfEntries(v)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "PMF"
	index, err := f.NewSheet(sheet)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	_ = f.SetCellValue(sheet, "A1", "Value")
	_ = f.SetCellValue(sheet, "B1", "Probability")
	for i, entry := range entries {
		row := i + 2
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.Value)
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.Probability)
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+"-pmf.xlsx"))
	if err := f.Write(w); err != nil {
		a.log.Error("xlsx export of %s failed: %v", name, err)
	}
}
