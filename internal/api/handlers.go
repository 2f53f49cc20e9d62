package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/export"
	"github.com/levcheck/verifier/internal/gridsource"
	"github.com/levcheck/verifier/internal/repository"
	"github.com/levcheck/verifier/internal/runs"
	"github.com/levcheck/verifier/internal/verification"
)

// Handlers groups all HTTP handler methods and their dependencies.
type Handlers struct {
	runRepo        *repository.RunRepo
	discRepo       *repository.DiscrepancyRepo
	runsSvc        *runs.Service
	maxUploadBytes int64
}

// --- helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, err = time.Parse("2006-01-02", s)
		if err != nil {
			return nil
		}
	}
	return &t
}

func parseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 {
		return def
	}
	return v
}

func readUpload(r *http.Request, field string) (string, []byte, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return "", nil, fmt.Errorf("%s file field is required: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", nil, fmt.Errorf("read %s file: %w", field, err)
	}
	return header.Filename, data, nil
}

// selectionFromForm builds the column selection from the "columns" form
// value: a comma-separated list, or empty for all-numeric discovery.
func selectionFromForm(columns string) domain.ColumnSelection {
	columns = strings.TrimSpace(columns)
	if columns == "" {
		return domain.AllNumericColumns()
	}
	var names []string
	for _, c := range strings.Split(columns, ",") {
		if c = strings.TrimSpace(c); c != "" {
			names = append(names, c)
		}
	}
	if len(names) == 0 {
		return domain.AllNumericColumns()
	}
	return domain.ExplicitColumns(names...)
}

// --- CreateVerification ---

func (h *Handlers) CreateVerification(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	sourceName, sourceData, err := readUpload(r, "source")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	targetName, targetData, err := readUpload(r, "target")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.runsSvc.Execute(runs.Request{
		SourceFile: sourceName,
		SourceData: sourceData,
		TargetFile: targetName,
		TargetData: targetData,
		Sheet:      r.FormValue("sheet"),
		Selection:  selectionFromForm(r.FormValue("columns")),
	})
	if err != nil {
		var unknownCol *verification.UnknownColumnError
		switch {
		case errors.As(err, &unknownCol):
			writeError(w, http.StatusUnprocessableEntity, unknownCol.Error())
		case errors.Is(err, gridsource.ErrUnsupportedFormat):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// --- ListVerifications ---

func (h *Handlers) ListVerifications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := repository.RunFilter{
		From:  parseTime(q.Get("from")),
		To:    parseTime(q.Get("to")),
		Page:  parseIntDefault(q.Get("page"), 1),
		Limit: parseIntDefault(q.Get("limit"), 50),
	}
	if p := q.Get("pass"); p != "" {
		pass := p == "true"
		filter.Pass = &pass
	}

	list, total, err := h.runRepo.List(filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"runs":  list,
		"total": total,
		"page":  filter.Page,
		"limit": filter.Limit,
	})
}

// --- GetVerification ---

func (h *Handlers) GetVerification(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.runRepo.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found: "+id)
		return
	}

	discs, err := h.discRepo.ListByRun(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"run":           run,
		"discrepancies": discs,
	})
}

// --- GetVerificationReportCSV ---

func (h *Handlers) GetVerificationReportCSV(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.runRepo.GetByID(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		writeError(w, http.StatusNotFound, "run not found: "+id)
		return
	}

	discs, err := h.discRepo.ListByRun(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="mismatch_report.csv"`)
	w.WriteHeader(http.StatusOK)
	if err := export.WriteCSV(w, discs); err != nil {
		log.Printf("[api] write csv report: %v", err)
	}
}

// --- GetDashboard ---

func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	total, passed, err := h.runRepo.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	byReason, err := h.discRepo.CountByReason()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"total_runs":              total,
		"passed_runs":             passed,
		"failed_runs":             total - passed,
		"discrepancies_by_reason": byReason,
		"fixed_rate_bgn_per_eur":  "1.95583",
	})
}
