// Package runs orchestrates a full verification pass: load the two report
// files into grids, run the engine, and persist the outcome so past runs
// can be listed and re-examined.
package runs

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/gridsource"
	"github.com/levcheck/verifier/internal/repository"
	"github.com/levcheck/verifier/internal/verification"
)

// Service executes and records verification runs.
type Service struct {
	runRepo  *repository.RunRepo
	discRepo *repository.DiscrepancyRepo
	verifier *verification.Service
}

// NewService creates a new run service.
func NewService(
	runRepo *repository.RunRepo,
	discRepo *repository.DiscrepancyRepo,
	verifier *verification.Service,
) *Service {
	return &Service{
		runRepo:  runRepo,
		discRepo: discRepo,
		verifier: verifier,
	}
}

// Request describes one verification run over an uploaded file pair.
type Request struct {
	SourceFile string
	SourceData []byte
	TargetFile string
	TargetData []byte
	Sheet      string
	Selection  domain.ColumnSelection
}

// Result pairs the persisted run record with the full report.
type Result struct {
	Run    domain.VerificationRun `json:"run"`
	Report *domain.Report         `json:"report"`
}

// Execute loads both grids, verifies them, and stores the run. Errors are
// configuration or input-format problems; data-quality findings come back
// inside the report.
func (s *Service) Execute(req Request) (*Result, error) {
	source, err := gridsource.FromFile(req.SourceFile, req.SourceData, req.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load source %q: %w", req.SourceFile, err)
	}
	target, err := gridsource.FromFile(req.TargetFile, req.TargetData, req.Sheet)
	if err != nil {
		return nil, fmt.Errorf("load target %q: %w", req.TargetFile, err)
	}

	report, err := s.verifier.Verify(source, target, req.Selection)
	if err != nil {
		return nil, err
	}

	run := domain.VerificationRun{
		ID:               uuid.NewString(),
		SourceFile:       req.SourceFile,
		TargetFile:       req.TargetFile,
		Sheet:            req.Sheet,
		SelectionMode:    req.Selection.Mode,
		Columns:          report.Columns,
		Pass:             report.Pass,
		CellsChecked:     report.CellsChecked,
		CellsSkipped:     report.CellsSkipped,
		RowsCompared:     report.RowsCompared,
		DiscrepancyCount: len(report.Discrepancies),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.runRepo.Insert(&run); err != nil {
		return nil, fmt.Errorf("store run: %w", err)
	}
	if _, err := s.discRepo.BulkInsert(run.ID, report.Discrepancies); err != nil {
		return nil, fmt.Errorf("store discrepancies: %w", err)
	}

	log.Printf("[runs] run %s: %s vs %s, pass=%v, discrepancies=%d",
		run.ID, req.SourceFile, req.TargetFile, run.Pass, run.DiscrepancyCount)

	return &Result{Run: run, Report: report}, nil
}
