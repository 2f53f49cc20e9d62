package runs

import (
	"testing"

	"github.com/levcheck/verifier/internal/currency"
	"github.com/levcheck/verifier/internal/domain"
	"github.com/levcheck/verifier/internal/repository"
	"github.com/levcheck/verifier/internal/verification"
)

func newTestService(t *testing.T) (*Service, *repository.RunRepo, *repository.DiscrepancyRepo) {
	t.Helper()
	db, err := repository.InitDB(":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	runRepo := repository.NewRunRepo(db)
	discRepo := repository.NewDiscrepancyRepo(db)
	svc := NewService(runRepo, discRepo, verification.NewService(currency.Default()))
	return svc, runRepo, discRepo
}

func TestExecutePersistsRun(t *testing.T) {
	svc, runRepo, discRepo := newTestService(t)

	result, err := svc.Execute(Request{
		SourceFile: "bgn.csv",
		SourceData: []byte("Item,Amount\nPOS-001,100.00\nPOS-002,195583\n"),
		TargetFile: "eur.csv",
		TargetData: []byte("Item,Amount\nPOS-001,51.12\nPOS-002,100000.00\n"),
		Selection:  domain.ExplicitColumns("Amount"),
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Run.Pass {
		t.Error("run passed, want fail (51.12 is off by a cent)")
	}
	if result.Run.DiscrepancyCount != 1 {
		t.Errorf("DiscrepancyCount = %d, want 1", result.Run.DiscrepancyCount)
	}
	if result.Report.CellsChecked != 2 {
		t.Errorf("CellsChecked = %d, want 2", result.Report.CellsChecked)
	}

	stored, err := runRepo.GetByID(result.Run.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored == nil {
		t.Fatal("run was not persisted")
	}

	discs, err := discRepo.ListByRun(result.Run.ID)
	if err != nil {
		t.Fatalf("ListByRun: %v", err)
	}
	if len(discs) != 1 || discs[0].Reason != domain.ReasonValueMismatch {
		t.Errorf("stored discrepancies = %+v, want one VALUE_MISMATCH", discs)
	}
}

func TestExecuteRejectsUnknownColumn(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Execute(Request{
		SourceFile: "bgn.csv",
		SourceData: []byte("Amount\n1.00\n"),
		TargetFile: "eur.csv",
		TargetData: []byte("Amount\n0.51\n"),
		Selection:  domain.ExplicitColumns("Missing"),
	})
	if err == nil {
		t.Fatal("expected unknown column error")
	}
}

func TestExecuteRejectsUnsupportedFormat(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Execute(Request{
		SourceFile: "bgn.pdf",
		SourceData: []byte("junk"),
		TargetFile: "eur.csv",
		TargetData: []byte("Amount\n0.51\n"),
		Selection:  domain.AllNumericColumns(),
	})
	if err == nil {
		t.Fatal("expected unsupported format error")
	}
}
