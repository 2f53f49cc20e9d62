package main

import (
	"log"
	"net/http"
	"os"

	"github.com/levcheck/verifier/internal/api"
	"github.com/levcheck/verifier/internal/config"
	"github.com/levcheck/verifier/internal/currency"
	"github.com/levcheck/verifier/internal/repository"
	"github.com/levcheck/verifier/internal/runs"
	"github.com/levcheck/verifier/internal/verification"
)

func main() {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	log.Printf("Initializing database at %s", cfg.DBPath)
	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to init DB: %v", err)
	}
	defer db.Close()

	// Create repositories.
	runRepo := repository.NewRunRepo(db)
	discRepo := repository.NewDiscrepancyRepo(db)

	// Create services.
	verifier := verification.NewService(currency.Default())
	runsSvc := runs.NewService(runRepo, discRepo, verifier)

	// Create router.
	router := api.NewRouter(runRepo, discRepo, runsSvc, cfg.MaxUploadBytes())

	log.Printf("BGN/EUR Report Verifier")
	log.Printf("Fixed rate: 1 EUR = %s BGN", currency.BGNPerEUR)
	log.Printf("Listening on http://localhost:%s", cfg.Port)
	log.Printf("API base: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("")
	log.Printf("Endpoints:")
	log.Printf("  POST   /api/v1/verifications")
	log.Printf("  GET    /api/v1/verifications")
	log.Printf("  GET    /api/v1/verifications/{id}")
	log.Printf("  GET    /api/v1/verifications/{id}/report.csv")
	log.Printf("  GET    /api/v1/dashboard")

	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
