package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kanjoflow/kanjo/internal/advisor"
	"github.com/kanjoflow/kanjo/internal/classify"
	"github.com/kanjoflow/kanjo/internal/common"
	"github.com/kanjoflow/kanjo/internal/confirm"
	"github.com/kanjoflow/kanjo/internal/extract"
	"github.com/kanjoflow/kanjo/internal/learning"
	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/spf13/viper"
)

// buildEngine assembles the prediction engine from viper config. The
// learning store and advisor are optional; the engine degrades without
// them. The returned cleanup closes the store.
func buildEngine() (*classify.Engine, *learning.Store, func(), error) {
	var tables *extract.Tables
	if path := viper.GetString("keyword_tables"); path != "" {
		loaded, err := extract.LoadTables(path)
		if err != nil {
			return nil, nil, nil, common.NewUserError("could not load keyword tables", err)
		}
		tables = loaded
	}

	store, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg := classify.Config{
		Tables: tables,
		Logger: slog.Default(),
		Confirm: confirm.Options{
			HighAmountThreshold:    viper.GetInt64("confirm.high_amount_threshold"),
			LowConfidenceThreshold: viper.GetFloat64("confirm.low_confidence_threshold"),
		},
	}
	if store != nil {
		cfg.History = store
	}

	if apiKey := viper.GetString("advisor.api_key"); apiKey != "" {
		client, err := advisor.NewClient(advisor.Config{
			APIKey: apiKey,
			Model:  viper.GetString("advisor.model"),
		}, slog.Default())
		if err != nil {
			return nil, nil, nil, common.NewUserError("could not create advisor client", err)
		}
		cfg.Advisor = client
	}

	cleanup := func() {
		if store != nil {
			if err := store.Close(); err != nil {
				slog.Warn("Failed to close learning store", "error", err)
			}
		}
	}

	return classify.NewEngine(cfg), store, cleanup, nil
}

// openStore opens the learning database, defaulting to the XDG data dir.
func openStore() (*learning.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "kanjo", "kanjo.db")
	}

	store, err := learning.NewStore(dbPath)
	if err != nil {
		return nil, common.NewUserError("could not open learning store", err)
	}
	return store, nil
}

// loadOCRResult reads one OCR result from a JSON file.
func loadOCRResult(path string) (*model.OCRResult, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input path
	if err != nil {
		return nil, common.NewUserError("could not read OCR file", err)
	}

	var ocr model.OCRResult
	if err := json.Unmarshal(data, &ocr); err != nil {
		return nil, common.NewUserError(fmt.Sprintf("invalid OCR JSON in %s", path), err)
	}
	return &ocr, nil
}

// collectOCRFiles lists the JSON files of a directory in name order.
func collectOCRFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	return files, nil
}

func formatConfidence(confidence float64) string {
	return fmt.Sprintf("%.0f%%", confidence*100)
}
