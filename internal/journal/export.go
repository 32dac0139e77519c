// Package journal renders confirmed predictions as journal-entry CSV rows
// for import into bookkeeping software.
package journal

import (
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/kanjoflow/kanjo/internal/model"
)

// Entry is one journal-entry CSV row.
type Entry struct {
	Date         string `csv:"日付"`
	DebitAccount string `csv:"借方勘定科目"`
	Amount       int64  `csv:"金額"`
	TaxAmount    int64  `csv:"消費税額"`
	Vendor       string `csv:"支払先"`
	Description  string `csv:"摘要"`
	TaxNotes     string `csv:"税務メモ"`
}

// NewEntry builds a journal entry from a receipt and its prediction. The
// prediction's display category is used, so unconfirmed predictions export
// their pending placeholder rather than an unverified guess.
func NewEntry(ocr *model.OCRResult, pred *model.Prediction) Entry {
	date := ""
	if ocr != nil && !ocr.Date.IsZero() {
		date = ocr.Date.Format("2006-01-02")
	}

	entry := Entry{
		Date:         date,
		DebitAccount: pred.DisplayCategory(),
		Description:  pred.Reasoning,
		TaxNotes:     pred.TaxNotes,
	}
	if ocr != nil {
		entry.Amount = ocr.Amount
		entry.TaxAmount = ocr.TaxAmount
		entry.Vendor = ocr.Vendor
	}
	return entry
}

// Write renders entries as CSV with a header row.
func Write(w io.Writer, entries []Entry) error {
	if err := gocsv.Marshal(entries, w); err != nil {
		return fmt.Errorf("failed to write journal CSV: %w", err)
	}
	return nil
}

// Filename suggests an export filename for the current time.
func Filename(now time.Time) string {
	return fmt.Sprintf("journal-%s.csv", now.Format("20060102-150405"))
}
