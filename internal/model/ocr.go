// Package model defines the core domain models used throughout the application.
package model

import "time"

// ReceiptItem is a single line item parsed from a receipt.
type ReceiptItem struct {
	Name   string `json:"name"`
	Amount int64  `json:"amount"`
}

// OCRResult is the structured output of the upstream receipt OCR pipeline.
// It is consumed read-only; the classifier never mutates it. Any field may
// be missing or empty.
type OCRResult struct {
	Date            time.Time     `json:"date"`
	Text            string        `json:"text"`
	Vendor          string        `json:"vendor"`
	FacilityName    string        `json:"facility_name"`
	EntryTime       string        `json:"entry_time"`
	ExitTime        string        `json:"exit_time"`
	ParkingDuration string        `json:"parking_duration"`
	CompanyName     string        `json:"company_name"`
	Items           []ReceiptItem `json:"items"`
	Amount          int64         `json:"amount"`
	TaxAmount       int64         `json:"tax_amount"`
}

// ItemNames returns the names of all line items, for keyword checks.
func (r *OCRResult) ItemNames() []string {
	names := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		names = append(names, item.Name)
	}
	return names
}
