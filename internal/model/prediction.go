package model

// ConfirmationStatus tracks where a prediction is in the confirmation flow.
type ConfirmationStatus string

// Confirmation status constants.
const (
	ConfirmationPending   ConfirmationStatus = "pending"
	ConfirmationConfirmed ConfirmationStatus = "confirmed"
	ConfirmationSkipped   ConfirmationStatus = "skipped"
)

// CategoryScore pairs a category with a confidence value, used for
// alternative suggestions.
type CategoryScore struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Prediction is the engine's answer for one receipt: the suggested account
// category, how sure the engine is, and why. A Prediction is always valid:
// every pipeline path, including total failure, produces one.
type Prediction struct {
	Category          string             `json:"category"`
	Confidence        float64            `json:"confidence"`
	Reasoning         string             `json:"reasoning"`
	TaxNotes          string             `json:"tax_notes,omitempty"`
	PendingCategory   string             `json:"pending_category,omitempty"`
	Alternatives      []CategoryScore    `json:"alternatives,omitempty"`
	Sources           []string           `json:"sources,omitempty"`
	Questions         []Question         `json:"confirmation_questions,omitempty"`
	Reasons           []string           `json:"confirmation_reasons,omitempty"`
	Status            ConfirmationStatus `json:"confirmation_status,omitempty"`
	NeedsConfirmation bool               `json:"needs_confirmation"`
}

// DisplayCategory returns the pending placeholder while confirmation is
// outstanding, and the predicted category otherwise.
func (p *Prediction) DisplayCategory() string {
	if p.NeedsConfirmation && p.Status == ConfirmationPending && p.PendingCategory != "" {
		return p.PendingCategory
	}
	return p.Category
}
