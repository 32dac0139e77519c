package confirm

import (
	"fmt"
	"strings"

	"github.com/kanjoflow/kanjo/internal/model"
)

// Result is the outcome of the confirmation-need checks for one prediction.
type Result struct {
	PendingCategory string
	Reasons         []string
	Questions       []model.Question
}

// NeedsConfirmation reports whether any check fired.
func (r *Result) NeedsConfirmation() bool {
	return len(r.Reasons) > 0
}

// Detector runs the ordered confirmation-need checks.
type Detector struct {
	opts Options
}

// NewDetector creates a detector with the given options. Zero thresholds
// fall back to the defaults.
func NewDetector(opts Options) *Detector {
	defaults := DefaultOptions()
	if len(opts.TaxKeywords) == 0 {
		opts.TaxKeywords = defaults.TaxKeywords
	}
	if len(opts.PublicOfficeKeywords) == 0 {
		opts.PublicOfficeKeywords = defaults.PublicOfficeKeywords
	}
	if len(opts.VagueKeywords) == 0 {
		opts.VagueKeywords = defaults.VagueKeywords
	}
	if len(opts.AmbiguousVendorKeywords) == 0 {
		opts.AmbiguousVendorKeywords = defaults.AmbiguousVendorKeywords
	}
	if opts.HighAmountThreshold <= 0 {
		opts.HighAmountThreshold = defaults.HighAmountThreshold
	}
	if opts.LowConfidenceThreshold <= 0 {
		opts.LowConfidenceThreshold = defaults.LowConfidenceThreshold
	}
	return &Detector{opts: opts}
}

// Check evaluates the ordered sequence of confirmation-need checks. Each
// check may append a reason; the first check to generate questions owns the
// question set, with one exception: the public-office inconsistency check
// replaces any questions generated before it, so a vague payment to a public
// office gets the inconsistency questions instead of the generic tax ones.
func (d *Detector) Check(vendor string, amount int64, predictedCategory string, confidence float64, notes string, itemDescriptions []string) Result {
	var result Result

	descriptions := notes
	for _, item := range itemDescriptions {
		descriptions += " " + item
	}

	// 1. Tax authority in the vendor name.
	if matchAny(vendor, d.opts.TaxKeywords) {
		result.Reasons = append(result.Reasons, "支払先が税務署・税事務所のため、税金の種類を確認する必要があります")
		result.Questions = taxQuestions(vendor)
		result.PendingCategory = model.PendingTaxRelated
	}

	// 2. Public office with vague or inconsistent wording. Overrides.
	if matchAny(vendor, d.opts.PublicOfficeKeywords) && matchAny(descriptions, d.opts.VagueKeywords) {
		result.Reasons = append(result.Reasons, "公的機関への支払いですが、摘要が曖昧なため内容の確認が必要です")
		result.Questions = inconsistencyQuestions(vendor, notes)
		result.PendingCategory = model.PendingUnclear
	}

	// 3. Vague wording on its own.
	if matchAny(descriptions, d.opts.VagueKeywords) {
		result.Reasons = append(result.Reasons, "摘要が曖昧なため、実際の内容を確認する必要があります")
		if len(result.Questions) == 0 {
			result.Questions = vagueQuestions(notes)
		}
	}

	// 4. High amount.
	if amount >= d.opts.HighAmountThreshold {
		result.Reasons = append(result.Reasons, fmt.Sprintf("金額が%s以上のため、事業用かどうかの確認が必要です", model.FormatYen(d.opts.HighAmountThreshold)))
		if len(result.Questions) == 0 {
			result.Questions = businessUseQuestions(vendor, amount, predictedCategory)
		}
	}

	// 5. Low confidence.
	if confidence < d.opts.LowConfidenceThreshold {
		result.Reasons = append(result.Reasons, fmt.Sprintf("予測の確信度が低いため（%.0f%%）、確認が必要です", confidence*100))
		if len(result.Questions) == 0 {
			result.Questions = businessUseQuestions(vendor, amount, predictedCategory)
		}
	}

	// 6. Vendor where business and personal use are both plausible.
	if matchAny(vendor, d.opts.AmbiguousVendorKeywords) {
		result.Reasons = append(result.Reasons, "事業用・私用どちらの可能性もある支払先のため、確認が必要です")
		if len(result.Questions) == 0 {
			result.Questions = businessUseQuestions(vendor, amount, predictedCategory)
		}
	}

	return result
}

func matchAny(text string, keywords []string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, keyword := range keywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
