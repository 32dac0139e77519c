package classify

import (
	"context"
	"fmt"

	"github.com/kanjoflow/kanjo/internal/model"
)

// historyOverrideConfidence is the historical confidence at or above which
// a company's past classification overrides the rule-based prediction.
const historyOverrideConfidence = 0.8

// blendWithHistory folds a company's past classifications for the same
// vendor into the base prediction. A lookup failure leaves the base
// prediction untouched; it is logged at debug level only.
func (e *Engine) blendWithHistory(ctx context.Context, companyID, vendor string, base *model.Prediction) *model.Prediction {
	if e.history == nil || companyID == "" || vendor == "" {
		return base
	}

	record, err := e.history.Lookup(ctx, companyID, vendor)
	if err != nil {
		e.logger.Debug("history lookup failed, keeping base prediction",
			"company_id", companyID,
			"vendor", vendor,
			"error", err)
		return base
	}
	if record == nil || record.Category == "" {
		return base
	}

	if record.Confidence >= historyOverrideConfidence {
		demoted := model.CategoryScore{
			Category:   base.Category,
			Confidence: base.Confidence * 0.8,
		}
		blended := &model.Prediction{
			Category:   record.Category,
			Confidence: record.Confidence,
			Reasoning:  fmt.Sprintf("過去の仕訳実績により「%s」に分類（ルール判定: %s）", record.Category, base.Reasoning),
			TaxNotes:   base.TaxNotes,
			Sources:    append(base.Sources, "learning-history"),
		}
		if demoted.Category != record.Category {
			blended.Alternatives = append([]model.CategoryScore{demoted}, base.Alternatives...)
		} else {
			blended.Alternatives = base.Alternatives
		}
		return blended
	}

	if record.Category == base.Category {
		boosted := base.Confidence * 1.1
		if boosted > 0.98 {
			boosted = 0.98
		}
		base.Confidence = boosted
		base.Reasoning += "（過去の仕訳実績とも一致）"
		base.Sources = append(base.Sources, "learning-history")
	}

	return base
}
