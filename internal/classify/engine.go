// Package classify predicts a Japanese account category for an OCR'd
// receipt. The pipeline degrades instead of failing: every path, including
// panic recovery, ends in a valid prediction.
package classify

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kanjoflow/kanjo/internal/confirm"
	"github.com/kanjoflow/kanjo/internal/extract"
	"github.com/kanjoflow/kanjo/internal/model"
)

// History supplies per-company historical classifications for blending.
// Implementations may hit a database or network; failures are tolerated.
type History interface {
	Lookup(ctx context.Context, companyID, vendor string) (*model.CategoryScore, error)
}

// Advisor supplies optional external context: an accounting-info search for
// reasoning enrichment and a complex-analysis path for receipts no rule
// covers. Both calls are best-effort.
type Advisor interface {
	SearchAccountingInfo(ctx context.Context, query string) (string, error)
	Analyze(ctx context.Context, ocr *model.OCRResult, info *model.ExtractedInfo) (*model.Prediction, error)
}

// Config wires the engine's collaborators. All fields are optional.
type Config struct {
	Tables  *extract.Tables
	History History
	Advisor Advisor
	Logger  *slog.Logger
	Confirm confirm.Options
}

// Engine runs the prediction pipeline.
type Engine struct {
	extractor *extract.Extractor
	detector  *confirm.Detector
	history   History
	advisor   Advisor
	logger    *slog.Logger
}

// NewEngine creates a prediction engine.
func NewEngine(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		extractor: extract.NewExtractor(cfg.Tables),
		detector:  confirm.NewDetector(cfg.Confirm),
		history:   cfg.History,
		advisor:   cfg.Advisor,
		logger:    logger,
	}
}

// Predict classifies one receipt. It always returns a valid prediction and
// never an error: external collaborators are best-effort and any internal
// failure resolves to the fallback scorer.
func (e *Engine) Predict(ctx context.Context, companyID string, ocr *model.OCRResult) (pred *model.Prediction) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("prediction pipeline panicked, using fallback",
				"panic", fmt.Sprint(r))
			pred = fallbackPredict(ocr)
		}
	}()

	info := e.extractor.Extract(ocr)

	advisorNote := e.searchAccountingInfo(ctx, ocr, info)

	pred = e.classify(ctx, ocr, info)
	pred = e.blendWithHistory(ctx, companyID, vendorOf(ocr), pred)

	if advisorNote != "" {
		pred.Reasoning += " / 参考情報: " + advisorNote
		pred.Sources = append(pred.Sources, "accounting-info-search")
	}

	return pred
}

// PredictWithConfirmation runs Predict and then the confirmation-need
// checks, filling the prediction's confirmation fields. notes is the
// journal-entry description the user attached, if any.
func (e *Engine) PredictWithConfirmation(ctx context.Context, companyID string, ocr *model.OCRResult, notes string) *model.Prediction {
	pred := e.Predict(ctx, companyID, ocr)

	var items []string
	if ocr != nil {
		items = ocr.ItemNames()
	}
	result := e.detector.Check(vendorOf(ocr), amountOf(ocr), pred.Category, pred.Confidence, notes, items)

	if result.NeedsConfirmation() {
		pred.NeedsConfirmation = true
		pred.Status = model.ConfirmationPending
		pred.Reasons = result.Reasons
		pred.Questions = result.Questions
		pred.PendingCategory = result.PendingCategory
	} else {
		pred.Status = model.ConfirmationConfirmed
	}

	return pred
}

// classify picks the classification path: parking first, then the business
// domain, then the advisor's complex analysis, then the fallback.
func (e *Engine) classify(ctx context.Context, ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	if pred := analyzeParking(ocr, info); pred != nil {
		return pred
	}

	var pred *model.Prediction
	switch info.BusinessType.Domain() {
	case model.DomainFoodService:
		pred = classifyFoodService(ocr, info)
	case model.DomainRetail:
		pred = classifyRetail(ocr, info)
	case model.DomainService:
		pred = classifyService(ocr, info)
	case model.DomainTransport:
		pred = classifyTransport(ocr, info)
	default:
		return e.analyzeComplex(ctx, ocr, info)
	}

	// Domain-classified predictions name the keywords that drove the
	// business-type detection.
	if len(info.MatchedKeywords) > 0 {
		pred.Reasoning += fmt.Sprintf("（一致キーワード: %s）", strings.Join(info.MatchedKeywords, "、"))
	}
	return pred
}

// analyzeComplex delegates to the advisor when no business type matched.
// Any failure or unusable result falls through to the fallback scorer.
func (e *Engine) analyzeComplex(ctx context.Context, ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	if e.advisor == nil {
		return fallbackPredict(ocr)
	}

	pred, err := e.advisor.Analyze(ctx, ocr, info)
	if err != nil {
		e.logger.Debug("complex analysis failed, using fallback", "error", err)
		return fallbackPredict(ocr)
	}
	if pred == nil || !model.InVocabulary(pred.Category) || pred.Confidence <= 0 || pred.Confidence > 1 {
		e.logger.Debug("complex analysis returned unusable prediction, using fallback")
		return fallbackPredict(ocr)
	}
	pred.Sources = append(pred.Sources, "complex-analysis")
	return pred
}

// searchAccountingInfo fetches optional reasoning context. Failures are
// swallowed; prediction quality degrades silently instead.
func (e *Engine) searchAccountingInfo(ctx context.Context, ocr *model.OCRResult, info *model.ExtractedInfo) string {
	if e.advisor == nil || ocr == nil || ocr.Vendor == "" {
		return ""
	}

	query := fmt.Sprintf("%s の支出の勘定科目", ocr.Vendor)
	if info.BusinessType != "" {
		query = fmt.Sprintf("%s（%s）の支出の勘定科目", ocr.Vendor, info.BusinessType)
	}

	note, err := e.advisor.SearchAccountingInfo(ctx, query)
	if err != nil {
		e.logger.Debug("accounting info search failed", "error", err)
		return ""
	}
	return note
}

func vendorOf(ocr *model.OCRResult) string {
	if ocr == nil {
		return ""
	}
	return ocr.Vendor
}

func amountOf(ocr *model.OCRResult) int64 {
	if ocr == nil {
		return 0
	}
	return ocr.Amount
}
