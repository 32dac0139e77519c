package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct {
	analyzeResult *model.Prediction
	analyzeErr    error
	searchResult  string
	searchErr     error
	searchCalls   int
}

func (s *stubAdvisor) SearchAccountingInfo(_ context.Context, _ string) (string, error) {
	s.searchCalls++
	return s.searchResult, s.searchErr
}

func (s *stubAdvisor) Analyze(_ context.Context, _ *model.OCRResult, _ *model.ExtractedInfo) (*model.Prediction, error) {
	return s.analyzeResult, s.analyzeErr
}

type stubHistory struct {
	record *model.CategoryScore
	err    error
}

func (s *stubHistory) Lookup(_ context.Context, _, _ string) (*model.CategoryScore, error) {
	return s.record, s.err
}

func TestPredictAlwaysResolves(t *testing.T) {
	engine := NewEngine(Config{})
	ctx := context.Background()

	inputs := []*model.OCRResult{
		nil,
		{},
		{Text: "意味不明な文字列 ^^^ 12345"},
		{Vendor: "タイムズ", EntryTime: "09:00", ExitTime: "10:00"},
		{Vendor: "スターバックス", Text: "2名", Amount: 1000},
		{Amount: -500},
	}

	for _, ocr := range inputs {
		pred := engine.Predict(ctx, "company-1", ocr)
		require.NotNil(t, pred)
		assert.True(t, model.InVocabulary(pred.Category), "category %q not in vocabulary", pred.Category)
		assert.GreaterOrEqual(t, pred.Confidence, 0.0)
		assert.LessOrEqual(t, pred.Confidence, 1.0)
	}
}

func TestPredictComplexAnalysisPath(t *testing.T) {
	advisor := &stubAdvisor{
		analyzeResult: &model.Prediction{
			Category:   model.CategoryTaxesAndDues,
			Confidence: 0.72,
			Reasoning:  "収入印紙の購入",
		},
	}
	engine := NewEngine(Config{Advisor: advisor})

	// No business type matches, so the engine delegates to the advisor.
	pred := engine.Predict(context.Background(), "", &model.OCRResult{
		Vendor: "郵便局",
		Text:   "収入印紙 200円 10枚",
		Amount: 2000,
	})

	assert.Equal(t, model.CategoryTaxesAndDues, pred.Category)
	assert.Contains(t, pred.Sources, "complex-analysis")
}

func TestPredictComplexAnalysisFailureFallsBack(t *testing.T) {
	engine := NewEngine(Config{Advisor: &stubAdvisor{analyzeErr: errors.New("boom")}})

	pred := engine.Predict(context.Background(), "", &model.OCRResult{
		Vendor: "謎の店",
		Text:   "なにか",
	})

	require.NotNil(t, pred)
	assert.True(t, model.InVocabulary(pred.Category))
}

func TestPredictComplexAnalysisUnusableResultFallsBack(t *testing.T) {
	engine := NewEngine(Config{Advisor: &stubAdvisor{
		analyzeResult: &model.Prediction{Category: "ありえない科目", Confidence: 0.9},
	}})

	pred := engine.Predict(context.Background(), "", &model.OCRResult{Vendor: "謎の店"})

	assert.True(t, model.InVocabulary(pred.Category))
}

func TestPredictSearchEnrichesReasoning(t *testing.T) {
	advisor := &stubAdvisor{searchResult: "駐車場代は旅費交通費として処理します"}
	engine := NewEngine(Config{Advisor: advisor})

	pred := engine.Predict(context.Background(), "", &model.OCRResult{
		Vendor:    "タイムズ",
		EntryTime: "09:00",
		ExitTime:  "10:00",
	})

	assert.Equal(t, 1, advisor.searchCalls)
	assert.Contains(t, pred.Reasoning, "参考情報")
	assert.Contains(t, pred.Sources, "accounting-info-search")
}

func TestPredictSearchFailureIsSwallowed(t *testing.T) {
	engine := NewEngine(Config{Advisor: &stubAdvisor{searchErr: errors.New("offline")}})

	pred := engine.Predict(context.Background(), "", &model.OCRResult{
		Vendor:    "タイムズ",
		EntryTime: "09:00",
		ExitTime:  "10:00",
	})

	assert.Equal(t, model.CategoryTravel, pred.Category)
	assert.InDelta(t, 0.95, pred.Confidence, 0.001)
	assert.NotContains(t, pred.Reasoning, "参考情報")
}

func TestPredictReasoningNamesMatchedKeywords(t *testing.T) {
	engine := NewEngine(Config{})

	pred := engine.Predict(context.Background(), "", &model.OCRResult{
		Vendor: "日本交通",
		Text:   "タクシー 乗車",
		Amount: 3200,
	})

	assert.Contains(t, pred.Reasoning, "一致キーワード")
	assert.Contains(t, pred.Reasoning, "タクシー")
}

func TestPredictWithConfirmationPending(t *testing.T) {
	engine := NewEngine(Config{})

	pred := engine.PredictWithConfirmation(context.Background(), "", &model.OCRResult{
		Vendor: "品川税務署",
		Amount: 30000,
	}, "")

	assert.True(t, pred.NeedsConfirmation)
	assert.Equal(t, model.ConfirmationPending, pred.Status)
	assert.NotEmpty(t, pred.Questions)
	assert.Equal(t, model.PendingTaxRelated, pred.PendingCategory)
	assert.Equal(t, model.PendingTaxRelated, pred.DisplayCategory())
}

func TestPredictWithConfirmationClean(t *testing.T) {
	engine := NewEngine(Config{})

	pred := engine.PredictWithConfirmation(context.Background(), "", &model.OCRResult{
		Vendor:    "日本交通",
		Text:      "タクシー 乗車",
		Amount:    3200,
		EntryTime: "",
	}, "")

	assert.False(t, pred.NeedsConfirmation)
	assert.Equal(t, model.ConfirmationConfirmed, pred.Status)
	assert.Empty(t, pred.Questions)
}
