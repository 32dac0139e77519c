package classify

import (
	"strings"

	"github.com/kanjoflow/kanjo/internal/model"
)

// fallbackCategory pairs a candidate category with its scoring keywords.
// Slice order is the tie-break order when two categories score equally.
type fallbackCategory struct {
	category string
	keywords []string
}

var fallbackCategories = []fallbackCategory{
	{model.CategoryTravel, []string{"交通", "電車", "タクシー", "バス", "駐車", "ガソリン", "出張", "高速", "乗車"}},
	{model.CategoryMeeting, []string{"会議", "打ち合わせ", "打合せ", "カフェ", "コーヒー", "喫茶", "茶"}},
	{model.CategoryEntertainment, []string{"接待", "宴会", "居酒屋", "飲み", "贈答", "土産", "会食"}},
	{model.CategoryConsumables, []string{"文具", "用品", "消耗", "電池", "用紙", "雑貨", "日用"}},
}

// fallbackPredict is the last-resort classifier and the error handler for
// every upstream failure. It never fails and its confidence is always in
// [0.5, 0.9].
func fallbackPredict(ocr *model.OCRResult) *model.Prediction {
	searchText := ""
	if ocr != nil {
		searchText = strings.ToLower(ocr.Vendor + " " + ocr.Text)
	}

	scores := make([]int, len(fallbackCategories))
	bestIdx, bestScore := 0, 0
	for i, fc := range fallbackCategories {
		for _, keyword := range fc.keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				scores[i]++
			}
		}
		if scores[i] > bestScore {
			bestScore = scores[i]
			bestIdx = i
		}
	}

	if bestScore == 0 {
		return &model.Prediction{
			Category:   model.CategoryConsumables,
			Confidence: 0.5,
			Reasoning:  "判別可能なキーワードが見つからなかったため、汎用的な科目を提案します",
		}
	}

	confidence := 0.6 + 0.1*float64(bestScore)
	if confidence > 0.9 {
		confidence = 0.9
	}

	var alternatives []model.CategoryScore
	for i, fc := range fallbackCategories {
		if i == bestIdx || scores[i] == 0 {
			continue
		}
		if len(alternatives) >= 2 {
			break
		}
		altConfidence := 0.3 + 0.1*float64(scores[i])
		if altConfidence > 0.6 {
			altConfidence = 0.6
		}
		alternatives = append(alternatives, model.CategoryScore{
			Category:   fc.category,
			Confidence: altConfidence,
		})
	}

	return &model.Prediction{
		Category:     fallbackCategories[bestIdx].category,
		Confidence:   confidence,
		Reasoning:    "キーワード一致による分類",
		Alternatives: alternatives,
	}
}
