package classify

import (
	"strings"

	"github.com/kanjoflow/kanjo/internal/model"
)

// parkingKeywords indicate a parking receipt when found in the vendor,
// facility or company name.
var parkingKeywords = []string{
	"タイムズ", "times", "パーキング", "駐車場", "コインパーク", "リパーク", "ナビパーク", "パーク24",
}

// parkingScoreThreshold is the minimum weighted score at which a receipt is
// treated as a parking receipt.
const parkingScoreThreshold = 0.5

// analyzeParking is the dedicated high-confidence path for parking
// receipts, the most frequent disambiguation case in this domain. A nil
// return means the receipt did not look like parking.
func analyzeParking(ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	if ocr == nil {
		return nil
	}

	score := 0.0
	if containsParkingKeyword(ocr.Vendor) {
		score += 0.3
	}
	if containsParkingKeyword(ocr.FacilityName) {
		score += 0.2
	}
	if containsParkingKeyword(ocr.CompanyName) {
		score += 0.1
	}
	if info.Times["entry"] != "" && info.Times["exit"] != "" {
		score += 0.3
	}
	if info.Times["duration"] != "" {
		score += 0.1
	}
	if len(info.Prices) > 0 {
		score += 0.1
	}

	if score < parkingScoreThreshold {
		return nil
	}

	return &model.Prediction{
		Category:   model.CategoryTravel,
		Confidence: 0.95,
		Reasoning:  parkingReasoning(ocr, info),
	}
}

// parkingReasoning assembles a human-readable explanation from whichever
// receipt fields are present.
func parkingReasoning(ocr *model.OCRResult, info *model.ExtractedInfo) string {
	parts := []string{"駐車場利用料金"}
	if ocr.CompanyName != "" {
		parts = append(parts, "運営会社: "+ocr.CompanyName)
	}
	if ocr.FacilityName != "" {
		parts = append(parts, "施設: "+ocr.FacilityName)
	}
	if entry, exit := info.Times["entry"], info.Times["exit"]; entry != "" && exit != "" {
		parts = append(parts, "入庫 "+entry+" / 出庫 "+exit)
	}
	if duration := info.Times["duration"]; duration != "" {
		parts = append(parts, "駐車時間 "+duration)
	}
	return strings.Join(parts, "、")
}

func containsParkingKeyword(name string) bool {
	if name == "" {
		return false
	}
	lower := strings.ToLower(name)
	for _, keyword := range parkingKeywords {
		if strings.Contains(lower, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
