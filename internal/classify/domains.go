package classify

import (
	"fmt"

	"github.com/kanjoflow/kanjo/internal/extract"
	"github.com/kanjoflow/kanjo/internal/model"
)

// classifyFoodService splits on per-person amount and time-of-day context.
func classifyFoodService(ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	amount := amountOf(ocr)
	perPerson := info.PerPersonAmount(amount)

	if perPerson >= 5000 || info.Context.HasAlcohol {
		reason := fmt.Sprintf("飲食店での支出（1人あたり%s）", model.FormatYen(perPerson))
		if info.Context.HasAlcohol {
			reason = "飲食店での支出（アルコールを含む）"
		}
		return &model.Prediction{
			Category:   model.CategoryEntertainment,
			Confidence: 0.90,
			Reasoning:  reason,
			TaxNotes:   "接待交際費は損金算入に限度額があります。参加者と目的を記録してください",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryMeeting, Confidence: 0.40},
			},
		}
	}

	if info.BusinessType == model.BusinessCafe &&
		(info.Context.HasMeetingItems || (info.ParticipantCount > 0 && info.ParticipantCount <= 4 && perPerson <= 1500)) {
		return &model.Prediction{
			Category:   model.CategoryMeeting,
			Confidence: 0.85,
			Reasoning:  "カフェでの少人数・少額の支出のため打ち合わせと判断",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryEntertainment, Confidence: 0.30},
			},
		}
	}

	if info.Context.IsLunchTime && perPerson <= 1500 {
		return &model.Prediction{
			Category:   model.CategoryMeeting,
			Confidence: 0.75,
			Reasoning:  "昼食時間帯の少額の飲食のため打ち合わせと判断",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryWelfare, Confidence: 0.40},
			},
		}
	}

	if info.BusinessType == model.BusinessFastFood && amount <= 2000 {
		return &model.Prediction{
			Category:   model.CategoryWelfare,
			Confidence: 0.70,
			Reasoning:  "ファストフードでの少額の支出",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryMeeting, Confidence: 0.40},
			},
		}
	}

	return &model.Prediction{
		Category:   model.CategoryEntertainment,
		Confidence: 0.65,
		Reasoning:  "飲食店での支出",
		Alternatives: []model.CategoryScore{
			{Category: model.CategoryMeeting, Confidence: 0.45},
			{Category: model.CategoryWelfare, Confidence: 0.30},
		},
	}
}

// classifyRetail branches on the detected purchased-item category and
// amount thresholds.
func classifyRetail(ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	amount := amountOf(ocr)

	if len(info.Items[extract.ItemTools]) > 0 && amount >= 10000 {
		return &model.Prediction{
			Category:   model.CategoryEquipment,
			Confidence: 0.85,
			Reasoning:  "工具類の購入（¥10,000以上）のため資産計上候補",
			TaxNotes:   "取得価額10万円以上は減価償却が必要です。10万円未満は消耗品費として一括経費にできます",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryConsumables, Confidence: 0.50},
			},
		}
	}

	if len(info.Items[extract.ItemElectronics]) > 0 && amount >= 100000 {
		return &model.Prediction{
			Category:   model.CategoryEquipment,
			Confidence: 0.90,
			Reasoning:  "高額な電子機器の購入のため資産計上候補",
			TaxNotes:   "取得価額10万円以上のため減価償却資産です。少額減価償却資産の特例（30万円未満）の適用可否を確認してください",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryConsumables, Confidence: 0.30},
			},
		}
	}

	if len(info.Items[extract.ItemOffice]) > 0 {
		return &model.Prediction{
			Category:   model.CategoryOfficeSupplies,
			Confidence: 0.80,
			Reasoning:  "事務用品の購入",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryConsumables, Confidence: 0.55},
			},
		}
	}

	if len(info.Items[extract.ItemDaily]) > 0 {
		return &model.Prediction{
			Category:   model.CategoryConsumables,
			Confidence: 0.75,
			Reasoning:  "日用消耗品の購入",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryWelfare, Confidence: 0.35},
			},
		}
	}

	if len(info.Items[extract.ItemFood]) > 0 && info.Context.HasMeetingItems {
		return &model.Prediction{
			Category:   model.CategoryMeeting,
			Confidence: 0.70,
			Reasoning:  "会議用の飲食物の購入",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryWelfare, Confidence: 0.45},
			},
		}
	}

	return &model.Prediction{
		Category:   model.CategoryConsumables,
		Confidence: 0.65,
		Reasoning:  "小売店での購入",
		Alternatives: []model.CategoryScore{
			{Category: model.CategoryOfficeSupplies, Confidence: 0.40},
			{Category: model.CategoryWelfare, Confidence: 0.30},
		},
	}
}

// classifyService covers gas stations, parking, cleaning and salons.
func classifyService(ocr *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	switch info.BusinessType {
	case model.BusinessGasStation:
		return &model.Prediction{
			Category:   model.CategoryTravel,
			Confidence: 0.95,
			Reasoning:  "ガソリンスタンドでの給油",
		}
	case model.BusinessParking:
		// Reached when the dedicated parking analyzer scored below its
		// threshold; classify on the business type alone at lower
		// confidence.
		return &model.Prediction{
			Category:   model.CategoryTravel,
			Confidence: 0.80,
			Reasoning:  "駐車場関連の支出",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryConsumables, Confidence: 0.20},
			},
		}
	case model.BusinessCleaning:
		return &model.Prediction{
			Category:   model.CategoryWelfare,
			Confidence: 0.80,
			Reasoning:  "クリーニング代",
		}
	case model.BusinessHairSalon:
		return &model.Prediction{
			Category:   model.CategoryWelfare,
			Confidence: 0.60,
			Reasoning:  "理美容関連の支出",
			TaxNotes:   "事業関連性が認められない場合は経費にできません",
			Alternatives: []model.CategoryScore{
				{Category: model.CategoryUnclassified, Confidence: 0.40},
			},
		}
	default:
		return fallbackPredict(ocr)
	}
}

// classifyTransport is a near-fixed mapping: taxis, trains, buses and
// airlines are travel expenses.
func classifyTransport(_ *model.OCRResult, info *model.ExtractedInfo) *model.Prediction {
	return &model.Prediction{
		Category:   model.CategoryTravel,
		Confidence: 0.95,
		Reasoning:  fmt.Sprintf("交通機関（%s）の利用", info.BusinessType),
	}
}
