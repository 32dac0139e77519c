package confirm

import (
	"fmt"

	"github.com/kanjoflow/kanjo/internal/model"
)

// taxQuestions asks what kind of tax-authority payment this was.
func taxQuestions(vendor string) []model.Question {
	return []model.Question{
		{
			ID:      "tax_type",
			Type:    model.QuestionSingleChoice,
			Text:    "税務署・税事務所への支払いです。支払いの種類を選択してください",
			Context: fmt.Sprintf("支払先: %s", vendor),
			Options: []model.QuestionOption{
				{Value: "business_tax", Label: "事業に関わる税金（印紙税・自動車税・固定資産税など）", ResultCategory: model.CategoryTaxesAndDues},
				{Value: "penalty", Label: "延滞税・加算税など", ResultCategory: model.CategoryTaxesAndDues},
				{Value: "personal_tax", Label: "個人の税金（所得税・住民税など・経費になりません）", ResultCategory: model.CategoryUnclassified},
			},
			Required: true,
		},
	}
}

// inconsistencyQuestions asks what a vaguely-described public-office payment
// actually was. These replace any previously generated question set.
func inconsistencyQuestions(vendor, notes string) []model.Question {
	return []model.Question{
		{
			ID:      "public_office_detail",
			Type:    model.QuestionSingleChoice,
			Text:    "公的機関への支払いですが、摘要からは内容が分かりません。実際の内容を選択してください",
			Context: fmt.Sprintf("支払先: %s / 摘要: %s", vendor, notes),
			Options: []model.QuestionOption{
				{Value: "fee", Label: "証明書・登記などの手数料", ResultCategory: model.CategoryTaxesAndDues},
				{Value: "goods", Label: "物品の購入", ResultCategory: model.CategoryConsumables},
				{Value: "unknown", Label: "その他・不明", ResultCategory: model.CategoryUnclassified},
			},
			Required: true,
		},
	}
}

// vagueQuestions asks what was actually purchased when the wording is too
// unspecific to classify.
func vagueQuestions(notes string) []model.Question {
	return []model.Question{
		{
			ID:      "vague_detail",
			Type:    model.QuestionSingleChoice,
			Text:    "摘要が曖昧です。実際に購入したものを選択してください",
			Context: fmt.Sprintf("摘要: %s", notes),
			Options: []model.QuestionOption{
				{Value: "office", Label: "事務用品", ResultCategory: model.CategoryOfficeSupplies},
				{Value: "daily", Label: "日用品・消耗品", ResultCategory: model.CategoryConsumables},
				{Value: "meeting", Label: "打ち合わせ時の飲食", ResultCategory: model.CategoryMeeting},
				{Value: "other", Label: "その他", ResultCategory: model.CategoryUnclassified},
			},
			Required: true,
		},
		{
			ID:       "vague_note",
			Type:     model.QuestionTextInput,
			Text:     "差し支えなければ具体的な内容を入力してください",
			Required: false,
		},
	}
}

// businessUseQuestions asks whether the expense was for business at all.
// Answering yes keeps the predicted category.
func businessUseQuestions(vendor string, amount int64, predictedCategory string) []model.Question {
	return []model.Question{
		{
			ID:      "business_use",
			Type:    model.QuestionYesNo,
			Text:    "この支出は事業用ですか？",
			Context: fmt.Sprintf("支払先: %s / 金額: %s", vendor, model.FormatYen(amount)),
			Options: []model.QuestionOption{
				{Value: "yes", Label: "はい（事業用）", ResultCategory: predictedCategory},
				{Value: "no", Label: "いいえ（私用・経費になりません）", ResultCategory: model.CategoryUnclassified},
			},
			Required: true,
		},
	}
}
