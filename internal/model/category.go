package model

// Japanese bookkeeping account categories the engine can predict.
const (
	CategoryTravel         = "旅費交通費"
	CategoryMeeting        = "会議費"
	CategoryEntertainment  = "接待交際費"
	CategoryConsumables    = "消耗品費"
	CategoryOfficeSupplies = "事務用品費"
	CategoryWelfare        = "福利厚生費"
	CategoryEquipment      = "工具器具備品"
	CategoryTaxesAndDues   = "租税公課"
	CategoryUnclassified   = "未分類"
)

// Pending placeholder categories used while a prediction awaits user
// confirmation.
const (
	PendingTaxRelated = "確認待ち（税金関連）"
	PendingUnclear    = "確認待ち（内容不明）"
)

// Vocabulary returns every category label the engine may emit as a final
// prediction, in a fixed order.
func Vocabulary() []string {
	return []string{
		CategoryTravel,
		CategoryMeeting,
		CategoryEntertainment,
		CategoryConsumables,
		CategoryOfficeSupplies,
		CategoryWelfare,
		CategoryEquipment,
		CategoryTaxesAndDues,
		CategoryUnclassified,
	}
}

// InVocabulary reports whether category is a label the engine may emit.
func InVocabulary(category string) bool {
	for _, c := range Vocabulary() {
		if c == category {
			return true
		}
	}
	return false
}
