// Package confirm decides whether a category prediction needs human
// confirmation and generates the disambiguation questions for it.
package confirm

// Options configures the confirmation-need checks. Treat as read-only after
// construction.
type Options struct {
	// TaxKeywords flag vendors that are tax authorities.
	TaxKeywords []string
	// PublicOfficeKeywords flag vendors that are public offices.
	PublicOfficeKeywords []string
	// VagueKeywords flag wording too unspecific to classify from.
	VagueKeywords []string
	// AmbiguousVendorKeywords flag vendors where business and personal use
	// are equally plausible.
	AmbiguousVendorKeywords []string
	// HighAmountThreshold is the amount (yen) at or above which a
	// prediction always requires confirmation.
	HighAmountThreshold int64
	// LowConfidenceThreshold is the confidence below which a prediction
	// requires confirmation.
	LowConfidenceThreshold float64
}

// DefaultOptions returns the built-in confirmation configuration.
func DefaultOptions() Options {
	return Options{
		TaxKeywords: []string{
			"税務署", "国税", "都税", "県税", "市税", "税事務所",
		},
		PublicOfficeKeywords: []string{
			"市役所", "区役所", "町役場", "村役場", "役所",
			"福祉事務所", "保健所", "公証役場", "法務局",
		},
		VagueKeywords: []string{
			"品代", "お品代", "品代として", "一式", "雑費", "その他", "諸経費",
		},
		AmbiguousVendorKeywords: []string{
			"コンビニ", "セブンイレブン", "ローソン", "ファミリーマート",
			"ガソリン", "eneos", "エネオス",
			"駐車場", "パーキング", "タイムズ",
			"携帯", "電話", "ドコモ", "ソフトバンク", "モバイル",
		},
		HighAmountThreshold:    100000,
		LowConfidenceThreshold: 0.7,
	}
}
