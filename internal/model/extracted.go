package model

// BusinessType is an inferred merchant category derived from keyword
// matching against the vendor name and receipt text.
type BusinessType string

// Known business types, grouped by domain.
const (
	BusinessRestaurant  BusinessType = "restaurant"
	BusinessCafe        BusinessType = "cafe"
	BusinessIzakaya     BusinessType = "izakaya"
	BusinessSushi       BusinessType = "sushi"
	BusinessYakiniku    BusinessType = "yakiniku"
	BusinessFastFood    BusinessType = "fastfood"
	BusinessConvenience BusinessType = "convenience"
	BusinessSupermarket BusinessType = "supermarket"
	BusinessHomeCenter  BusinessType = "homecenter"
	BusinessElectronics BusinessType = "electronics"
	BusinessDrugstore   BusinessType = "drugstore"
	BusinessGasStation  BusinessType = "gasstation"
	BusinessParking     BusinessType = "parking"
	BusinessCleaning    BusinessType = "cleaning"
	BusinessHairSalon   BusinessType = "hairsalon"
	BusinessTaxi        BusinessType = "taxi"
	BusinessTrain       BusinessType = "train"
	BusinessBus         BusinessType = "bus"
	BusinessAirline     BusinessType = "airline"
)

// Domain groups business types into the classifier families the engine
// dispatches over. The set is closed so the dispatch switch stays
// exhaustive.
type Domain int

// Classifier domains.
const (
	DomainUnknown Domain = iota
	DomainFoodService
	DomainRetail
	DomainService
	DomainTransport
)

// Domain returns the classifier family for a business type.
func (b BusinessType) Domain() Domain {
	switch b {
	case BusinessRestaurant, BusinessCafe, BusinessIzakaya, BusinessSushi, BusinessYakiniku, BusinessFastFood:
		return DomainFoodService
	case BusinessConvenience, BusinessSupermarket, BusinessHomeCenter, BusinessElectronics, BusinessDrugstore:
		return DomainRetail
	case BusinessGasStation, BusinessParking, BusinessCleaning, BusinessHairSalon:
		return DomainService
	case BusinessTaxi, BusinessTrain, BusinessBus, BusinessAirline:
		return DomainTransport
	default:
		return DomainUnknown
	}
}

// Context holds boolean signals derived from the receipt.
type Context struct {
	IsLunchTime     bool
	IsDinnerTime    bool
	HasAlcohol      bool
	HasMeetingItems bool
	IsWeekend       bool
}

// ExtractedInfo is the structured bag of signals produced by the feature
// extractor. It is built fresh for every call and carries no state between
// invocations.
type ExtractedInfo struct {
	Times            map[string]string
	Prices           map[string]int64
	Items            map[string][]string
	MatchedKeywords  []string
	BusinessType     BusinessType
	KeywordScore     int
	ParticipantCount int
	Context          Context
}

// PerPersonAmount divides the receipt total by the participant count.
// Returns the full amount when no participant count was extracted.
func (e *ExtractedInfo) PerPersonAmount(total int64) int64 {
	if e.ParticipantCount <= 0 {
		return total
	}
	return total / int64(e.ParticipantCount)
}
