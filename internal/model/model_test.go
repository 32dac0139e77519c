package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainMapping(t *testing.T) {
	tests := []struct {
		businessType BusinessType
		want         Domain
	}{
		{BusinessRestaurant, DomainFoodService},
		{BusinessCafe, DomainFoodService},
		{BusinessIzakaya, DomainFoodService},
		{BusinessSushi, DomainFoodService},
		{BusinessYakiniku, DomainFoodService},
		{BusinessFastFood, DomainFoodService},
		{BusinessConvenience, DomainRetail},
		{BusinessSupermarket, DomainRetail},
		{BusinessHomeCenter, DomainRetail},
		{BusinessElectronics, DomainRetail},
		{BusinessDrugstore, DomainRetail},
		{BusinessGasStation, DomainService},
		{BusinessParking, DomainService},
		{BusinessCleaning, DomainService},
		{BusinessHairSalon, DomainService},
		{BusinessTaxi, DomainTransport},
		{BusinessTrain, DomainTransport},
		{BusinessBus, DomainTransport},
		{BusinessAirline, DomainTransport},
		{BusinessType(""), DomainUnknown},
		{BusinessType("spaceport"), DomainUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.businessType.Domain(), "business type %q", tt.businessType)
	}
}

func TestVocabulary(t *testing.T) {
	vocab := Vocabulary()

	assert.Len(t, vocab, 9)
	assert.True(t, InVocabulary(CategoryTravel))
	assert.True(t, InVocabulary(CategoryUnclassified))
	assert.False(t, InVocabulary("雑損失"))
	assert.False(t, InVocabulary(""))
	assert.False(t, InVocabulary(PendingTaxRelated))
}

func TestPerPersonAmount(t *testing.T) {
	info := &ExtractedInfo{ParticipantCount: 4}
	assert.Equal(t, int64(3000), info.PerPersonAmount(12000))

	none := &ExtractedInfo{}
	assert.Equal(t, int64(12000), none.PerPersonAmount(12000))
}

func TestDisplayCategory(t *testing.T) {
	pending := &Prediction{
		Category:          CategoryTaxesAndDues,
		PendingCategory:   PendingTaxRelated,
		NeedsConfirmation: true,
		Status:            ConfirmationPending,
	}
	assert.Equal(t, PendingTaxRelated, pending.DisplayCategory())

	confirmed := &Prediction{Category: CategoryTravel, Status: ConfirmationConfirmed}
	assert.Equal(t, CategoryTravel, confirmed.DisplayCategory())

	skipped := &Prediction{
		Category:          CategoryTravel,
		PendingCategory:   PendingUnclear,
		NeedsConfirmation: true,
		Status:            ConfirmationSkipped,
	}
	assert.Equal(t, CategoryTravel, skipped.DisplayCategory())
}

func TestFormatYen(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "¥0"},
		{500, "¥500"},
		{1234, "¥1,234"},
		{100000, "¥100,000"},
		{1234567, "¥1,234,567"},
		{-500, "¥-500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatYen(tt.amount), "amount %d", tt.amount)
	}
}

func TestItemNames(t *testing.T) {
	ocr := &OCRResult{Items: []ReceiptItem{
		{Name: "ボールペン", Amount: 150},
		{Name: "ノート", Amount: 200},
	}}
	assert.Equal(t, []string{"ボールペン", "ノート"}, ocr.ItemNames())

	empty := &OCRResult{}
	assert.Empty(t, empty.ItemNames())
}
