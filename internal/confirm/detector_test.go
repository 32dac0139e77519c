package confirm

import (
	"testing"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectorTaxAuthority(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("品川税務署", 20000, model.CategoryTaxesAndDues, 0.9, "印紙税", nil)

	assert.True(t, result.NeedsConfirmation())
	assert.Equal(t, model.PendingTaxRelated, result.PendingCategory)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "tax_type", result.Questions[0].ID)
}

func TestDetectorPublicOfficeInconsistencyOverrides(t *testing.T) {
	d := NewDetector(Options{})

	// 市税 fires the tax check first; 市役所 plus the vague notes then
	// trigger the inconsistency check, which replaces the tax question set.
	result := d.Check("横浜市役所 市税課", 5000, model.CategoryTaxesAndDues, 0.9, "品代として", nil)

	assert.True(t, result.NeedsConfirmation())
	assert.Equal(t, model.PendingUnclear, result.PendingCategory)
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "public_office_detail", result.Questions[0].ID)
	assert.GreaterOrEqual(t, len(result.Reasons), 2)
}

func TestDetectorPublicOfficeWithClearNotes(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("渋谷区福祉事務所", 400, model.CategoryTaxesAndDues, 0.9, "住民票発行手数料", nil)

	// Clear wording at a public office needs no confirmation by itself.
	assert.False(t, result.NeedsConfirmation())
}

func TestDetectorPublicOfficeVagueWithoutTax(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("渋谷区役所", 1200, model.CategoryTaxesAndDues, 0.9, "品代", nil)

	assert.True(t, result.NeedsConfirmation())
	assert.Equal(t, model.PendingUnclear, result.PendingCategory)
	require.NotEmpty(t, result.Questions)
	assert.Equal(t, "public_office_detail", result.Questions[0].ID)
}

func TestDetectorVagueNotes(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("文具店", 800, model.CategoryConsumables, 0.9, "お品代", nil)

	assert.True(t, result.NeedsConfirmation())
	assert.Empty(t, result.PendingCategory)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "vague_detail", result.Questions[0].ID)
	assert.Equal(t, "vague_note", result.Questions[1].ID)
	assert.False(t, result.Questions[1].Required)
}

func TestDetectorVagueItemDescription(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("文具店", 800, model.CategoryConsumables, 0.9, "", []string{"一式"})

	assert.True(t, result.NeedsConfirmation())
	require.NotEmpty(t, result.Questions)
	assert.Equal(t, "vague_detail", result.Questions[0].ID)
}

func TestDetectorHighAmount(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("ヨドバシカメラ", 150000, model.CategoryEquipment, 0.85, "ノートPC", nil)

	assert.True(t, result.NeedsConfirmation())
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "business_use", result.Questions[0].ID)
	// Answering yes keeps the predicted category.
	assert.Equal(t, model.CategoryEquipment, result.Questions[0].Options[0].ResultCategory)
}

func TestDetectorHighAmountThresholdBoundary(t *testing.T) {
	d := NewDetector(Options{})

	below := d.Check("店", 99999, model.CategoryConsumables, 0.9, "備品", nil)
	at := d.Check("店", 100000, model.CategoryConsumables, 0.9, "備品", nil)

	assert.False(t, below.NeedsConfirmation())
	assert.True(t, at.NeedsConfirmation())
}

func TestDetectorLowConfidence(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("謎の店", 500, model.CategoryConsumables, 0.5, "買い物", nil)

	assert.True(t, result.NeedsConfirmation())
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "business_use", result.Questions[0].ID)
}

func TestDetectorAmbiguousVendor(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("セブンイレブン", 600, model.CategoryConsumables, 0.9, "飲み物", nil)

	assert.True(t, result.NeedsConfirmation())
	require.Len(t, result.Questions, 1)
	assert.Equal(t, "business_use", result.Questions[0].ID)
}

func TestDetectorCleanInput(t *testing.T) {
	d := NewDetector(Options{})

	result := d.Check("日本交通", 3200, model.CategoryTravel, 0.95, "タクシー代", nil)

	assert.False(t, result.NeedsConfirmation())
	assert.Empty(t, result.Questions)
	assert.Empty(t, result.Reasons)
}

func TestDetectorFirstCheckOwnsQuestions(t *testing.T) {
	d := NewDetector(Options{})

	// Vague notes and a high amount both fire; the vague questions, set
	// first, are kept.
	result := d.Check("文具店", 200000, model.CategoryConsumables, 0.9, "品代", nil)

	assert.GreaterOrEqual(t, len(result.Reasons), 2)
	require.NotEmpty(t, result.Questions)
	assert.Equal(t, "vague_detail", result.Questions[0].ID)
}

func TestDetectorCustomThresholds(t *testing.T) {
	d := NewDetector(Options{HighAmountThreshold: 10000, LowConfidenceThreshold: 0.9})

	result := d.Check("店", 12000, model.CategoryConsumables, 0.85, "備品", nil)

	assert.True(t, result.NeedsConfirmation())
	assert.Len(t, result.Reasons, 2)
}
