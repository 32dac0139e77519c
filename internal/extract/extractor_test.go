package extract

import (
	"testing"
	"time"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimes(t *testing.T) {
	e := NewExtractor(nil)

	ocr := &model.OCRResult{
		Text: "タイムズ渋谷\n入庫 09:30\n出庫 11:45\n駐車料金 ¥800",
	}
	info := e.Extract(ocr)

	assert.Equal(t, "09:30", info.Times["entry"])
	assert.Equal(t, "11:45", info.Times["exit"])
}

func TestExtractTimesStructuredFieldsWin(t *testing.T) {
	e := NewExtractor(nil)

	ocr := &model.OCRResult{
		Text:            "入庫 08:00",
		EntryTime:       "09:15",
		ExitTime:        "10:45",
		ParkingDuration: "1時間30分",
	}
	info := e.Extract(ocr)

	assert.Equal(t, "09:15", info.Times["entry"])
	assert.Equal(t, "10:45", info.Times["exit"])
	assert.Equal(t, "1時間30分", info.Times["duration"])
}

func TestExtractPrices(t *testing.T) {
	e := NewExtractor(nil)

	ocr := &model.OCRResult{
		Text: "小計 ¥1,200\n消費税 ¥120\n合計 ¥1,320",
	}
	info := e.Extract(ocr)

	assert.Equal(t, int64(1320), info.Prices["total"])
	assert.Equal(t, int64(1200), info.Prices["subtotal"])
	assert.Equal(t, int64(120), info.Prices["tax"])
}

func TestExtractParticipants(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"mei suffix", "テーブル 4名様", 4},
		{"nin suffix", "2人前", 2},
		{"no participants", "合計 ¥500", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewExtractor(nil).Extract(&model.OCRResult{Text: tt.text})
			assert.Equal(t, tt.want, info.ParticipantCount)
		})
	}
}

func TestDetectBusinessType(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		text   string
		want   model.BusinessType
	}{
		{"cafe from vendor", "スターバックス渋谷店", "", model.BusinessCafe},
		{"parking from vendor", "タイムズ24", "", model.BusinessParking},
		{"gas station from text", "", "ENEOS 給油 レギュラー", model.BusinessGasStation},
		{"izakaya", "居酒屋まるちゃん", "", model.BusinessIzakaya},
		{"no match", "謎の店", "なにか", model.BusinessType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewExtractor(nil).Extract(&model.OCRResult{Vendor: tt.vendor, Text: tt.text})
			assert.Equal(t, tt.want, info.BusinessType)
		})
	}
}

func TestDetectBusinessTypeTieBreak(t *testing.T) {
	// One keyword from the sushi table and one from the fastfood table:
	// the earlier-declared table wins the tie.
	info := NewExtractor(nil).Extract(&model.OCRResult{Text: "寿司 マクドナルド"})
	assert.Equal(t, model.BusinessSushi, info.BusinessType)
	assert.Equal(t, 1, info.KeywordScore)
}

func TestContextSignals(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("lunch time", func(t *testing.T) {
		info := e.Extract(&model.OCRResult{Text: "12:30 ランチセット"})
		assert.True(t, info.Context.IsLunchTime)
		assert.False(t, info.Context.IsDinnerTime)
	})

	t.Run("dinner with alcohol", func(t *testing.T) {
		info := e.Extract(&model.OCRResult{Text: "19:10\n生ビール 2\nお通し"})
		assert.True(t, info.Context.IsDinnerTime)
		assert.True(t, info.Context.HasAlcohol)
	})

	t.Run("meeting items", func(t *testing.T) {
		info := e.Extract(&model.OCRResult{Text: "打ち合わせ用 お茶 ペットボトル"})
		assert.True(t, info.Context.HasMeetingItems)
	})

	t.Run("weekend from date", func(t *testing.T) {
		saturday := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
		info := e.Extract(&model.OCRResult{Date: saturday})
		assert.True(t, info.Context.IsWeekend)
	})
}

func TestExtractItems(t *testing.T) {
	info := NewExtractor(nil).Extract(&model.OCRResult{
		Text: "カインズ",
		Items: []model.ReceiptItem{
			{Name: "電動ドリル", Amount: 12800},
			{Name: "コピー用紙 A4", Amount: 500},
		},
	})

	assert.Contains(t, info.Items, ItemTools)
	assert.Contains(t, info.Items, ItemOffice)
}

func TestExtractIdempotent(t *testing.T) {
	e := NewExtractor(nil)
	ocr := &model.OCRResult{
		Vendor: "スターバックス",
		Text:   "12:15 コーヒー 2名 合計 ¥900",
		Date:   time.Date(2025, 6, 2, 12, 15, 0, 0, time.UTC),
	}

	first := e.Extract(ocr)
	second := e.Extract(ocr)

	assert.Equal(t, first, second)
}

func TestExtractNilAndEmptyInput(t *testing.T) {
	e := NewExtractor(nil)

	info := e.Extract(nil)
	require.NotNil(t, info)
	assert.Empty(t, info.BusinessType)

	info = e.Extract(&model.OCRResult{})
	require.NotNil(t, info)
	assert.Empty(t, info.Times)
	assert.Empty(t, info.Prices)
	assert.Zero(t, info.ParticipantCount)
}
