// Package extract turns raw OCR output into the structured signal bag the
// classifiers consume. Extraction never fails: missing or malformed fields
// simply leave their signals unset.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kanjoflow/kanjo/internal/model"
)

// Named time-of-day patterns. A pattern that fails to match omits its key.
var timePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"entry", regexp.MustCompile(`入庫\s*[:：]?\s*(\d{1,2}:\d{2})`)},
	{"exit", regexp.MustCompile(`出庫\s*[:：]?\s*(\d{1,2}:\d{2})`)},
	{"start", regexp.MustCompile(`開始\s*[:：]?\s*(\d{1,2}:\d{2})`)},
	{"end", regexp.MustCompile(`終了\s*[:：]?\s*(\d{1,2}:\d{2})`)},
	{"receipt", regexp.MustCompile(`(\d{1,2}:\d{2})`)},
}

// Named price patterns, matched against the receipt body.
var pricePatterns = []struct {
	name string
	re   *regexp.Regexp
}{
	{"total", regexp.MustCompile(`合\s*計\s*[:：]?\s*[¥￥]?\s*([0-9][0-9,]*)`)},
	{"subtotal", regexp.MustCompile(`小\s*計\s*[:：]?\s*[¥￥]?\s*([0-9][0-9,]*)`)},
	{"tax", regexp.MustCompile(`(?:消費税|内税|外税)\s*[:：]?\s*[¥￥]?\s*([0-9][0-9,]*)`)},
	{"unit", regexp.MustCompile(`単\s*価\s*[:：]?\s*[¥￥]?\s*([0-9][0-9,]*)`)},
}

var participantPattern = regexp.MustCompile(`([0-9]+)\s*(?:名様|名|人)`)

// Extractor scans OCR results against a fixed set of keyword tables.
type Extractor struct {
	tables *Tables
}

// NewExtractor creates an extractor over the given tables. A nil tables
// argument uses the built-in defaults.
func NewExtractor(tables *Tables) *Extractor {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Extractor{tables: tables}
}

// Extract builds the signal bag for one OCR result. The same input always
// produces the same output.
func (e *Extractor) Extract(ocr *model.OCRResult) *model.ExtractedInfo {
	info := &model.ExtractedInfo{
		Times:  make(map[string]string),
		Prices: make(map[string]int64),
		Items:  make(map[string][]string),
	}
	if ocr == nil {
		return info
	}

	body := strings.ToLower(ocr.Text)
	vendor := strings.ToLower(ocr.Vendor)
	searchText := body + " " + vendor

	e.extractTimes(ocr, info)
	e.extractPrices(ocr.Text, info)
	e.extractItems(ocr, searchText, info)
	e.extractParticipants(ocr.Text, info)
	e.detectBusinessType(searchText, info)
	e.deriveContext(ocr, searchText, info)

	return info
}

func (e *Extractor) extractTimes(ocr *model.OCRResult, info *model.ExtractedInfo) {
	for _, p := range timePatterns {
		if m := p.re.FindStringSubmatch(ocr.Text); len(m) > 1 {
			info.Times[p.name] = m[1]
		}
	}

	// Structured OCR fields win over anything scraped from the body.
	if ocr.EntryTime != "" {
		info.Times["entry"] = ocr.EntryTime
	}
	if ocr.ExitTime != "" {
		info.Times["exit"] = ocr.ExitTime
	}
	if ocr.ParkingDuration != "" {
		info.Times["duration"] = ocr.ParkingDuration
	}
}

func (e *Extractor) extractPrices(text string, info *model.ExtractedInfo) {
	for _, p := range pricePatterns {
		if m := p.re.FindStringSubmatch(text); len(m) > 1 {
			if amount, err := strconv.ParseInt(strings.ReplaceAll(m[1], ",", ""), 10, 64); err == nil {
				info.Prices[p.name] = amount
			}
		}
	}
}

func (e *Extractor) extractItems(ocr *model.OCRResult, searchText string, info *model.ExtractedInfo) {
	itemText := searchText
	for _, name := range ocr.ItemNames() {
		itemText += " " + strings.ToLower(name)
	}

	for _, table := range e.tables.Items {
		var matched []string
		for _, keyword := range table.Keywords {
			if strings.Contains(itemText, strings.ToLower(keyword)) {
				matched = append(matched, keyword)
			}
		}
		if len(matched) > 0 {
			info.Items[table.Category] = matched
		}
	}
}

func (e *Extractor) extractParticipants(text string, info *model.ExtractedInfo) {
	if m := participantPattern.FindStringSubmatch(text); len(m) > 1 {
		if count, err := strconv.Atoi(m[1]); err == nil && count > 0 {
			info.ParticipantCount = count
		}
	}
}

// detectBusinessType scores every keyword table against the receipt and
// picks the argmax. The tie-break is deterministic: the first table in
// declaration order that reaches the maximum score wins.
func (e *Extractor) detectBusinessType(searchText string, info *model.ExtractedInfo) {
	bestScore := 0
	for _, table := range e.tables.Business {
		score := 0
		var matched []string
		for _, keyword := range table.Keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				score++
				matched = append(matched, keyword)
			}
		}
		if score > bestScore {
			bestScore = score
			info.BusinessType = table.Type
			info.KeywordScore = score
			info.MatchedKeywords = matched
		}
	}
}

func (e *Extractor) deriveContext(ocr *model.OCRResult, searchText string, info *model.ExtractedInfo) {
	hour := receiptHour(ocr, info)
	if hour >= 11 && hour < 14 {
		info.Context.IsLunchTime = true
	}
	if hour >= 17 && hour < 22 {
		info.Context.IsDinnerTime = true
	}

	info.Context.HasAlcohol = len(info.Items[ItemAlcohol]) > 0 || containsAny(searchText, e.tables.Alcohol)
	info.Context.HasMeetingItems = len(info.Items[ItemMeeting]) > 0 || containsAny(searchText, e.tables.Meeting)

	if !ocr.Date.IsZero() {
		wd := ocr.Date.Weekday()
		info.Context.IsWeekend = wd == time.Saturday || wd == time.Sunday
	}
}

// receiptHour picks the hour-of-day signal: a time scraped from the body
// wins, then the entry time, then the OCR date's clock if it carries one.
func receiptHour(ocr *model.OCRResult, info *model.ExtractedInfo) int {
	for _, key := range []string{"receipt", "entry", "start"} {
		if h := parseHour(info.Times[key]); h >= 0 {
			return h
		}
	}
	if !ocr.Date.IsZero() && (ocr.Date.Hour() != 0 || ocr.Date.Minute() != 0) {
		return ocr.Date.Hour()
	}
	return -1
}

func parseHour(clock string) int {
	if clock == "" {
		return -1
	}
	parts := strings.SplitN(clock, ":", 2)
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return -1
	}
	return hour
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, strings.ToLower(keyword)) {
			return true
		}
	}
	return false
}
