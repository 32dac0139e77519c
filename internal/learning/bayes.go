package learning

import (
	"context"
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"
	"github.com/kanjoflow/kanjo/internal/model"
)

// bayesModel is a per-company naive-Bayes classifier trained on recorded
// vendor history. It covers vendors never seen verbatim.
type bayesModel struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

// bayesMinProbability is the winning-class probability below which the
// Bayes guess is discarded as noise.
const bayesMinProbability = 0.5

func (s *Store) invalidateBayes(companyID string) {
	s.bayesMu.Lock()
	delete(s.bayesCache, companyID)
	s.bayesMu.Unlock()
}

// bayesLookup guesses a category for an unseen vendor from the company's
// history. Returns nil when the history is too thin or the guess too weak.
func (s *Store) bayesLookup(ctx context.Context, companyID, normalizedVendor string) (*model.CategoryScore, error) {
	s.bayesMu.Lock()
	defer s.bayesMu.Unlock()

	bm, ok := s.bayesCache[companyID]
	if !ok {
		var err error
		bm, err = s.trainBayes(ctx, companyID)
		if err != nil {
			return nil, err
		}
		s.bayesCache[companyID] = bm
	}
	if bm == nil || bm.classifier == nil {
		return nil, nil
	}

	tokens := tokenizeVendor(normalizedVendor)
	if len(tokens) == 0 {
		return nil, nil
	}

	scores, winner, _ := bm.classifier.ProbScores(tokens)
	if winner < 0 || winner >= len(bm.classes) || scores[winner] < bayesMinProbability {
		return nil, nil
	}

	// Bayes guesses are suggestive, never authoritative: confidence stays
	// below the history-override threshold so they can only boost, not
	// replace, the rule-based prediction.
	confidence := 0.5 + 0.25*scores[winner]
	if confidence > 0.75 {
		confidence = 0.75
	}

	return &model.CategoryScore{
		Category:   string(bm.classes[winner]),
		Confidence: confidence,
	}, nil
}

// trainBayes builds the classifier from all of a company's records. A nil
// model (no error) means the history spans fewer than two categories.
func (s *Store) trainBayes(ctx context.Context, companyID string) (*bayesModel, error) {
	records, err := s.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string][]Record)
	for _, r := range records {
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	if len(byCategory) < 2 {
		return &bayesModel{}, nil
	}

	classes := make([]bayesian.Class, 0, len(byCategory))
	for _, category := range model.Vocabulary() {
		if _, ok := byCategory[category]; ok {
			classes = append(classes, bayesian.Class(category))
		}
	}

	classifier := bayesian.NewClassifier(classes...)
	for _, class := range classes {
		for _, r := range byCategory[string(class)] {
			tokens := tokenizeVendor(r.Vendor)
			if len(tokens) == 0 {
				continue
			}
			// Weight repeat confirmations.
			for i := 0; i < r.UseCount; i++ {
				classifier.Learn(tokens, class)
			}
		}
	}

	return &bayesModel{classifier: classifier, classes: classes}, nil
}

// tokenizeVendor splits a vendor name into ASCII words plus CJK character
// bigrams, so Japanese names without spaces still produce features.
func tokenizeVendor(vendor string) []string {
	var tokens []string
	var ascii strings.Builder
	var cjk []rune

	flushASCII := func() {
		if ascii.Len() > 0 {
			tokens = append(tokens, ascii.String())
			ascii.Reset()
		}
	}
	flushCJK := func() {
		for i := 0; i+1 < len(cjk); i++ {
			tokens = append(tokens, string(cjk[i:i+2]))
		}
		if len(cjk) == 1 {
			tokens = append(tokens, string(cjk))
		}
		cjk = cjk[:0]
	}

	for _, r := range vendor {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			flushCJK()
			ascii.WriteRune(unicode.ToLower(r))
		case unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana):
			flushASCII()
			cjk = append(cjk, r)
		default:
			flushASCII()
			flushCJK()
		}
	}
	flushASCII()
	flushCJK()

	return tokens
}
