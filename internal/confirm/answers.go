package confirm

import (
	"fmt"
	"strings"

	"github.com/kanjoflow/kanjo/internal/model"
)

// Resolution is the outcome of processing a set of confirmation answers.
type Resolution struct {
	Category   string
	AuditTrail string
}

// ResolveAnswers walks the answers in order and resolves to the result
// category of the first answer that carries one. This is first-match-wins:
// later answers never override an earlier resolved category. When no answer
// carries a category, the prediction resolves to 未分類.
func ResolveAnswers(answers []model.Answer) Resolution {
	var trail []string
	category := ""

	for _, answer := range answers {
		trail = append(trail, fmt.Sprintf("質問「%s」への回答: %s", answer.QuestionID, answer.Value))
		if category == "" && answer.ResultCategory != "" {
			category = answer.ResultCategory
			trail = append(trail, fmt.Sprintf("回答に基づき「%s」に分類しました", category))
		}
	}

	if category == "" {
		category = model.CategoryUnclassified
		trail = append(trail, "回答から科目を特定できなかったため、未分類としました")
	}

	return Resolution{
		Category:   category,
		AuditTrail: strings.Join(trail, " / "),
	}
}

// Apply finalizes a prediction with the outcome of its confirmation
// answers.
func Apply(pred *model.Prediction, res Resolution) {
	pred.Category = res.Category
	pred.PendingCategory = ""
	pred.Status = model.ConfirmationConfirmed
	pred.Reasoning += " / " + res.AuditTrail
}

// Skip marks a prediction's confirmation as skipped, keeping the original
// category guess.
func Skip(pred *model.Prediction) {
	pred.Status = model.ConfirmationSkipped
}
