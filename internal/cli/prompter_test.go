package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func choiceQuestion() model.Question {
	return model.Question{
		ID:   "tax_type",
		Type: model.QuestionSingleChoice,
		Text: "支払いの種類を選択してください",
		Options: []model.QuestionOption{
			{Value: "business_tax", Label: "事業に関わる税金", ResultCategory: model.CategoryTaxesAndDues},
			{Value: "personal_tax", Label: "個人の税金", ResultCategory: model.CategoryUnclassified},
		},
		Required: true,
	}
}

func TestAskQuestionsChoice(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("2\n"), &out)

	answers, err := p.AskQuestions(context.Background(), []model.Question{choiceQuestion()})
	require.NoError(t, err)

	require.Len(t, answers, 1)
	assert.Equal(t, "tax_type", answers[0].QuestionID)
	assert.Equal(t, "personal_tax", answers[0].Value)
	assert.Equal(t, model.CategoryUnclassified, answers[0].ResultCategory)
}

func TestAskQuestionsRejectsInvalidChoice(t *testing.T) {
	var out bytes.Buffer
	// Out-of-range and non-numeric input is re-prompted.
	p := NewPrompter(strings.NewReader("5\nabc\n1\n"), &out)

	answers, err := p.AskQuestions(context.Background(), []model.Question{choiceQuestion()})
	require.NoError(t, err)

	require.Len(t, answers, 1)
	assert.Equal(t, "business_tax", answers[0].Value)
}

func TestAskQuestionsOptionalTextSkipped(t *testing.T) {
	questions := []model.Question{{
		ID:   "vague_note",
		Type: model.QuestionTextInput,
		Text: "具体的な内容を入力してください",
	}}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\n"), &out)

	answers, err := p.AskQuestions(context.Background(), questions)
	require.NoError(t, err)
	assert.Empty(t, answers)
}

func TestAskQuestionsTextAnswer(t *testing.T) {
	questions := []model.Question{{
		ID:       "vague_note",
		Type:     model.QuestionTextInput,
		Text:     "具体的な内容を入力してください",
		Required: true,
	}}

	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nコピー用紙\n"), &out)

	answers, err := p.AskQuestions(context.Background(), questions)
	require.NoError(t, err)

	require.Len(t, answers, 1)
	assert.Equal(t, "コピー用紙", answers[0].Value)
	assert.Empty(t, answers[0].ResultCategory)
}

func TestAskQuestionsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPrompter(strings.NewReader("1\n"), &bytes.Buffer{})

	_, err := p.AskQuestions(ctx, []model.Question{choiceQuestion()})
	assert.ErrorIs(t, err, context.Canceled)
}
