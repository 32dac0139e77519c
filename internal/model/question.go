package model

// QuestionType is the input widget a confirmation question expects.
type QuestionType string

// Question type constants.
const (
	QuestionSingleChoice QuestionType = "single_choice"
	QuestionYesNo        QuestionType = "yes_no"
	QuestionTextInput    QuestionType = "text_input"
)

// QuestionOption is one selectable choice of a confirmation question.
// ResultCategory, when set, is the category the prediction resolves to if
// the user picks this option.
type QuestionOption struct {
	Value          string `json:"value"`
	Label          string `json:"label"`
	ResultCategory string `json:"result_category,omitempty"`
}

// Question is a single disambiguation question shown to the user when a
// prediction needs confirmation. Questions are transient UI payload and are
// never persisted.
type Question struct {
	ID       string           `json:"id"`
	Type     QuestionType     `json:"type"`
	Text     string           `json:"question"`
	Context  string           `json:"context,omitempty"`
	Options  []QuestionOption `json:"options,omitempty"`
	Required bool             `json:"required"`
}

// Answer is the user's response to one confirmation question.
type Answer struct {
	QuestionID     string `json:"question_id"`
	Value          string `json:"answer"`
	ResultCategory string `json:"result_category,omitempty"`
}
