package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/schollz/progressbar/v3"
)

// Prompter renders confirmation questions as a terminal choice form and
// collects the user's answers.
type Prompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompter creates a prompter over the given reader and writer. Nil
// arguments default to stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}
	return &Prompter{
		reader: bufio.NewReader(reader),
		writer: writer,
	}
}

// AskQuestions walks the question set in order and returns one answer per
// answered question. Optional text questions may be skipped with an empty
// line.
func (p *Prompter) AskQuestions(ctx context.Context, questions []model.Question) ([]model.Answer, error) {
	answers := make([]model.Answer, 0, len(questions))

	for _, q := range questions {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		answer, answered, err := p.askOne(q)
		if err != nil {
			return nil, err
		}
		if answered {
			answers = append(answers, answer)
		}
	}

	return answers, nil
}

func (p *Prompter) askOne(q model.Question) (model.Answer, bool, error) {
	fmt.Fprintln(p.writer)
	fmt.Fprintln(p.writer, PromptStyle.Render(q.Text))
	if q.Context != "" {
		fmt.Fprintln(p.writer, SubtleStyle.Render(q.Context))
	}

	switch q.Type {
	case model.QuestionSingleChoice, model.QuestionYesNo:
		return p.askChoice(q)
	case model.QuestionTextInput:
		return p.askText(q)
	default:
		return model.Answer{}, false, fmt.Errorf("unknown question type: %s", q.Type)
	}
}

func (p *Prompter) askChoice(q model.Question) (model.Answer, bool, error) {
	for i, opt := range q.Options {
		fmt.Fprintf(p.writer, "  [%d] %s\n", i+1, opt.Label)
	}

	for {
		fmt.Fprintf(p.writer, "%s ", PromptStyle.Render("番号を入力:"))
		line, err := p.reader.ReadString('\n')
		if err != nil {
			return model.Answer{}, false, fmt.Errorf("failed to read answer: %w", err)
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > len(q.Options) {
			fmt.Fprintln(p.writer, WarningStyle.Render(fmt.Sprintf("1〜%dの番号を入力してください", len(q.Options))))
			continue
		}

		opt := q.Options[choice-1]
		return model.Answer{
			QuestionID:     q.ID,
			Value:          opt.Value,
			ResultCategory: opt.ResultCategory,
		}, true, nil
	}
}

func (p *Prompter) askText(q model.Question) (model.Answer, bool, error) {
	if !q.Required {
		fmt.Fprintln(p.writer, SubtleStyle.Render("（空行でスキップ）"))
	}

	for {
		fmt.Fprintf(p.writer, "%s ", PromptStyle.Render(">"))
		line, err := p.reader.ReadString('\n')
		if err != nil {
			return model.Answer{}, false, fmt.Errorf("failed to read answer: %w", err)
		}

		text := strings.TrimSpace(line)
		if text == "" {
			if q.Required {
				fmt.Fprintln(p.writer, WarningStyle.Render("入力が必要です"))
				continue
			}
			return model.Answer{}, false, nil
		}

		return model.Answer{QuestionID: q.ID, Value: text}, true, nil
	}
}

// NewProgressBar creates the progress bar used by batch classification.
func NewProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
