// Package seed loads the curated question bank into the question store.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"regexp"

	"gopkg.in/yaml.v3"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

//go:embed questions.yaml
var defaultBank []byte

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type bank struct {
	Questions []*domain.Question `yaml:"questions"`
}

// Load parses and validates a question bank.
func Load(r io.Reader) ([]*domain.Question, error) {
	var b bank
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to decode question bank: %w", err)
	}

	seen := make(map[string]bool, len(b.Questions))
	for i, q := range b.Questions {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("question %d (%s): %w", i, q.QuestionID, err)
		}
		if seen[q.QuestionID] {
			return nil, fmt.Errorf("duplicate question id %s", q.QuestionID)
		}
		seen[q.QuestionID] = true
	}
	return b.Questions, nil
}

// Default returns the bank compiled into the binary.
func Default() ([]*domain.Question, error) {
	return Load(bytes.NewReader(defaultBank))
}

func validate(q *domain.Question) error {
	switch {
	case q.QuestionID == "":
		return errors.New("missing questionId")
	case !q.Type.Valid():
		return fmt.Errorf("%w: %q", domain.ErrInvalidQuestionType, q.Type)
	case q.Title == "":
		return errors.New("missing title")
	case q.TimeLimit <= 0:
		return errors.New("timeLimit must be positive")
	case len(q.TestCases) == 0:
		return domain.ErrNoTestCases
	case q.FunctionName != "" && !identRe.MatchString(q.FunctionName):
		return fmt.Errorf("%w: %q", domain.ErrInvalidFunctionName, q.FunctionName)
	}
	if _, ok := domain.ParseDifficulty(string(q.Difficulty)); !ok {
		return fmt.Errorf("unknown difficulty %q", q.Difficulty)
	}
	for lang := range q.StarterCode {
		if !lang.Valid() {
			return fmt.Errorf("%w in starter code: %q", domain.ErrUnsupportedLanguage, lang)
		}
	}
	return nil
}

// Seeder upserts a question bank.
type Seeder struct {
	repo   secondary.QuestionRepository
	logger primary.Logger
}

func NewSeeder(repo secondary.QuestionRepository, logger primary.Logger) *Seeder {
	return &Seeder{repo: repo, logger: logger}
}

// Run saves every question and returns how many were written.
func (s *Seeder) Run(ctx context.Context, questions []*domain.Question) (int, error) {
	for i, q := range questions {
		if err := s.repo.SaveQuestion(ctx, q); err != nil {
			return i, fmt.Errorf("failed to seed %s: %w", q.QuestionID, err)
		}
		s.logger.Debug("Seeded question", "questionId", q.QuestionID)
	}
	s.logger.Info("Question bank seeded", "count", len(questions))
	return len(questions), nil
}
