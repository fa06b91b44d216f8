package interview

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"gitlab.com/codeprep.net/internal/domain"
)

//go:embed bank.yaml
var defaultBank []byte

// Bank holds the multiple choice questions of every quiz category.
type Bank map[domain.InterviewCategory][]domain.InterviewQuestion

// LoadBank parses and validates a YAML question bank.
func LoadBank(raw []byte) (Bank, error) {
	var bank Bank
	if err := yaml.Unmarshal(raw, &bank); err != nil {
		return nil, fmt.Errorf("failed to parse interview bank: %w", err)
	}
	for _, cat := range domain.InterviewCategories {
		if len(bank[cat]) == 0 {
			return nil, fmt.Errorf("interview bank has no %s questions", cat)
		}
	}
	for cat, qs := range bank {
		for _, q := range qs {
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return nil, fmt.Errorf("%s question %d: correct option %d out of range", cat, q.ID, q.Correct)
			}
		}
	}
	return bank, nil
}

// DefaultBank is the bank compiled into the binary.
func DefaultBank() (Bank, error) {
	return LoadBank(defaultBank)
}
