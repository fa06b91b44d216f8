package questionrepository

import (
	"strings"
	"testing"

	"gitlab.com/codeprep.net/internal/domain"
)

func TestListQueryStatusFilter(t *testing.T) {
	repo := NewQuestionRepository(nil, nil, "app")
	const join = "LEFT JOIN (SELECT DISTINCT question_id AS solved_id FROM app.coding_attempts WHERE user_id = ? AND status = ?) solved ON solved.solved_id = question_id"

	tests := []struct {
		name      string
		filter    domain.QuestionFilter
		wantJoin  bool
		wantWhere string
		wantArgs  int
	}{
		{"anonymous", domain.QuestionFilter{Type: domain.QuestionTypeDSA}, false, " WHERE type = ?", 1},
		{"signed in without status", domain.QuestionFilter{SolvedBy: "u1"}, true, "", 2},
		{"solved", domain.QuestionFilter{SolvedBy: "u1", Status: "solved"}, true, " WHERE solved.solved_id IS NOT NULL", 2},
		{"unsolved with search", domain.QuestionFilter{SolvedBy: "u1", Status: "unsolved", Search: "sum"}, true, " WHERE solved.solved_id IS NULL AND title ILIKE ?", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := repo.listQuery(tt.filter, "COUNT(*)").Build()
			if got := strings.Contains(query, join); got != tt.wantJoin {
				t.Fatalf("join present = %v in %q", got, query)
			}
			if !strings.HasSuffix(query, tt.wantWhere) {
				t.Fatalf("query = %q, want suffix %q", query, tt.wantWhere)
			}
			if len(args) != tt.wantArgs {
				t.Fatalf("args = %v, want %d", args, tt.wantArgs)
			}
			if tt.wantJoin && (args[0] != "u1" || args[1] != domain.StatusCorrect) {
				t.Fatalf("join args must come first: %v", args)
			}
		})
	}
}
