package contributionrepository

import (
	"reflect"
	"strings"
	"testing"

	"gitlab.com/codeprep.net/internal/domain"
)

func TestPendingQueryJoinsSubmitter(t *testing.T) {
	repo := NewContributionRepository(nil, nil, "app")
	query, args := repo.pendingQuery().Build()

	for _, want := range []string{
		"FROM app.contributions INNER JOIN app.users u ON u.id = contributions.user_id",
		"u.name AS submitter_name, u.email AS submitter_email",
		"WHERE contributions.status = ? ORDER BY contributions.created_at DESC",
	} {
		if !strings.Contains(query, want) {
			t.Fatalf("query missing %q:\n%s", want, query)
		}
	}
	if !reflect.DeepEqual(args, []interface{}{domain.ContributionPending}) {
		t.Fatalf("args = %v", args)
	}
}
