package questioncache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"gitlab.com/codeprep.net/internal/adapter/logging"
	"gitlab.com/codeprep.net/internal/domain"
)

type stubRepo struct {
	questions map[string]*domain.Question
	gets      int
	overviews int
	recorded  int
}

func (s *stubRepo) GetQuestion(_ context.Context, id string) (*domain.Question, error) {
	s.gets++
	q, ok := s.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (s *stubRepo) RandomQuestion(context.Context, domain.QuestionType, domain.Difficulty) (*domain.Question, error) {
	return nil, nil
}

func (s *stubRepo) ListQuestions(context.Context, domain.QuestionFilter) ([]*domain.QuestionSummary, int, error) {
	return nil, 0, nil
}

func (s *stubRepo) Overview(context.Context) (*domain.QuestionOverview, error) {
	s.overviews++
	return &domain.QuestionOverview{Total: len(s.questions), Difficulty: map[string]int{"Easy": len(s.questions)}}, nil
}

func (s *stubRepo) SaveQuestion(_ context.Context, q *domain.Question) error {
	s.questions[q.QuestionID] = q
	return nil
}

func (s *stubRepo) RecordSubmission(_ context.Context, id string, accepted bool) error {
	s.recorded++
	s.questions[id].TotalSubmissions++
	if accepted {
		s.questions[id].TotalAccepted++
	}
	return nil
}

func setup(t *testing.T) (*QuestionCache, *stubRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := &stubRepo{questions: map[string]*domain.Question{
		"DSA001": {
			QuestionID:   "DSA001",
			Title:        "Two Sum",
			FunctionName: "twoSum",
			TimeLimit:    30,
			TestCases: domain.TestCases{
				{Input: "[2,7,11,15]\n9", ExpectedOutput: "[0,1]"},
				{Input: "[3,3]\n6", ExpectedOutput: "[0,1]", IsHidden: true},
			},
		},
	}}
	return NewQuestionCache(repo, client, logging.NewNopLogger(), time.Minute), repo, mr
}

func TestGetQuestionReadsThrough(t *testing.T) {
	cache, repo, mr := setup(t)
	ctx := context.Background()

	first, err := cache.GetQuestion(ctx, "DSA001")
	if err != nil || first == nil {
		t.Fatalf("first read: %v %v", first, err)
	}
	if !mr.Exists("question:DSA001") {
		t.Fatal("expected question to be cached")
	}
	if ttl := mr.TTL("question:DSA001"); ttl != time.Minute {
		t.Fatalf("ttl = %v, want 1m", ttl)
	}

	second, err := cache.GetQuestion(ctx, "DSA001")
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if repo.gets != 1 {
		t.Fatalf("store reads = %d, want 1", repo.gets)
	}
	if len(second.TestCases) != 2 || second.TestCases[1].Input != "[3,3]\n6" || !second.TestCases[1].IsHidden {
		t.Fatalf("test cases lost in cache: %+v", second.TestCases)
	}
}

func TestGetQuestionMissIsNotCached(t *testing.T) {
	cache, repo, mr := setup(t)

	q, err := cache.GetQuestion(context.Background(), "NOPE")
	if err != nil || q != nil {
		t.Fatalf("got %v %v, want nil nil", q, err)
	}
	if mr.Exists("question:NOPE") {
		t.Fatal("missing question must not be cached")
	}
	if repo.gets != 1 {
		t.Fatalf("store reads = %d", repo.gets)
	}
}

func TestRecordSubmissionInvalidates(t *testing.T) {
	cache, repo, mr := setup(t)
	ctx := context.Background()

	if _, err := cache.GetQuestion(ctx, "DSA001"); err != nil {
		t.Fatal(err)
	}
	if err := cache.RecordSubmission(ctx, "DSA001", true); err != nil {
		t.Fatal(err)
	}
	if mr.Exists("question:DSA001") {
		t.Fatal("expected cache entry to be dropped")
	}

	q, err := cache.GetQuestion(ctx, "DSA001")
	if err != nil {
		t.Fatal(err)
	}
	if q.TotalSubmissions != 1 || q.TotalAccepted != 1 || repo.gets != 2 {
		t.Fatalf("stale question: %+v (reads %d)", q, repo.gets)
	}
}

func TestOverviewCachedUntilSave(t *testing.T) {
	cache, repo, _ := setup(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := cache.Overview(ctx); err != nil {
			t.Fatal(err)
		}
	}
	if repo.overviews != 1 {
		t.Fatalf("overview loads = %d, want 1", repo.overviews)
	}

	if err := cache.SaveQuestion(ctx, &domain.Question{QuestionID: "DSA002", Title: "Valid Parentheses"}); err != nil {
		t.Fatal(err)
	}
	o, err := cache.Overview(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if repo.overviews != 2 || o.Total != 2 {
		t.Fatalf("overview not refreshed: loads=%d total=%d", repo.overviews, o.Total)
	}
}

func TestRedisDownFallsBackToStore(t *testing.T) {
	_, repo, _ := setup(t)
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	cache := NewQuestionCache(repo, client, logging.NewNopLogger(), time.Minute)

	q, err := cache.GetQuestion(context.Background(), "DSA001")
	if err != nil || q == nil {
		t.Fatalf("expected store fallback, got %v %v", q, err)
	}
	if repo.gets != 1 {
		t.Fatalf("store reads = %d", repo.gets)
	}
}
