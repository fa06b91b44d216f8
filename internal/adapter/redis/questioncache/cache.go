package questioncache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

const (
	questionKeyPrefix = "question:"
	overviewKey       = "question:overview"
	defaultExpiration = 10 * time.Minute
)

var _ secondary.QuestionRepository = (*QuestionCache)(nil)

// QuestionCache is a read-through Redis cache in front of a question
// repository. Cache failures are logged and fall back to the store.
type QuestionCache struct {
	next        secondary.QuestionRepository
	redisClient *redis.Client
	logger      primary.Logger
	expiration  time.Duration
}

func NewQuestionCache(next secondary.QuestionRepository, redisClient *redis.Client, logger primary.Logger, expiration time.Duration) *QuestionCache {
	if expiration <= 0 {
		expiration = defaultExpiration
	}
	return &QuestionCache{
		next:        next,
		redisClient: redisClient,
		logger:      logger,
		expiration:  expiration,
	}
}

func questionKey(questionID string) string {
	return fmt.Sprintf("%s%s", questionKeyPrefix, questionID)
}

// GetQuestion serves from Redis when possible and populates it on a miss.
func (c *QuestionCache) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	var cached domain.Question
	hit, err := c.get(ctx, questionKey(questionID), &cached)
	if err != nil {
		c.logger.Warn("Question cache read failed", "questionId", questionID, "error", err)
	}
	if hit {
		return &cached, nil
	}

	q, err := c.next.GetQuestion(ctx, questionID)
	if err != nil || q == nil {
		return q, err
	}

	c.set(ctx, questionKey(questionID), q)
	return q, nil
}

func (c *QuestionCache) RandomQuestion(ctx context.Context, questionType domain.QuestionType, difficulty domain.Difficulty) (*domain.Question, error) {
	return c.next.RandomQuestion(ctx, questionType, difficulty)
}

func (c *QuestionCache) ListQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.QuestionSummary, int, error) {
	return c.next.ListQuestions(ctx, filter)
}

func (c *QuestionCache) Overview(ctx context.Context) (*domain.QuestionOverview, error) {
	var cached domain.QuestionOverview
	hit, err := c.get(ctx, overviewKey, &cached)
	if err != nil {
		c.logger.Warn("Overview cache read failed", "error", err)
	}
	if hit {
		return &cached, nil
	}

	overview, err := c.next.Overview(ctx)
	if err != nil {
		return nil, err
	}
	c.set(ctx, overviewKey, overview)
	return overview, nil
}

func (c *QuestionCache) SaveQuestion(ctx context.Context, question *domain.Question) error {
	if err := c.next.SaveQuestion(ctx, question); err != nil {
		return err
	}
	c.invalidate(ctx, questionKey(question.QuestionID), overviewKey)
	return nil
}

// RecordSubmission drops the cached copy so counters are reloaded on next read.
func (c *QuestionCache) RecordSubmission(ctx context.Context, questionID string, accepted bool) error {
	if err := c.next.RecordSubmission(ctx, questionID, accepted); err != nil {
		return err
	}
	c.invalidate(ctx, questionKey(questionID))
	return nil
}

func (c *QuestionCache) get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return true, nil
}

func (c *QuestionCache) set(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Error("Failed to marshal cache entry", "key", key, "error", err)
		return
	}
	if err := c.redisClient.Set(ctx, key, data, c.expiration).Err(); err != nil {
		c.logger.Warn("Failed to write cache entry", "key", key, "error", err)
	}
}

func (c *QuestionCache) invalidate(ctx context.Context, keys ...string) {
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("Failed to invalidate cache", "keys", keys, "error", err)
	}
}
