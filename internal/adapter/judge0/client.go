package judge0

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gitlab.com/codeprep.net/internal/config"
	"gitlab.com/codeprep.net/internal/core/ports/primary"
	"gitlab.com/codeprep.net/internal/core/ports/secondary"
	"gitlab.com/codeprep.net/internal/domain"
)

var _ secondary.CodeExecutor = (*Client)(nil)

const maxResponseBytes = 4 << 20

type submissionRequest struct {
	SourceCode string `json:"source_code"`
	LanguageID int    `json:"language_id"`
	Stdin      string `json:"stdin"`
}

type submissionStatus struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
}

type submissionResult struct {
	Stdout        string           `json:"stdout"`
	Stderr        string           `json:"stderr"`
	CompileOutput string           `json:"compile_output"`
	Message       string           `json:"message"`
	Status        submissionStatus `json:"status"`
	Time          string           `json:"time"`
	Memory        int64            `json:"memory"`
}

// Client runs programs on a Judge0 CE instance, one synchronous
// submission per call.
type Client struct {
	baseURL string
	apiKey  string
	apiHost string
	timeout time.Duration
	client  *http.Client
	logger  primary.Logger
}

func NewClient(cfg *config.Judge0Config, logger primary.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Url, "/"),
		apiKey:  cfg.ApiKey,
		apiHost: cfg.ApiHost,
		timeout: cfg.Timeout,
		client:  &http.Client{},
		logger:  logger,
	}
}

// Execute submits one program with wait=true. Transport problems come back
// as an InfrastructureError outcome rather than an error.
func (c *Client) Execute(ctx context.Context, req secondary.ExecutionRequest) (*domain.ExecutionOutcome, error) {
	languageID, ok := LanguageID(req.Language)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, req.Language)
	}

	body, err := json.Marshal(submissionRequest{
		SourceCode: encode(req.Source),
		LanguageID: languageID,
		Stdin:      encode(req.Stdin),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal submission: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	url := c.baseURL + "/submissions?base64_encoded=true&wait=true"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create submission request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("X-RapidAPI-Key", c.apiKey)
		httpReq.Header.Set("X-RapidAPI-Host", c.apiHost)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.logger.Warn("Sandbox call timed out", "language", req.Language, "timeout", c.timeout)
			return infrastructure("execution timed out"), nil
		}
		c.logger.Warn("Sandbox call failed", "language", req.Language, "error", err)
		return infrastructure("execution service unavailable: " + err.Error()), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		c.logger.Warn("Sandbox rate limited", "language", req.Language)
		return infrastructure("rate limited, retry later"), nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Sandbox returned unexpected status", "status", resp.StatusCode)
		return infrastructure(fmt.Sprintf("execution service returned HTTP %d", resp.StatusCode)), nil
	}

	var result submissionResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		c.logger.Warn("Failed to decode sandbox response", "error", err)
		return infrastructure("malformed response from execution service"), nil
	}
	if err := result.decode(); err != nil {
		c.logger.Warn("Failed to decode sandbox output", "error", err)
		return infrastructure("malformed response from execution service"), nil
	}

	outcome := classify(req.Language, &result)
	outcome.MemoryKB = result.Memory
	if t, err := strconv.ParseFloat(result.Time, 64); err == nil {
		outcome.TimeSeconds = t
	}

	c.logger.Debug("Sandbox call finished",
		"language", req.Language,
		"status", result.Status.ID,
		"classification", outcome.Classification,
		"time", outcome.TimeSeconds)

	return &outcome, nil
}

func (r *submissionResult) decode() error {
	for _, field := range []*string{&r.Stdout, &r.Stderr, &r.CompileOutput, &r.Message} {
		if *field == "" {
			continue
		}
		raw, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(*field, "\n", ""))
		if err != nil {
			return err
		}
		*field = string(raw)
	}
	return nil
}

func encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func infrastructure(msg string) *domain.ExecutionOutcome {
	return &domain.ExecutionOutcome{
		Classification: domain.ClassInfrastructureError,
		Message:        msg,
	}
}
