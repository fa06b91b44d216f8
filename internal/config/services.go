package config

import (
	"os"
	"strconv"
	"time"
)

type GradingSvcCfg struct {
	// MaxParallel bounds concurrent sandbox calls per submission. 1 keeps them sequential.
	MaxParallel int
	// Deadline caps the sandbox work for one submission. Cases still running fail.
	Deadline time.Duration
}

func NewGradingSvcCfg() *GradingSvcCfg {
	return &GradingSvcCfg{
		MaxParallel: getEnvInt("GRADING_MAX_PARALLEL", 1),
		Deadline:    time.Duration(getEnvInt("GRADING_DEADLINE_SEC", 90)) * time.Second,
	}
}

// ResponseTimeout is how long the http server may spend writing a graded
// submission: the grading deadline plus room to persist the attempt.
func (c *GradingSvcCfg) ResponseTimeout() time.Duration {
	return c.Deadline + 30*time.Second
}

type Judge0Config struct {
	Url     string
	ApiKey  string
	ApiHost string
	Timeout time.Duration
}

func NewJudge0Config() *Judge0Config {
	url := os.Getenv("JUDGE0_API_URL")
	if url == "" {
		url = "https://judge0-ce.p.rapidapi.com"
	}
	host := os.Getenv("JUDGE0_API_HOST")
	if host == "" {
		host = "judge0-ce.p.rapidapi.com"
	}
	return &Judge0Config{
		Url:     url,
		ApiKey:  os.Getenv("JUDGE0_API_KEY"),
		ApiHost: host,
		Timeout: time.Duration(getEnvInt("JUDGE0_TIMEOUT_SEC", 30)) * time.Second,
	}
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
