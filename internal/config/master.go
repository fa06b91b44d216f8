package config

import "os"

type AppConfig struct {
	DebugMode      bool
	HTTPPort       string
	GradingSvcCfg  *GradingSvcCfg
	Judge0Config   *Judge0Config
	RedisConfig    *RedisConfig
	PostgresConfig *PostgresConfig
	JwtConfig      *JwtConfig
	GGAuthConfig   *GGAuthConfig

	ContributionsConfig *ContributionsConfig
}

func NewSystemConfig() *AppConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		HTTPPort:       port,
		GradingSvcCfg:  NewGradingSvcCfg(),
		Judge0Config:   NewJudge0Config(),
		RedisConfig:    NewRedisConfig(),
		PostgresConfig: NewPostgresConfig(),
		JwtConfig:      NewJwtConfig(),
		GGAuthConfig:   NewGGAuthConfig(),

		ContributionsConfig: NewContributionsConfig(),
	}
}
