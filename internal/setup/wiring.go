package setup

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/povarna/generative-ai-agents/diagnostics/internal/cache"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/config"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/diagnostics"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/executor"
	"github.com/povarna/generative-ai-agents/diagnostics/internal/redis"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel      string
	RedisAddr     string
	RedisPassword string
	RedisTTL      time.Duration
	APIPort       string
}

type Dependencies struct {
	Executor   *executor.Executor
	Calculator *diagnostics.Calculator
	Settings   *config.Config
	Logger     *zerolog.Logger

	redisClient *goredis.Client
}

func LoadConfig() *Config {
	return &Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisTTL:      getEnvDuration("REDIS_TTL", 0),
		APIPort:       getEnv("DIAGNOSTICS_API_PORT", "18082"),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	// Load diagnostics configuration from YAML
	settings, err := config.LoadDiagnosticsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load diagnostics config: %w", err)
	}

	calc := diagnostics.NewCalculator(settings.Report.MaxWidth, logger)

	deps := &Dependencies{
		Calculator: calc,
		Settings:   settings,
		Logger:     logger,
	}

	resultCache, err := deps.createResultCache(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create result cache: %w", err)
	}

	deps.Executor = executor.NewExecutor(calc, calc, calc, resultCache, logger)
	return deps, nil
}

// Close releases the Redis connection, if one was opened.
func (d *Dependencies) Close() error {
	if d.redisClient == nil {
		return nil
	}
	return d.redisClient.Close()
}

func (d *Dependencies) createResultCache(ctx context.Context, cfg *Config) (executor.ResultCache, error) {
	if cfg.RedisAddr == "" || !d.Settings.Cache.Enabled {
		d.Logger.Info().Msg("result cache disabled")
		return cache.Nop{}, nil
	}

	client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5, d.Logger)
	if err != nil {
		return nil, err
	}
	d.redisClient = client

	ttl := d.Settings.Cache.TTL
	if cfg.RedisTTL > 0 {
		ttl = cfg.RedisTTL
	}

	d.Logger.Info().Str("prefix", d.Settings.Cache.KeyPrefix).Dur("ttl", ttl).Msg("result cache enabled")
	return cache.NewRedisResultCache(client, d.Settings.Cache.KeyPrefix, ttl), nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		value = defaultValue
	}

	return value
}
