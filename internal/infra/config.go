package infra

import (
	"os"
	"strconv"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv string
	Port   string

	// Replicate-style generation backend. An empty token leaves the backend
	// unconfigured and every job falls back to placeholder previews.
	ReplicateAPIToken string
	ReplicateBaseURL  string
	ReplicateVersion  string

	InferenceSteps int
	GuidanceScale  float64
	PromptStrength float64
	Scheduler      string

	PollInterval    time.Duration
	MaxPollAttempts int

	MaxConcurrentJobs int

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		Port:              getEnv("PORT", "8080"),
		ReplicateAPIToken: os.Getenv("REPLICATE_API_TOKEN"),
		ReplicateBaseURL:  getEnv("REPLICATE_BASE_URL", "https://api.replicate.com/v1"),
		ReplicateVersion:  getEnv("REPLICATE_VERSION", "stability-ai/stable-diffusion-img2img"),
		InferenceSteps:    getEnvInt("GEN_INFERENCE_STEPS", 50),
		GuidanceScale:     getEnvFloat("GEN_GUIDANCE_SCALE", 7.5),
		PromptStrength:    getEnvFloat("GEN_PROMPT_STRENGTH", 0.8),
		Scheduler:         getEnv("GEN_SCHEDULER", "K_EULER"),
		PollInterval:      time.Second * time.Duration(getEnvInt("POLL_INTERVAL_SECONDS", 5)),
		MaxPollAttempts:   getEnvInt("POLL_MAX_ATTEMPTS", 60),
		MaxConcurrentJobs: getEnvInt("MAX_CONCURRENT_JOBS", 1),
		HTTPReadTimeout:   time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:  time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 600)),
		HTTPIdleTimeout:   time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
