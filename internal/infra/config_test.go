package infra

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("REPLICATE_API_TOKEN", "")
	t.Setenv("GEN_INFERENCE_STEPS", "")
	t.Setenv("GEN_GUIDANCE_SCALE", "")
	t.Setenv("GEN_PROMPT_STRENGTH", "")
	t.Setenv("POLL_INTERVAL_SECONDS", "")
	t.Setenv("POLL_MAX_ATTEMPTS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.InferenceSteps != 50 {
		t.Fatalf("InferenceSteps mismatch: got %d want 50", cfg.InferenceSteps)
	}
	if cfg.GuidanceScale != 7.5 {
		t.Fatalf("GuidanceScale mismatch: got %v want 7.5", cfg.GuidanceScale)
	}
	if cfg.PromptStrength != 0.8 {
		t.Fatalf("PromptStrength mismatch: got %v want 0.8", cfg.PromptStrength)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval mismatch: got %v want 5s", cfg.PollInterval)
	}
	if cfg.MaxPollAttempts != 60 {
		t.Fatalf("MaxPollAttempts mismatch: got %d want 60", cfg.MaxPollAttempts)
	}
	if cfg.ReplicateBaseURL != "https://api.replicate.com/v1" {
		t.Fatalf("ReplicateBaseURL mismatch: got %q", cfg.ReplicateBaseURL)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GEN_INFERENCE_STEPS", "25")
	t.Setenv("GEN_GUIDANCE_SCALE", "12")
	t.Setenv("POLL_MAX_ATTEMPTS", "3")
	t.Setenv("MAX_CONCURRENT_JOBS", "4")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.InferenceSteps != 25 {
		t.Fatalf("InferenceSteps mismatch: got %d want 25", cfg.InferenceSteps)
	}
	if cfg.GuidanceScale != 12 {
		t.Fatalf("GuidanceScale mismatch: got %v want 12", cfg.GuidanceScale)
	}
	if cfg.MaxPollAttempts != 3 {
		t.Fatalf("MaxPollAttempts mismatch: got %d want 3", cfg.MaxPollAttempts)
	}
	if cfg.MaxConcurrentJobs != 4 {
		t.Fatalf("MaxConcurrentJobs mismatch: got %d want 4", cfg.MaxConcurrentJobs)
	}
}

func TestLoadConfigIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("GEN_INFERENCE_STEPS", "lots")
	t.Setenv("GEN_GUIDANCE_SCALE", "very")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.InferenceSteps != 50 {
		t.Fatalf("InferenceSteps mismatch: got %d want default 50", cfg.InferenceSteps)
	}
	if cfg.GuidanceScale != 7.5 {
		t.Fatalf("GuidanceScale mismatch: got %v want default 7.5", cfg.GuidanceScale)
	}
}
