package mcp

import (
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the configuration for the interview MCP server.
type Config struct {
	Port                int    `env:"INTERVIEW_PORT" env-default:"8080" env-description:"HTTP server port"`
	TranscriptPath      string `env:"INTERVIEW_TRANSCRIPT_PATH" env-default:"./transcripts" env-description:"Transcript export directory"`
	TranscriptTTL       string `env:"INTERVIEW_TRANSCRIPT_TTL" env-default:"24h" env-description:"Default TTL for transcript cleanup (e.g., 24h, 1h30m)"`
	RoleQuestionCount   int    `env:"INTERVIEW_ROLE_QUESTIONS" env-default:"4" env-description:"Role-technical questions per interview"`
	MaxProjectQuestions int    `env:"INTERVIEW_MAX_PROJECT_QUESTIONS" env-default:"3" env-description:"Project questions cap"`
	MaxSkillQuestions   int    `env:"INTERVIEW_MAX_SKILL_QUESTIONS" env-default:"3" env-description:"Skill questions cap"`
	BankPath            string `env:"INTERVIEW_BANK_PATH" env-default:"" env-description:"Optional JSON file overriding role question pools"`
	SampleSeed          int64  `env:"INTERVIEW_SAMPLE_SEED" env-default:"0" env-description:"Fixed seed for role-question sampling (0 = time-based)"`
	LogDebug            bool   `env:"DEBUG" env-default:"false" env-description:"Enable debug logging"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// WithPort sets the server port.
func (c Config) WithPort(port int) Config {
	c.Port = port
	return c
}

// WithTranscriptPath sets the transcript export directory.
func (c Config) WithTranscriptPath(path string) Config {
	c.TranscriptPath = path
	return c
}

// WithSampleSeed fixes the role-question sampling seed.
func (c Config) WithSampleSeed(seed int64) Config {
	c.SampleSeed = seed
	return c
}
