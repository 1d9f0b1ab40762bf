package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/zerolog"
	slogzerolog "github.com/samber/slog-zerolog"
	"github.com/spf13/cobra"

	"github.com/mockmate/interview-engine/internal/mcp"
)

// cmdConfig holds all configuration for the command line
type cmdConfig struct {
	Format string `env:"LOG_FORMAT" env-default:"text" env-description:"Log output format (text or json)"`
	Level  string `env:"LOG_LEVEL" env-default:"info" env-description:"Log level (debug, info, warn, error)"`
}

// createLogger creates a slog logger from the configuration
func createLogger(conf cmdConfig) *slog.Logger {
	// Parse log level
	var level slog.Level
	switch conf.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create zerolog logger
	var zerologLogger zerolog.Logger
	if conf.Format == "json" {
		zerologLogger = zerolog.New(os.Stderr)
	} else {
		zerologLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger()
	}

	// Create slog handler
	loggerConfig := slogzerolog.Option{
		Level:  level,
		Logger: &zerologLogger,
	}.NewZerologHandler()

	logger := slog.New(loggerConfig)

	// Set as default logger
	log.SetFlags(0)
	slog.SetDefault(logger)

	return logger
}

// mcpServerCmd represents the mcp-server command
var mcpServerCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "Start the interview MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Load command configuration from environment variables
		var cmdConf cmdConfig
		if err := cleanenv.ReadEnv(&cmdConf); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load command config: %v\n", err)
			os.Exit(1)
		}

		// Create logger
		logger := createLogger(cmdConf)

		// Load MCP configuration from environment variables
		cfg, err := mcp.LoadConfig()
		if err != nil {
			logger.ErrorContext(ctx, "failed to load MCP config",
				"error", err,
			)
			os.Exit(1)
		}

		logger.InfoContext(ctx, "mcp server starting",
			"port", cfg.Port,
			"transcript_path", cfg.TranscriptPath,
			"transcript_ttl", cfg.TranscriptTTL,
			"endpoints", []string{"/mcp", "/health/live", "/health/ready"},
		)

		// Create the MCP server
		srv, err := mcp.NewServer(cfg, logger)
		if err != nil {
			logger.ErrorContext(ctx, "failed to create MCP server",
				"error", err,
			)
			os.Exit(1)
		}

		// Start the server
		if err := srv.ListenAndServe(); err != nil {
			logger.ErrorContext(ctx, "failed to start MCP server",
				"error", err,
			)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpServerCmd)
}
