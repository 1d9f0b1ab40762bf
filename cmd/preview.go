package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/cobra"

	"github.com/mockmate/interview-engine/internal/interview"
	"github.com/mockmate/interview-engine/internal/resume"
)

var (
	previewRole string
	previewSeed int64
)

// previewCmd plans questions for a resume without starting a session.
var previewCmd = &cobra.Command{
	Use:   "preview <resume.json>",
	Short: "Print the question plan for a parsed resume",
	Long: `Read a parsed resume from a JSON file and print the interview
question plan that a new session would follow. No session is created.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		var cmdConf cmdConfig
		if err := cleanenv.ReadEnv(&cmdConf); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load command config: %v\n", err)
			os.Exit(1)
		}
		logger := createLogger(cmdConf)

		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.ErrorContext(ctx, "failed to read resume file",
				"error", err,
				"path", args[0],
			)
			os.Exit(1)
		}

		var parsed resume.ParsedResume
		if err := json.Unmarshal(data, &parsed); err != nil {
			logger.ErrorContext(ctx, "failed to parse resume JSON",
				"error", err,
				"path", args[0],
			)
			os.Exit(1)
		}

		seed := previewSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		planner := interview.NewPlanner(interview.PlannerConfig{
			Seed: seed,
			Bank: interview.NewQuestionBank(),
		})

		plan, err := planner.Plan(resume.Normalize(parsed), interview.RoleID(previewRole))
		if err != nil {
			logger.ErrorContext(ctx, "question planning failed",
				"error", err,
				"role", previewRole,
			)
			os.Exit(1)
		}

		fmt.Printf("Planned questions: %d\n\n", len(plan))
		for _, q := range plan {
			fmt.Printf("%d. [%s] %s\n", q.Rank, q.Category, q.Prompt)
		}
	},
}

func init() {
	previewCmd.Flags().StringVar(&previewRole, "role", "", "Target role for technical questions (e.g. python_developer)")
	previewCmd.Flags().Int64Var(&previewSeed, "seed", 0, "Fixed seed for role-question sampling (0 = random)")
	rootCmd.AddCommand(previewCmd)
}
