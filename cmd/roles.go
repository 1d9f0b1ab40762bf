package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mockmate/interview-engine/internal/interview"
)

// rolesCmd lists the roles with technical question pools
var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles with technical question pools",
	Run: func(cmd *cobra.Command, args []string) {
		bank := interview.NewQuestionBank()
		for _, role := range bank.Roles() {
			fmt.Printf("%s (%s): %d questions\n", bank.DisplayName(role), role, bank.PoolSize(role))
		}
	},
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}
