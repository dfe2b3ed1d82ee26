package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"interview-practice/internal/domain"
	"interview-practice/internal/questions"
)

var (
	questionsRole   string
	questionsDomain string
	questionsMode   string
)

func init() {
	rootCmd.AddCommand(rolesCmd)
	rootCmd.AddCommand(questionsCmd)

	questionsCmd.Flags().StringVar(&questionsRole, "role", "", "role id")
	questionsCmd.Flags().StringVar(&questionsDomain, "domain", "", "domain within the role")
	questionsCmd.Flags().StringVar(&questionsMode, "mode", string(domain.ModeTechnical), "technical or behavioral")
	_ = questionsCmd.MarkFlagRequired("role")
}

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List available roles, domains and interview modes",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-18s %-20s %s\n", "ID", "ROLE", "DOMAINS")
		fmt.Println("─────────────────────────────────────────────────────────────────")
		for _, r := range questions.Roles() {
			fmt.Printf("%-18s %-20s %s\n", r.ID, r.Title, strings.Join(r.Domains, ", "))
		}

		fmt.Println("\nModes:")
		for _, m := range questions.Modes() {
			fmt.Printf("• %-10s %s: %s\n", m.Mode, m.Title, m.Description)
		}
		return nil
	},
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Show the questions a session would ask for a role, domain and mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, err := domain.ParseMode(questionsMode)
		if err != nil {
			return err
		}

		sel := deps.bank.Lookup(questionsRole, questionsDomain, mode)
		fmt.Printf("📋 %s · %s · %s (source: %s)\n\n",
			questions.RoleTitle(questionsRole), questionsDomain, mode.Title(), sel.Source)
		for i, q := range sel.Questions {
			fmt.Printf("%d. %s\n", i+1, q)
		}
		return nil
	},
}
