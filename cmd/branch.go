package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

var (
	branchJSON        bool
	branchToon        bool
	branchDescription string
)

var branchCmd = &cobra.Command{
	Use:   "branch",
	Short: "List branches",
	Long: `Branches are named checkpoints over one shared commit timeline: creating
a branch records the current log tail, and switching restores that recorded
state. All commits append to the same log regardless of the active branch.

Examples:
  confgit branch
  confgit branch create staging -d "pre-production trial"
  confgit branch switch staging
  confgit branch delete staging`,
	RunE: runBranchList,
}

var branchCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a branch at the current log tail",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranchCreate,
}

var branchDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a branch (main and the active branch are protected)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranchDelete,
}

var branchSwitchCmd = &cobra.Command{
	Use:   "switch <name>",
	Short: "Switch to a branch and restore its recorded state",
	Args:  cobra.ExactArgs(1),
	RunE:  runBranchSwitch,
}

func init() {
	rootCmd.AddCommand(branchCmd)
	branchCmd.AddCommand(branchCreateCmd, branchDeleteCmd, branchSwitchCmd)

	branchCmd.Flags().BoolVar(&branchJSON, "json", false, "Output as JSON")
	branchCmd.Flags().BoolVar(&branchToon, "toon", false, "Output in LLM-friendly toon format")
	branchCreateCmd.Flags().StringVarP(&branchDescription, "description", "d", "", "Branch description")
}

func runBranchList(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	branches, current, err := repo.Branches()
	if err != nil {
		return fmt.Errorf("failed to list branches: %w", err)
	}

	if branchJSON {
		output, err := json.MarshalIndent(branches, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if branchToon {
		output, err := gotoon.Encode(branches)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	for _, b := range branches {
		marker := " "
		if b.Name == current {
			marker = "*"
		}
		head := b.CurrentCommit
		if head == "" {
			head = "(no commits)"
		} else if len(head) > 7 {
			head = head[:7]
		}
		fmt.Printf("%s %-20s %s", marker, b.Name, head)
		if b.Description != "" {
			fmt.Printf("  %s", b.Description)
		}
		fmt.Println()
	}

	return nil
}

func runBranchCreate(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	branch, err := repo.CreateBranch(args[0], branchDescription)
	if err != nil {
		return fmt.Errorf("failed to create branch: %w", err)
	}

	fmt.Printf("✓ Branch '%s' created\n", branch.Name)
	return nil
}

func runBranchDelete(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	if err := repo.DeleteBranch(args[0]); err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}

	fmt.Printf("✓ Branch '%s' deleted\n", args[0])
	return nil
}

func runBranchSwitch(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	if err := repo.SwitchBranch(args[0]); err != nil {
		return fmt.Errorf("failed to switch branch: %w", err)
	}

	fmt.Printf("✓ Switched to branch '%s'\n", args[0])
	return nil
}
