package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"deskentry/internal/history"
	"deskentry/internal/paths"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear the remembered interpreter commands",
	}

	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered interpreters, most recent first",
		RunE:  runHistoryList,
	}
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forget all remembered interpreters",
		RunE:  runHistoryClear,
	}
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	entries, err := history.DefaultStore(dirs).Load()
	if err != nil {
		return err
	}

	if outputJSON {
		payload := struct {
			Interpreters []string `json:"interpreters"`
		}{entries}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No interpreters remembered yet.")
		return nil
	}
	for i, entry := range entries {
		fmt.Fprintf(out, "%2d  %s\n", i+1, entry)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	if err := history.DefaultStore(dirs).Save(nil); err != nil {
		return err
	}

	if outputJSON {
		fmt.Fprintln(cmd.OutOrStdout(), `{"interpreters": []}`)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Interpreter history cleared.")
	return nil
}
