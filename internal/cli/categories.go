package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"deskentry/internal/launcher"
	"deskentry/internal/paths"
)

func newCategoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the menu categories accepted by install and preview",
		RunE:  runCategories,
	}
}

func runCategories(cmd *cobra.Command, _ []string) error {
	dirs, err := paths.Resolve()
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig(dirs)
	if err != nil {
		return err
	}

	categories := launcher.CategoriesWith(cfg.ExtraCategories)

	if outputJSON {
		payload := struct {
			Categories []string `json:"categories"`
		}{categories}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	for _, category := range categories {
		fmt.Fprintln(cmd.OutOrStdout(), category)
	}
	return nil
}
