package cli

import (
	"fmt"

	"github.com/mkarpenko/tripweaver/internal/planning"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change planner settings",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List planner settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := app.Settings.All(cmd.Context())
			if err != nil {
				return err
			}
			for _, key := range planning.SettingKeys {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", key, values[key])
			}
			return nil
		},
	}

	set := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change a planner setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Set(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
			return nil
		},
	}

	cmd.AddCommand(list, set)
	return cmd
}
