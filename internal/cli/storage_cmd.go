package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStorageCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect the local key-value store",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "List stored keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := app.Store.Keys(cmd.Context())
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No stored keys."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(keys, "\n"))
			return nil
		},
	})
	return cmd
}
