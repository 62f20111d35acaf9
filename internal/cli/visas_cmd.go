package cli

import (
	"fmt"

	"github.com/alexanderramin/ozpath/internal/catalog"
	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/spf13/cobra"
)

func newVisasCmd() *cobra.Command {
	var stream string

	cmd := &cobra.Command{
		Use:   "visas [subclass]",
		Short: "Browse Australian visa options",
		Example: `  ozpath visas
  ozpath visas --stream skilled
  ozpath visas 189`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				v, ok := catalog.VisaBySubclass(args[0])
				if !ok {
					return fmt.Errorf("no visa with subclass %q", args[0])
				}
				fmt.Fprintln(out, formatter.FormatVisa(v))
				return nil
			}

			var groups []formatter.VisaGroup
			for _, s := range catalog.Streams() {
				if stream != "" && s.ID != domain.VisaStream(stream) {
					continue
				}
				visas, err := catalog.VisasByStream(s.ID)
				if err != nil {
					return err
				}
				groups = append(groups, formatter.VisaGroup{Title: s.Title, Intro: s.Intro, Visas: visas})
			}
			if len(groups) == 0 {
				return fmt.Errorf("unknown visa stream %q", stream)
			}
			fmt.Fprint(out, formatter.FormatVisaDirectory(groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&stream, "stream", "", "Only show one stream: skilled, work, family, student, working-holiday")

	return cmd
}
