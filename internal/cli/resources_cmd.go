package cli

import (
	"fmt"

	"github.com/alexanderramin/ozpath/internal/catalog"
	"github.com/alexanderramin/ozpath/internal/cli/formatter"
	"github.com/alexanderramin/ozpath/internal/domain"
	"github.com/spf13/cobra"
)

var sectionTitles = []struct {
	section domain.ResourceSection
	title   string
}{
	{domain.SectionOfficial, "Official Government Resources"},
	{domain.SectionLiving, "Living in Australia"},
	{domain.SectionCommunity, "Community & Forums"},
	{domain.SectionFacebook, "Facebook Groups"},
	{domain.SectionPetRelocation, "Pet Relocation"},
	{domain.SectionVideos, "YouTube Channels"},
}

var providerTitles = map[string]string{
	catalog.ProviderSkills:    "Skills Assessment Organizations",
	catalog.ProviderMigration: "Migration Agents",
	catalog.ProviderOfficial:  "Official Bodies",
	catalog.ProviderShipping:  "Shipping & Removals",
	catalog.ProviderFinance:   "Money Transfer",
	catalog.ProviderPets:      "Pet Transport",
}

func newResourcesCmd() *cobra.Command {
	var (
		section     string
		providers   string
		occupations bool
		list        string
	)

	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Useful links and service providers for moving to Australia",
		Example: `  ozpath resources
  ozpath resources --section pets
  ozpath resources --providers migration
  ozpath resources --occupations --list MLTSSL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if occupations || cmd.Flags().Changed("list") {
				var l domain.OccupationList
				if list != "" {
					var ok bool
					if l, ok = catalog.ParseOccupationList(list); !ok {
						return fmt.Errorf("unknown occupation list %q", list)
					}
				}
				fmt.Fprint(out, formatter.FormatOccupations("Key Occupations", catalog.Occupations(l)))
				return nil
			}

			if cmd.Flags().Changed("providers") {
				title, ok := providerTitles[providers]
				if !ok {
					return fmt.Errorf("unknown provider category %q", providers)
				}
				fmt.Fprint(out, formatter.FormatProviders(title, catalog.ServiceProviders(providers)))
				return nil
			}

			var groups []formatter.ResourceGroup
			for _, st := range sectionTitles {
				if section != "" && st.section != domain.ResourceSection(section) {
					continue
				}
				groups = append(groups, formatter.ResourceGroup{Title: st.title, Resources: catalog.Resources(st.section)})
			}
			if len(groups) == 0 {
				return fmt.Errorf("unknown resource section %q", section)
			}
			fmt.Fprint(out, formatter.FormatResources(groups))
			return nil
		},
	}

	cmd.Flags().StringVar(&section, "section", "", "Only show one section: official, living, community, facebook, pets, videos")
	cmd.Flags().StringVar(&providers, "providers", "", "List service providers: skills, migration, official, shipping, finance, pets")
	cmd.Flags().BoolVar(&occupations, "occupations", false, "List key skilled occupations and their assessing authorities")
	cmd.Flags().StringVar(&list, "list", "", "With --occupations, only one list: MLTSSL, STSOL, ROL")

	return cmd
}
