package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/timeline/pkg/facet"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(timeline completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(timeline completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func registerFacetCompletions(cmd *cobra.Command) {
	for name, field := range map[string]facet.Field{"place": facet.Place, "event": facet.Event, "person": facet.Person} {
		field := field
		_ = cmd.RegisterFlagCompletionFunc(name, func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return facetCompletions(field, toComplete), cobra.ShellCompDirectiveNoFileComp
		})
	}
}

func registerIDCompletion(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("id", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return idCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

func facetCompletions(field facet.Field, toComplete string) []string {
	svc, _, err := loadService(context.Background())
	if err != nil {
		return nil
	}
	set := svc.Facets()
	values := set.Places
	switch field {
	case facet.Event:
		values = set.Events
	case facet.Person:
		values = set.People
	}
	return withPrefix(values, toComplete)
}

func idCompletions(toComplete string) []string {
	svc, _, err := loadService(context.Background())
	if err != nil {
		return nil
	}
	out := make([]string, 0, svc.Store.Len())
	for _, e := range svc.Store.All() {
		if strings.HasPrefix(e.ID, toComplete) {
			out = append(out, e.ID+"\t"+e.Title)
		}
	}
	return out
}

func withPrefix(values []string, prefix string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.HasPrefix(v, prefix) {
			out = append(out, v)
		}
	}
	return out
}
