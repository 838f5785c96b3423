package commands

import (
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newAllCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "all [Kind]",
		Short:     "Print every entity, or every entity of one kind",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind domain.Kind
			if len(args) == 1 {
				k, err := domain.ParseKind(args[0])
				if err != nil {
					return err
				}
				kind = k
			}

			return a.session(func(st storage.Store) error {
				all, err := st.All(cmd.Context(), kind)
				if err != nil {
					return err
				}

				list := slices.Collect(maps.Values(all))
				domain.SortByCreation(list)

				docs, err := documents(list)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), docs)
			})
		},
	}
}
