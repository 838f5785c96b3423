package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newCountCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "count [Kind]",
		Short:     "Print the number of entities, or of entities of one kind",
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
				n, err := st.Count(cmd.Context(), kind)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), n)
				return err
			})
		},
	}
}
