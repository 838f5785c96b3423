package commands

import (
	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newShowCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "show <Kind> <id>",
		Short:     "Print one entity",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			return a.session(func(st storage.Store) error {
				e, found, err := st.Get(cmd.Context(), kind, args[1])
				if err != nil {
					return err
				}
				if !found {
					return domain.ErrNotFound
				}
				doc, err := document(e)
				if err != nil {
					return err
				}
				return a.print(cmd.OutOrStdout(), doc)
			})
		},
	}
}
