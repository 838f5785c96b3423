package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newDestroyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "destroy <Kind> <id>",
		Short:     "Delete an entity and everything that depends on it",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			return a.session(func(st storage.Store) error {
				if err := a.services.Delete(cmd.Context(), st, kind, args[1]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.ErrOrStderr(), "destroyed %s\n", domain.Key(kind, args[1]))
				return err
			})
		},
	}
}
