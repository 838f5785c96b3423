package commands

import (
	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newCreateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create <Kind> [key=value...]",
		Short: "Create an entity and print it",
		Example: `  hbnb create State name="California"
  hbnb create Place city_id="0001" user_id="0002" name="My_little_house" number_rooms=4 latitude=37.77`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			params := parseParams(args[1:])

			return a.session(func(st storage.Store) error {
				e, err := a.services.Create(cmd.Context(), st, kind, params)
				if err != nil {
					return err
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
