package commands

import (
	"github.com/spf13/cobra"

	"github.com/vibe-gaming/hbnb/internal/domain"
	"github.com/vibe-gaming/hbnb/internal/storage"
)

func newUpdateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "update <Kind> <id> <field> <value>",
		Short: "Set one field of an entity and print it",
		Long: `Set one field of an entity. A double-quoted value is a string, with
underscores read as spaces; numbers keep their type; anything else is
taken as a plain string.`,
		Example:   `  hbnb update Place 0001 price_by_night 120`,
		Args:      cobra.ExactArgs(4),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			value, ok := parseValue(args[3])
			if !ok {
				value = args[3]
			}
			patch := map[string]any{args[2]: value}

			return a.session(func(st storage.Store) error {
				e, err := a.services.Update(cmd.Context(), st, kind, args[1], patch)
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
