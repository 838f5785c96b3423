package commands

import (
	"github.com/vibe-gaming/hbnb/internal/domain"
)

// kindNames backs shell completion of the kind argument.
func kindNames() []string {
	kinds := domain.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
