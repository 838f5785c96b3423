package storage

import (
	"fmt"

	"github.com/vibe-gaming/hbnb/internal/domain"
)

// Check validates c against the committed encoding of its entity. It is
// shared by the engines that keep encoded entities (file, redis); the SQL
// engine expresses the same rules in its WHERE clauses.
func Check(c Change, committed []byte, exists bool) error {
	key := c.Key()
	switch c.Op {
	case OpInsert:
		if exists {
			return fmt.Errorf("insert %s: %w", key, domain.ErrDuplicateEntry)
		}
		return nil
	case OpUpdate, OpDelete:
		if !exists {
			if c.Version.IsZero() && c.Op == OpDelete {
				return nil
			}
			return fmt.Errorf("%s %s: %w", c.Op, key, domain.ErrConflict)
		}
		if c.Version.IsZero() {
			return nil
		}
		current, err := domain.Decode(committed)
		if err != nil {
			return fmt.Errorf("%s %s: %w", c.Op, key, err)
		}
		if !current.Base().UpdatedAt.Equal(c.Version) {
			return fmt.Errorf("%s %s: %w", c.Op, key, domain.ErrConflict)
		}
		return nil
	}
	return fmt.Errorf("unsupported storage op %d", c.Op)
}
