package v1

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vibe-gaming/hbnb/internal/storage"
	"github.com/vibe-gaming/hbnb/pkg/logger"
)

const storeCtx = "store"

// storeSessionMiddleware gives every request its own store session and
// closes it once the handlers are done.
func (h *Handler) storeSessionMiddleware(c *gin.Context) {
	st := h.provider.Session()
	c.Set(storeCtx, st)

	defer func() {
		if err := st.Close(); err != nil {
			logger.Warn("close store session failed", zap.Error(err))
		}
	}()

	c.Next()
}

func getStore(c *gin.Context) storage.Store {
	return c.MustGet(storeCtx).(storage.Store)
}
