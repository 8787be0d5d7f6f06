package trace

import (
	"context"

	"venue_tracker/be/biz/util/id_gen"
	"venue_tracker/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const (
	HeaderLogID = "X-Log-ID"

	maxClientLogID = 64
)

// New reuses a caller supplied X-Log-ID or mints one, and echoes it back.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.Request.Header.Peek(HeaderLogID))
		if logID == "" || len(logID) > maxClientLogID {
			logID = id_gen.NewID()
		}
		c.Header(HeaderLogID, logID)
		c.Next(trace_info.WithLogID(ctx, logID))
	}
}
