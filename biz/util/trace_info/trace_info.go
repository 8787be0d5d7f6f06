package trace_info

import (
	"context"
)

type logIDKey struct{}

// WithLogID stores the request log id; hlog entries written with ctx carry it.
func WithLogID(ctx context.Context, logID string) context.Context {
	return context.WithValue(ctx, logIDKey{}, logID)
}

func GetLogID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	logID, _ := ctx.Value(logIDKey{}).(string)
	return logID
}
