package accesslog

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestNew_Skip(t *testing.T) {
	for _, path := range []string{"/health", "/api/auth/login"} {
		called := false
		c := app.NewContext(0)
		c.Request.SetRequestURI(path)
		c.SetHandlers(app.HandlersChain{
			New("/health", "/metrics"),
			func(ctx context.Context, c *app.RequestContext) { called = true },
		})
		c.Next(context.Background())
		assert.True(t, called, path)
	}
}
