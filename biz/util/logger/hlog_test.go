package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/util/id_gen"
	"venue_tracker/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/stretchr/testify/assert"
)

func TestHlog(t *testing.T) {
	dir := t.TempDir()
	Init(config.LoggerConf{Dir: dir, FileName: "test.log", Level: "debug"})
	defer hlog.SetLogger(hlog.DefaultLogger())

	logID := id_gen.NewID()
	ctx := trace_info.WithLogID(context.Background(), logID)

	hlog.CtxInfof(ctx, "test info data: %d, %s", 123, "ttt")
	hlog.CtxErrorf(ctx, "test error data: %d, %s", 123, "ttt")
	hlog.Infof("test info data: %d, %s", 123, "ttt")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	assert.NoError(t, err)
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	assert.Len(t, lines, 3)

	var first map[string]any
	assert.NoError(t, json.Unmarshal(lines[0], &first))
	assert.Equal(t, logID, first[fieldLogID])
	assert.Equal(t, "test info data: 123, ttt", first["msg"])

	var last map[string]any
	assert.NoError(t, json.Unmarshal(lines[2], &last))
	assert.NotContains(t, last, fieldLogID)
}

func TestNewLevel(t *testing.T) {
	assert.Equal(t, hlog.LevelWarn, newLevel(config.LoggerConf{Level: "warn"}))
	assert.Equal(t, hlog.LevelInfo, newLevel(config.LoggerConf{}))
}
