package logger

import (
	"io"
	"os"
	"path/filepath"

	"venue_tracker/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var levels = map[string]hlog.Level{
	"trace":  hlog.LevelTrace,
	"debug":  hlog.LevelDebug,
	"info":   hlog.LevelInfo,
	"notice": hlog.LevelNotice,
	"warn":   hlog.LevelWarn,
	"error":  hlog.LevelError,
	"fatal":  hlog.LevelFatal,
}

// newOutput writes to a size rotated file under conf.Dir, and to stdout as well
// when conf.Stdout is set.
func newOutput(conf config.LoggerConf) io.Writer {
	file := &lumberjack.Logger{
		Filename:   filepath.Join(orDefault(conf.Dir, "./log"), orDefault(conf.FileName, "venue_tracker.log")),
		MaxSize:    positiveOr(conf.MaxSize, 512),
		MaxAge:     positiveOr(conf.MaxAge, 14),
		MaxBackups: positiveOr(conf.MaxBackups, 10),
		LocalTime:  true,
	}
	if !conf.Stdout {
		return file
	}
	return io.MultiWriter(file, os.Stdout)
}

func newLevel(conf config.LoggerConf) hlog.Level {
	if level, ok := levels[conf.Level]; ok {
		return level
	}
	return hlog.LevelInfo
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func positiveOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
