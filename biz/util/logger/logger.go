package logger

import (
	"venue_tracker/be/biz/config"
	"venue_tracker/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	hertzlogrus "github.com/hertz-contrib/logger/logrus"
	"github.com/sirupsen/logrus"
)

const fieldLogID = "log_id"

// Init routes hlog through logrus. Call once at startup before serving.
func Init(conf config.LoggerConf) {
	hlog.SetLogger(New(conf))
}

func New(conf config.LoggerConf) *hertzlogrus.Logger {
	l := hertzlogrus.NewLogger(
		hertzlogrus.WithLogger(logrus.New()),
		hertzlogrus.WithHook(logIDHook{}),
	)
	l.Logger().SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetOutput(newOutput(conf))
	l.SetLevel(newLevel(conf))
	return l
}

// logIDHook stamps the request log id carried in ctx onto every entry.
type logIDHook struct{}

func (logIDHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (logIDHook) Fire(entry *logrus.Entry) error {
	if entry.Context == nil {
		return nil
	}
	if logID := trace_info.GetLogID(entry.Context); logID != "" {
		entry.Data[fieldLogID] = logID
	}
	return nil
}
