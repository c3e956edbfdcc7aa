package generator

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// 定义全局的 Logger 实例，方便在其他文件中引用
var Log = logrus.New()

// LogConfig selects the level and an optional rotated log file.
type LogConfig struct {
	Level string
	File  string
}

func init() {
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000", // 统一时间格式
		DisableQuote:    true,                      // <== 不对字符串加引号
	})
	Log.SetOutput(os.Stderr)
	Log.SetLevel(logrus.InfoLevel)
}

// SetupLog applies c to Log. Errors always reach stderr; with a file
// configured they are also written through lumberjack.
func SetupLog(c LogConfig) error {
	level := logrus.InfoLevel
	if c.Level != "" {
		l, err := logrus.ParseLevel(c.Level)
		if err != nil {
			return err
		}
		level = l
	}
	Log.SetLevel(level)

	if c.File == "" {
		Log.SetOutput(os.Stderr)
		return nil
	}
	// 确保日志目录存在
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return err
	}
	lumberjackLogger := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	Log.SetOutput(io.MultiWriter(os.Stderr, lumberjackLogger))
	return nil
}
