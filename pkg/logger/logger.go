// Package logger 提供基於 zerolog 的全域結構化日誌。
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init 依照等級和格式設定全域 logger，並回傳設定好的 logger
func Init(level, format string) zerolog.Logger {
	return New(os.Stderr, level, format)
}

// New 建立寫到 w 的 logger，同時替換 zerolog 的全域 logger
func New(w io.Writer, level, format string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(ParseLevel(level))

	if strings.EqualFold(format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	l := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = l
	return l
}

// ParseLevel 解析日誌等級，無法識別時使用 info
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
