package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var once sync.Once
var log zerolog.Logger

func configure() {
	timeFormat := "15:04:05.000"
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: timeFormat,
	}
	log = zerolog.New(output).With().Timestamp().Logger()
}

// Get returns the shared console logger.
func Get() *zerolog.Logger {
	once.Do(configure)
	return &log
}

// SetLevel adjusts the global log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
