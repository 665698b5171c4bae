package util

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// LogErr logs the error with the message and arguments if the error is not nil.
// It returns true if the error is not nil.
// Examples:
// LogErr(err)
// LogErr(err, "error message")
// LogErr(err, "error message %s", "with argument")
func LogErr(err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	entry := logrus.WithError(err)
	switch {
	case len(msgAndArgs) == 0:
		entry.Error(err.Error())
	case len(msgAndArgs) == 1:
		entry.Error(msgAndArgs[0].(string))
	default:
		entry.Errorf(msgAndArgs[0].(string), msgAndArgs[1:]...)
	}

	return true
}

// WarnFirstLogger logs at warn level until the threshold within the window is
// used up and at error level after that.
type WarnFirstLogger struct {
	logger      logrus.FieldLogger
	warnLimiter *rate.Limiter
}

func NewWarnFirstLogger(threshold int, window time.Duration, logger logrus.FieldLogger) *WarnFirstLogger {
	return &WarnFirstLogger{
		logger:      logger,
		warnLimiter: rate.NewLimiter(rate.Every(window), threshold),
	}
}

func (w *WarnFirstLogger) WarnOrError(err error, msg string, args ...interface{}) {
	log := w.logger
	if err != nil {
		log = log.WithError(err)
	}

	if w.warnLimiter.Allow() {
		log.Warnf(msg, args...)
	} else {
		log.Errorf(msg, args...)
	}
}
