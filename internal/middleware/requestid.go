package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	requestIDHeader = "X-Request-ID"
	loggerKey       = "logger"
)

// RequestID tags every request with an id (reusing the caller's if sent)
// and stores a logrus entry carrying it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Header(requestIDHeader, requestID)
		c.Set(loggerKey, logrus.WithField("request_id", requestID))

		c.Next()
	}
}

// Logger returns the request-scoped entry, or a bare one outside RequestID.
func Logger(c *gin.Context) *logrus.Entry {
	if l, ok := c.Get(loggerKey); ok {
		if entry, ok := l.(*logrus.Entry); ok {
			return entry
		}
	}
	return logrus.NewEntry(logrus.StandardLogger())
}
