// SPDX-License-Identifier: MIT

package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader carries the request correlation id.
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
)

// RequestID stores the incoming X-Request-ID, or a new UUID when absent or
// malformed, in the context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)
		ctx.Next()
	}
}

// AccessLog logs each request through logger once it completes.
func AccessLog(logger logrus.FieldLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		began := time.Now()
		ctx.Next()

		entry := logger.WithFields(logrus.Fields{
			"request_id": ctx.GetString(requestIDKey),
			"method":     ctx.Request.Method,
			"path":       ctx.Request.URL.Path,
			"status":     ctx.Writer.Status(),
			"latency":    time.Since(began),
		})
		if ctx.Writer.Status() >= 500 {
			entry.Warn("request failed")
			return
		}
		entry.Info("request served")
	}
}
