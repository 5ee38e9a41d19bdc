package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"contact-service/internal/infrastructure"
)

// LogRecord is the per-request record printed to the console and
// forwarded to the log-collection sink. It is transient, never queried
// back.
type LogRecord struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
	IP        string `json:"ip"`
	Method    string `json:"method"`
	URL       string `json:"url"`
}

// RequestLogger logs every inbound request and forwards the record to
// Splunk. The forward runs off the request path; the response never
// waits on it.
func RequestLogger(splunk *infrastructure.SplunkService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			record := LogRecord{
				RequestID: uuid.NewString(),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				IP:        c.RealIP(),
				Method:    c.Request().Method,
				URL:       c.Request().RequestURI,
			}

			log.Infof("[%s] IP=%s METHOD=%s URL=%s", record.Timestamp, record.IP, record.Method, record.URL)
			splunk.SendAsync(record)

			return next(c)
		}
	}
}
