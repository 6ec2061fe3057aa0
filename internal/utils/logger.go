package utils

import (
	"log"
	"strings"
)

// LogEvent prints standardized log line with module/action/request_id.
// Avoid logging sensitive payload; message should be summarized.
func LogEvent(requestID, module, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, req, message)
}

// LogFallback records that an operation was served from demo data after the
// upstream call failed.
func LogFallback(requestID, module, op string, err error) {
	msg := "upstream failed, serving demo data"
	if err != nil {
		msg += ": " + err.Error()
	}
	LogEvent(requestID, module, op+"_fallback", msg)
}
