package http

import "clima-api/pkg/log"

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called immediately after receiving an error response (error HTTP status)
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry is called when backoff exists and a retry attempt is about to be made
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}

// ZapHTTPLogger logs the outbound request lifecycle through pkg/log.
type ZapHTTPLogger struct{}

func NewZapHTTPLogger() *ZapHTTPLogger {
	return &ZapHTTPLogger{}
}

func (l *ZapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugw("outbound request", "method", method, "url", url)
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debugw("outbound response", "method", method, "url", url, "status", httpStatus, "latency_ms", latency)
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warnw("outbound request failed", "method", method, "url", url, "status", httpStatus, "latency_ms", latency, "error", err)
}

func (l *ZapHTTPLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warnw("outbound request retry", "method", method, "url", url, "status", httpStatus, "retry", retryCount, "max_retries", maxRetries, "error", err)
}
