package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"clima-api/pkg/msg"
)

func newLoggedServer() *echo.Echo {
	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/ping", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	e := newLoggedServer()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Header().Get(echo.HeaderXRequestID) == "" {
		t.Error("response must carry a generated X-Request-ID")
	}
}

func TestRequestLoggerKeepsClientRequestID(t *testing.T) {
	e := newLoggedServer()

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "client-id-42")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if got := rec.Header().Get(echo.HeaderXRequestID); got != "client-id-42" {
		t.Errorf("X-Request-ID = %q, want the client-provided id", got)
	}
}

func TestRequestLogMessagesRenderAllArguments(t *testing.T) {
	msg.Init("../../../configs/messages.yml")

	line := msg.GetMessage("app.req-fail",
		"GET", "/clima-api/weather", 502, 42*time.Millisecond, "abc-123", errors.New("boom"))
	for _, fragment := range []string{"GET", "/clima-api/weather", "502", "abc-123", "boom"} {
		if !strings.Contains(line, fragment) {
			t.Errorf("req-fail message %q is missing %q", line, fragment)
		}
	}
	if strings.Contains(line, "{") {
		t.Errorf("req-fail message %q has unreplaced placeholders", line)
	}

	line = msg.GetMessage("app.req-end",
		"GET", "/clima-api/weather", 200, 42*time.Millisecond, "abc-123")
	if !strings.Contains(line, "abc-123") {
		t.Errorf("req-end message %q is missing the request id", line)
	}
	if strings.Contains(line, "{") {
		t.Errorf("req-end message %q has unreplaced placeholders", line)
	}
}
