package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/gic-bank/pkg/configpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestCreateLogger(t *testing.T) {
	testCases := []struct {
		name   string
		config configpkg.Config
		want   zerolog.Level
	}{
		{name: "Default", config: configpkg.Config{}, want: zerolog.InfoLevel},
		{name: "Configured", config: configpkg.Config{LogLevel: "warn"}, want: zerolog.WarnLevel},
		{name: "Invalid", config: configpkg.Config{LogLevel: "loud"}, want: zerolog.InfoLevel},
		{name: "Development", config: configpkg.Config{Environment: "development"}, want: zerolog.TraceLevel},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, CreateLogger(tc.config).GetLevel())
		})
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := zerolog.New(&buf)

	engine := gin.New()
	engine.Use(RequestLogger(logger))
	engine.GET("/ping", func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("inside handler")
		c.Status(http.StatusNoContent)
	})

	t.Run("GeneratesRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		engine.ServeHTTP(recorder, request)

		require.Equal(t, http.StatusNoContent, recorder.Code)
		requestID := recorder.Header().Get(RequestIDHeader)
		require.NotEmpty(t, requestID)

		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		require.Len(t, lines, 2)

		for _, line := range lines {
			var entry map[string]any
			require.NoError(t, json.Unmarshal(line, &entry))
			require.Equal(t, requestID, entry["request_id"])
		}
	})

	t.Run("KeepsRequestID", func(t *testing.T) {
		buf.Reset()

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/ping", nil)
		request.Header.Set(RequestIDHeader, "abc")
		engine.ServeHTTP(recorder, request)

		require.Equal(t, "abc", recorder.Header().Get(RequestIDHeader))
		require.Contains(t, buf.String(), `"status_code":204`)
	})
}
