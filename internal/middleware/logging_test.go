package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func TestRequestLogging(t *testing.T) {
	setup := func() (*gin.Engine, *string) {
		var seen string
		r := gin.New()
		r.Use(RequestLogging())
		r.GET("/ping", func(c *gin.Context) {
			seen = RequestID(c)
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		return r, &seen
	}

	t.Run("assigns_request_id", func(t *testing.T) {
		r, seen := setup()
		req := httptest.NewRequest("GET", "/ping", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		id := rec.Header().Get("X-Request-ID")
		if _, err := uuid.Parse(id); err != nil {
			t.Fatalf("expected a UUID request ID, got %q: %v", id, err)
		}
		if *seen != id {
			t.Errorf("handler saw request ID %q, header carries %q", *seen, id)
		}
	})

	t.Run("honors_inbound_request_id", func(t *testing.T) {
		r, seen := setup()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("X-Request-ID", "upstream-id-7")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if got := rec.Header().Get("X-Request-ID"); got != "upstream-id-7" {
			t.Errorf("expected inbound ID to be echoed, got %q", got)
		}
		if *seen != "upstream-id-7" {
			t.Errorf("handler saw request ID %q", *seen)
		}
	})

	t.Run("request_id_empty_outside_middleware", func(t *testing.T) {
		var seen string
		r := gin.New()
		r.GET("/bare", func(c *gin.Context) {
			seen = RequestID(c)
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest("GET", "/bare", nil)
		r.ServeHTTP(httptest.NewRecorder(), req)

		if seen != "" {
			t.Errorf("expected empty request ID without the middleware, got %q", seen)
		}
	})
}
