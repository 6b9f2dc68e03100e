package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"personal-agenda/pkg/log"
	"personal-agenda/pkg/response"
	"personal-agenda/pkg/scope"
)

func newAuthTestRouter(t *testing.T) (*gin.Engine, scope.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mgr, err := scope.New(scope.Config{Secret: "test-secret", TokenTTL: time.Hour})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mw := New(log.NewNoop(), mgr)
	r := gin.New()
	r.GET("/protected", mw.Auth(), func(c *gin.Context) {
		sc, ok := ScopeFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		response.OK(c, gin.H{"user_id": sc.UserID, "email": sc.Email})
	})
	return r, mgr
}

func TestAuth(t *testing.T) {
	r, mgr := newAuthTestRouter(t)

	t.Run("ValidToken", func(t *testing.T) {
		token, err := mgr.Issue(scope.Payload{UserID: "u1", Email: "ana@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("TamperedToken", func(t *testing.T) {
		token, _ := mgr.Issue(scope.Payload{UserID: "u1"})

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token+"x")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})
}

func TestScopeFromContextMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := ScopeFromContext(c); ok {
		t.Error("expected no scope on a fresh context")
	}
}
