package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"lppm-backend/internal/adapter/repository/mysql"
	masterDomain "lppm-backend/internal/domain/master"
	"lppm-backend/internal/testutil/fixture"
	authUC "lppm-backend/internal/usecase/auth"
	"lppm-backend/pkg/id"
)

var testSecret = []byte("route-test-secret")

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	g := fixture.NewDB(t)

	hash, err := authUC.HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if err := g.Create(&masterDomain.User{
		ID:           id.NewID32(),
		Username:     "admin",
		PasswordHash: hash,
		Role:         masterDomain.RoleAdmin,
		Status:       "AKTIF",
	}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	auth := authUC.NewUsecase(mysql.NewUserRepository(g), testSecret, time.Hour)
	h := NewHandler(auth, nil, nil, nil, nil, nil, nil, nil)

	e := echo.New()
	RegisterRoutes(e, h, testSecret, rdb, time.Minute)
	return e
}

func TestHealth(t *testing.T) {
	e := newTestServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	e := newTestServer(t)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	t.Run("returns a token", func(t *testing.T) {
		rec := post(`{"username":"admin","password":"rahasia123"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
		}
		var out struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("empty token")
		}
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		if rec := post(`{"username":"admin","password":"salah"}`); rec.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		if rec := post(`{"username":"admin"}`); rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	e := newTestServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/proposal/abc", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
