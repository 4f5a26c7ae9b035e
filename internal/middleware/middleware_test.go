package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type assertErr struct{}

func (assertErr) Error() string { return "boom" }

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) { _ = c.Error(assertErr{}) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "boom", w.Body.String())
}

func TestErrorHandler_AlreadyWritten(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler)
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusTeapot, "kept")
		_ = c.Error(errors.New("late"))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "kept", w.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RecoveryMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("kaboom") })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "kaboom", w.Body.String())
}

func TestAbortWithError(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		err  error
		want string
	}{
		{name: "message only", msg: "No symbols provided", want: "No symbols provided"},
		{name: "error only", err: assertErr{}, want: "boom"},
		{name: "both", msg: "bad stuff", err: assertErr{}, want: "bad stuff: boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.GET("/err", func(c *gin.Context) {
				AbortWithError(c, http.StatusBadRequest, tc.msg, tc.err)
			})
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/err", nil))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, contentTypePlain, w.Header().Get("Content-Type"))
			assert.Equal(t, tc.want, w.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	cases := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantBody string
	}{
		{name: "preflight on route", method: http.MethodOptions, path: "/prices", wantCode: 200, wantBody: ""},
		{name: "preflight anywhere", method: http.MethodOptions, path: "/nope/deeper", wantCode: 200, wantBody: ""},
		{name: "get passes through", method: http.MethodGet, path: "/prices", wantCode: 200, wantBody: "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(CORS())
			r.GET("/prices", func(c *gin.Context) { c.String(http.StatusOK, "{}") })
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.wantCode, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		})
	}
}
