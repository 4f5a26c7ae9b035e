package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerstub/internal/service"
	"github.com/guttosm/tickerstub/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	repo := storage.NewBasePriceRepository(map[string]float64{"THYAO": 256.40, "GARAN": 48.72}, 100.0)
	svc, err := service.NewQuoteService(repo, service.DefaultQuoteOptions(), service.NewSeededSource(3), nil)
	require.NoError(t, err)
	return NewRouter(NewHandler(svc))
}

func assertCORS(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"))
}

func TestNewRouter_Prices(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prices?symbols=THYAO,GARAN", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assertCORS(t, w)

	out := decodePrices(t, w.Body.Bytes())
	assert.True(t, out.Success)
	require.Equal(t, []string{"THYAO", "GARAN"}, symbolsOf(out.Data))

	thyao := out.Data[0]
	assert.GreaterOrEqual(t, thyao.Price, 256.40*0.98-0.005)
	assert.LessOrEqual(t, thyao.Price, 256.40*1.02+0.005)
	assert.GreaterOrEqual(t, thyao.Volume, int64(100000))
	assert.LessOrEqual(t, thyao.Volume, int64(1000000))
	assert.Greater(t, thyao.Timestamp, 0.0)
}

func TestNewRouter_UnknownSymbolNear100(t *testing.T) {
	r := newTestRouter(t)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prices?symbols=xyz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	out := decodePrices(t, w.Body.Bytes())
	require.Equal(t, []string{"XYZ"}, symbolsOf(out.Data))
	assert.InDelta(t, 100.0, out.Data[0].Price, 2.0+1e-9)
}

func TestNewRouter_Statuses(t *testing.T) {
	cases := []struct {
		name   string
		method string
		path   string
		want   int
		empty  bool
	}{
		{name: "no symbols", method: http.MethodGet, path: "/prices", want: http.StatusBadRequest},
		{name: "unknown path", method: http.MethodGet, path: "/quotes?symbols=THYAO", want: http.StatusNotFound},
		{name: "root", method: http.MethodGet, path: "/", want: http.StatusNotFound},
		{name: "trailing slash", method: http.MethodGet, path: "/prices/?symbols=THYAO", want: http.StatusNotFound},
		{name: "post", method: http.MethodPost, path: "/prices?symbols=THYAO", want: http.StatusNotFound},
		{name: "preflight prices", method: http.MethodOptions, path: "/prices", want: http.StatusOK, empty: true},
		{name: "preflight anywhere", method: http.MethodOptions, path: "/whatever/else", want: http.StatusOK, empty: true},
	}
	r := newTestRouter(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, tc.want, w.Code)
			assertCORS(t, w)
			if tc.empty {
				assert.Zero(t, w.Body.Len(), "body=%q", w.Body.String())
				assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			}
		})
	}
}
