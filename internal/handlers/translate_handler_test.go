package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danfath312/cv-karya-perikanan/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubTranslateUpstream(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestTranslate(t *testing.T) {
	upstream := stubTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sisik ikan", r.URL.Query().Get("q"))
		assert.Equal(t, "id|en", r.URL.Query().Get("langpair"))
		w.Write([]byte(`{"responseStatus":200,"responseData":{"translatedText":"fish scales"}}`))
	})

	s := newTestServer(t, func(cfg *config.Config) { cfg.TranslateAPIURL = upstream.URL })

	w := s.do(t, http.MethodPost, "/api/translate",
		map[string]interface{}{"text": "sisik ikan"}, false)

	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "fish scales", body["translatedText"])
	assert.Equal(t, "id", body["source"])
	assert.Equal(t, "en", body["target"])
}

func TestTranslateEmptyText(t *testing.T) {
	s := newTestServer(t)

	for _, payload := range []map[string]interface{}{
		{},
		{"text": ""},
		{"text": "   "},
	} {
		w := s.do(t, http.MethodPost, "/api/translate", payload, false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestTranslateUpstreamFailure(t *testing.T) {
	upstream := stubTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	s := newTestServer(t, func(cfg *config.Config) { cfg.TranslateAPIURL = upstream.URL })

	w := s.do(t, http.MethodPost, "/api/translate",
		map[string]interface{}{"text": "sisik ikan"}, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code,
		"upstream failure is a 500, distinct from the 400 validation path")
}

func TestTranslateUpstreamReportsError(t *testing.T) {
	upstream := stubTranslateUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"responseStatus":"403","responseData":{"translatedText":""}}`))
	})

	s := newTestServer(t, func(cfg *config.Config) { cfg.TranslateAPIURL = upstream.URL })

	w := s.do(t, http.MethodPost, "/api/translate",
		map[string]interface{}{"text": "sisik ikan"}, false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
