package translation_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"galeria/backend/internal/network"
	"galeria/backend/internal/service/translation"
)

func newGoogleWeb(t *testing.T, handler http.HandlerFunc) *translation.GoogleWebTranslator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return translation.NewGoogleWebTranslator(srv.URL, time.Second, false, network.NewClientFactory(nil))
}

func TestGoogleWebTranslator_JoinsSegments(t *testing.T) {
	tr := newGoogleWeb(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate_a/single", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "gtx", q.Get("client"))
		require.Equal(t, "en", q.Get("sl"))
		require.Equal(t, "pt", q.Get("tl"))
		require.Equal(t, "t", q.Get("dt"))
		require.Equal(t, "The bedroom. Oil on canvas.", q.Get("q"))
		_, _ = w.Write([]byte(`[[["O quarto. ","The bedroom. ",null,null,10],["Óleo sobre tela.","Oil on canvas.",null,null,10]],null,"en",null,null,null,1,[],[["en"],null,[1],["en"]]]`))
	})

	got, err := tr.Translate(context.Background(), "The bedroom. Oil on canvas.", "en", "pt")

	require.NoError(t, err)
	require.Equal(t, "O quarto. Óleo sobre tela.", got)
	require.Equal(t, translation.ProviderGoogleWeb, tr.Name())
}

func TestGoogleWebTranslator_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"rate limited", http.StatusTooManyRequests, `<html>sorry</html>`, nil},
		{"not json", http.StatusOK, `<html>captcha</html>`, translation.ErrMalformed},
		{"empty root", http.StatusOK, `[]`, translation.ErrMalformed},
		{"null segments", http.StatusOK, `[null,null,"en"]`, translation.ErrEmptyTranslation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newGoogleWeb(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := tr.Translate(context.Background(), "Water Lilies", "en", "pt")

			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				var perr *translation.ProviderError
				require.ErrorAs(t, err, &perr)
				require.Equal(t, tt.status, perr.StatusCode)
			}
		})
	}
}

func TestGoogleWebTranslator_ThroughEngine(t *testing.T) {
	tr := newGoogleWeb(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[[["Nenúfares","Water Lilies",null,null,10]]]`))
	})
	engine := translation.NewEngine(tr, nil, nil, time.Second)

	require.Equal(t, "Nenúfares", engine.Translate(context.Background(), "Water Lilies", "en", "pt-BR"))
}

func TestGoogleWebTranslator_BrowserTLSHonoursContext(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[[["Retrato","Portrait",null,null,10]]]`))
	}))
	t.Cleanup(srv.Close)
	tr := translation.NewGoogleWebTranslator(srv.URL, 5*time.Second, true, network.NewClientFactory(nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Translate(ctx, "Portrait", "en", "pt")
	require.Error(t, err)
	require.Zero(t, hits.Load())
}
