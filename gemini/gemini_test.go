package gemini_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/fwojciec/ciagent/gemini"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// fakeAPI is an httptest server standing in for the Gemini REST API.
type fakeAPI struct {
	t *testing.T

	mu       sync.Mutex
	requests []recordedRequest

	resp fakeResponse
}

// fakeResponse configures what the fake API replies with.
type fakeResponse struct {
	Status     int
	Embeddings [][]float32
	Text       string
}

type recordedRequest struct {
	Path string
	Body map[string]any
}

func newFakeAPI(t *testing.T, resp fakeResponse) (*fakeAPI, *genai.Client) {
	t.Helper()

	if resp.Status == 0 {
		resp.Status = http.StatusOK
	}
	f := &fakeAPI{t: t, resp: resp}
	srv := httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(srv.Close)

	client, err := gemini.NewClient(context.Background(), "test-key", srv.URL)
	require.NoError(t, err)
	return f, client
}

func (f *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.requests = append(f.requests, recordedRequest{Path: r.URL.Path, Body: body})
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if f.resp.Status != http.StatusOK {
		w.WriteHeader(f.resp.Status)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`))
		return
	}

	switch {
	case strings.Contains(r.URL.Path, "mbedContent"):
		embs := make([]map[string]any, len(f.resp.Embeddings))
		for i, v := range f.resp.Embeddings {
			embs[i] = map[string]any{"values": v}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"embeddings": embs})
	case strings.HasSuffix(r.URL.Path, ":generateContent"):
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"role":  "model",
					"parts": []map[string]any{{"text": f.resp.Text}},
				},
			}},
		})
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeAPI) lastRequest() recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(f.t, f.requests)
	return f.requests[len(f.requests)-1]
}
