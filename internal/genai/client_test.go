package genai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEndpoint fails the first failures attempts, then returns text.
func fakeEndpoint(t *testing.T, failures int, text string) (*httptest.Server, *int) {
	t.Helper()
	attempts := new(int)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*attempts++
		if *attempts <= failures {
			http.Error(w, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`, http.StatusServiceUnavailable)
			return
		}
		resp := generateResponse{Candidates: []candidate{{Content: content{Parts: []part{{Text: text}}}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	return srv, attempts
}

func newTestClient(baseURL string, sleeps *[]time.Duration) *Client {
	return New(Config{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Model:      "test-model",
		MaxRetries: 3,
		Sleep:      func(d time.Duration) { *sleeps = append(*sleeps, d) },
	})
}

func TestGenerateFirstAttemptSucceeds(t *testing.T) {
	srv, attempts := fakeEndpoint(t, 0, "generated")
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	got, err := c.Generate(context.Background(), "instruction", "payload")
	require.NoError(t, err)
	assert.Equal(t, "generated", got)
	assert.Equal(t, 1, *attempts)
	assert.Empty(t, sleeps, "no backoff on immediate success")
}

func TestGenerateRetriesWithExponentialBackoff(t *testing.T) {
	tests := []struct {
		failures   int
		wantSleeps []time.Duration
	}{
		{1, []time.Duration{1 * time.Second}},
		{2, []time.Duration{1 * time.Second, 2 * time.Second}},
		{3, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}},
	}
	for _, tc := range tests {
		srv, attempts := fakeEndpoint(t, tc.failures, "ok")

		var sleeps []time.Duration
		c := newTestClient(srv.URL, &sleeps)

		got, err := c.Generate(context.Background(), "i", "p")
		srv.Close()

		require.NoError(t, err, "failures=%d", tc.failures)
		assert.Equal(t, "ok", got)
		assert.Equal(t, tc.failures+1, *attempts)
		assert.Equal(t, tc.wantSleeps, sleeps)
	}
}

func TestGenerateExhaustsRetryBudget(t *testing.T) {
	srv, attempts := fakeEndpoint(t, 100, "never")
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	_, err := c.Generate(context.Background(), "i", "p")
	require.Error(t, err)

	var ge *GenerationError
	require.True(t, errors.As(err, &ge))
	assert.Equal(t, 4, ge.Attempts)
	assert.True(t, IsExhausted(err))

	assert.Equal(t, 4, *attempts, "exactly four attempts, then stop")
	assert.Equal(t, []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}, sleeps,
		"no sleep after the final failed attempt")

	// The last underlying cause is preserved.
	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrTypeStatus, re.Type)
	assert.Contains(t, re.Message, "overloaded")
}

func TestGenerateTreatsMissingTextAsTransient(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		// 2xx with an empty candidate list: still a failure.
		_ = json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	_, err := c.Generate(context.Background(), "i", "p")
	require.Error(t, err)
	assert.Equal(t, 4, attempts, "empty responses are retried like any other failure")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestGenerateRequestShape(t *testing.T) {
	var gotPath, gotKey string
	var gotBody generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		resp := generateResponse{Candidates: []candidate{{Content: content{Parts: []part{{Text: "x"}}}}}}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	_, err := c.Generate(context.Background(), "rewrite this", "Hello world")
	require.NoError(t, err)

	assert.Equal(t, "/v1beta/models/test-model:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "Hello world", gotBody.Contents[0].Parts[0].Text)
	require.NotNil(t, gotBody.SystemInstruction)
	assert.Equal(t, "rewrite this", gotBody.SystemInstruction.Parts[0].Text)
}

func TestGenerateTransportFailure(t *testing.T) {
	// Point at a server that is already closed.
	srv, _ := fakeEndpoint(t, 0, "x")
	srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	_, err := c.Generate(context.Background(), "i", "p")
	require.Error(t, err)

	var re *RequestError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, ErrTypeTransport, re.Type)
	assert.Len(t, sleeps, 3)
}

func TestNoRetriesMeansSingleAttempt(t *testing.T) {
	srv, attempts := fakeEndpoint(t, 1, "never reached")
	defer srv.Close()

	var sleeps []time.Duration
	c := New(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Model:      "test-model",
		MaxRetries: NoRetries,
		Sleep:      func(d time.Duration) { sleeps = append(sleeps, d) },
	})

	_, err := c.Generate(context.Background(), "i", "p")
	require.Error(t, err)
	assert.True(t, IsExhausted(err))
	assert.Equal(t, 1, *attempts)
	assert.Empty(t, sleeps)
}

func TestNewFillsDefaults(t *testing.T) {
	c := New(Config{})
	assert.Equal(t, DefaultModel, c.Model())
	assert.Equal(t, DefaultBaseURL, c.cfg.BaseURL)
	assert.Equal(t, DefaultMaxRetries, c.cfg.MaxRetries)
	assert.NotNil(t, c.cfg.HTTPClient)
	assert.NotNil(t, c.cfg.Sleep)
}
