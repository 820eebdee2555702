package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clubreads/clubreads/pkg/config"
	"github.com/matryer/is"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.DefaultConfig()
	cfg.AI.BaseURL = srv.URL
	cfg.AI.APIKey = "test-key"
	cfg.AI.Model = "test-model"
	return NewClient(cfg)
}

func TestGenerateQuestions(t *testing.T) {
	is := is.New(t)

	var gotAuth, gotPrompt, gotModel string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		is.Equal(r.URL.Path, "/chat/completions")
		gotAuth = r.Header.Get("Authorization")

		var req chatRequest
		is.NoErr(json.NewDecoder(r.Body).Decode(&req))
		gotModel = req.Model
		gotPrompt = req.Messages[0].Content

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"[\"Why the lighthouse?\"]"}}]}`)) // nolint: errcheck
	})

	qs, err := c.GenerateQuestions(context.TODO(), "To the Lighthouse", "Virginia Woolf", "Literary Fiction", "Character-driven stories")
	is.NoErr(err)
	is.Equal(qs, []string{"Why the lighthouse?"})
	is.Equal(gotAuth, "Bearer test-key")
	is.Equal(gotModel, "test-model")
	is.True(strings.Contains(gotPrompt, `"To the Lighthouse" by Virginia Woolf`))
	is.True(strings.Contains(gotPrompt, "Literary Fiction"))
}

func TestGenerateQuestionsAPIError(t *testing.T) {
	is := is.New(t)

	c := testClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := c.GenerateQuestions(context.TODO(), "Dune", "Frank Herbert", "", "")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "overloaded"))
}

func TestQuestionPromptWithoutTheme(t *testing.T) {
	is := is.New(t)

	p := QuestionPrompt("Dune", "Frank Herbert", "", "")
	is.True(!strings.Contains(p, "theme:"))
	is.True(strings.Contains(p, "JSON array"))
}
