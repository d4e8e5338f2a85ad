package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, handler func(req openai.ChatCompletionRequest) (int, any)) *OpenAIClient {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	return NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL}, logger.Nop())
}

func TestOpenAIClient_Complete(t *testing.T) {
	t.Run("Success - system and user messages", func(t *testing.T) {
		client := setupTestServer(t, func(req openai.ChatCompletionRequest) (int, any) {
			if assert.Len(t, req.Messages, 2) {
				assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
				assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
			}
			assert.Equal(t, openai.GPT4oMini, req.Model)
			assert.Equal(t, 400, req.MaxTokens)

			return http.StatusOK, openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{{
					Message:      openai.ChatCompletionMessage{Role: "assistant", Content: "Hi Priya"},
					FinishReason: openai.FinishReasonStop,
				}},
				Usage: openai.Usage{TotalTokens: 42},
			}
		})

		out, err := client.Complete(context.Background(), "draft", OutreachSystemPrompt)

		require.NoError(t, err)
		assert.Equal(t, "Hi Priya", out)
	})

	t.Run("Error - no choices", func(t *testing.T) {
		client := setupTestServer(t, func(openai.ChatCompletionRequest) (int, any) {
			return http.StatusOK, openai.ChatCompletionResponse{}
		})

		_, err := client.Complete(context.Background(), "draft")

		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("Error - api failure", func(t *testing.T) {
		client := setupTestServer(t, func(openai.ChatCompletionRequest) (int, any) {
			return http.StatusTooManyRequests, map[string]any{
				"error": map[string]any{"message": "rate limited", "type": "requests"},
			}
		})

		_, err := client.Complete(context.Background(), "draft")

		assert.Error(t, err)
	})
}

func TestBuildOutreachPrompt(t *testing.T) {
	prompt := BuildOutreachPrompt(models.Lead{
		Name:    "Priya Patel",
		Company: "B.Tech CSE",
		Source:  models.SourceInstagram,
		Stage:   models.StageAINurturing,
		Tags:    []string{"High Intent", "Scholarship"},
	})

	assert.Contains(t, prompt, "Name: Priya Patel")
	assert.Contains(t, prompt, "Program: B.Tech CSE")
	assert.Contains(t, prompt, "Tags: High Intent, Scholarship")
	assert.NotContains(t, prompt, "Suggested next action")

	assert.Contains(t, BuildOutreachPrompt(models.Lead{}), "Tags: none")
}
