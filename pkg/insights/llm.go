package insights

import (
	"context"
	"strings"

	"github.com/jordanlanch/nexuscrm/pkg/ai/llm"
	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/models"
)

var _ domain.ContentSuggester = (*LLMSuggester)(nil)

// LLMSuggester drafts outreach with a chat-completion model.
type LLMSuggester struct {
	client llm.Client
}

// NewLLMSuggester creates a suggester backed by client.
func NewLLMSuggester(client llm.Client) *LLMSuggester {
	return &LLMSuggester{client: client}
}

// Suggest implements domain.ContentSuggester.
func (s *LLMSuggester) Suggest(ctx context.Context, lead models.Lead) (string, error) {
	out, err := s.client.Complete(ctx, llm.BuildOutreachPrompt(lead), llm.OutreachSystemPrompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
