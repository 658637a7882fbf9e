package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"prepay-engine/domain"
)

// AdvisorService turns a comparison result into a short human-readable
// explanation. When OPENAI_API_KEY is set the text is generated by the
// OpenAI API; otherwise a deterministic template is used. The advisor never
// fails a calculation: any API problem falls back to the template.
type AdvisorService struct {
	apiKey     string
	apiURL     string
	enabled    bool
	httpClient *http.Client
}

type openAIRequest struct {
	Model     string          `json:"model"`
	Messages  []openAIMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

func NewAdvisorService() *AdvisorService {
	apiKey := os.Getenv("OPENAI_API_KEY")

	return &AdvisorService{
		apiKey:  apiKey,
		apiURL:  "https://api.openai.com/v1/chat/completions",
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ExplainComparison describes what the prepayment plan achieves against the
// baseline schedule.
func (s *AdvisorService) ExplainComparison(
	ctx context.Context,
	input domain.LoanInput,
	result domain.ComparisonResult,
) string {
	if !s.enabled {
		return s.fallbackExplanation(result)
	}

	prompt := fmt.Sprintf(
		"A borrower has a loan of %s at %.2f%% annual interest over %d months "+
			"(EMI %s). With a prepayment plan they finish in %d months instead of %d, "+
			"prepaying %s in total and saving %s in interest. "+
			"Explain the trade-off in 2-3 plain sentences, without repeating every number.",
		input.Principal, input.AnnualRate, input.TermMonths,
		result.Baseline.EMI,
		result.WithPrepayment.TenureMonths, result.Baseline.TenureMonths,
		result.Savings.TotalPrepaid, result.Savings.InterestSaved,
	)

	explanation, err := s.complete(ctx, prompt)
	if err != nil {
		log.Printf("Warning: advisor API call failed: %v", err)
		return s.fallbackExplanation(result)
	}
	return explanation
}

func (s *AdvisorService) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(openAIRequest{
		Model: "gpt-4o-mini",
		Messages: []openAIMessage{
			{Role: "system", Content: "You are a concise financial assistant explaining loan prepayment outcomes."},
			{Role: "user", Content: prompt},
		},
		MaxTokens: 200,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body)
	}

	var parsed openAIResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("empty completion response")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

func (s *AdvisorService) fallbackExplanation(result domain.ComparisonResult) string {
	savings := result.Savings
	if !savings.TotalPrepaid.IsPositive() {
		return "Without prepayments the loan runs its full course; there are no savings to report."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Prepaying %s in total shortens the loan from %d to %d months",
		savings.TotalPrepaid, result.Baseline.TenureMonths, result.WithPrepayment.TenureMonths)
	if savings.MonthsSaved > 0 {
		fmt.Fprintf(&b, " (%.1f years earlier)", savings.YearsSaved)
	}
	fmt.Fprintf(&b, " and saves %s in interest.", savings.InterestSaved)
	if savings.EffectiveSavingsRate.IsPositive() {
		fmt.Fprintf(&b, " Every 100 prepaid avoids about %s in interest charges.",
			savings.EffectiveSavingsRate)
	}
	return b.String()
}
