// Package insight produces a short natural-language summary of a
// month's spending.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"banchi/internal/core"
	"banchi/internal/report"
)

// Summarizer turns a month of transactions into advisory prose. The
// output is opaque text and never feeds back into any stored value.
type Summarizer interface {
	Summarize(ctx context.Context, month, year int, txs []core.Transaction) (string, error)
}

// GeminiSummarizer implements Summarizer on the Gemini API.
type GeminiSummarizer struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiSummarizer(ctx context.Context, apiKey string) (*GeminiSummarizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is empty")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiSummarizer{
		client: client,
		model:  client.GenerativeModel("gemini-1.5-flash"),
	}, nil
}

func (s *GeminiSummarizer) Summarize(ctx context.Context, month, year int, txs []core.Transaction) (string, error) {
	resp, err := s.model.GenerateContent(ctx, genai.Text(BuildPrompt(month, year, txs)))
	if err != nil {
		return "", fmt.Errorf("generate insight: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty gemini response")
	}
	var out strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			out.WriteString(string(txt))
		}
	}
	if out.Len() == 0 {
		return "", fmt.Errorf("gemini response contained no text")
	}
	return out.String(), nil
}

func (s *GeminiSummarizer) Close() error {
	return s.client.Close()
}

// BuildPrompt renders the month's totals and category breakdown into
// the advisory prompt sent to the model.
func BuildPrompt(month, year int, txs []core.Transaction) string {
	totals := report.Summarize(txs)
	breakdown := report.CategoryBreakdown(txs)

	var b strings.Builder
	fmt.Fprintf(&b, "You are a household finance assistant. Summarize the spending of %d/%d in a few sentences and point out anything unusual. Amounts are in Thai baht.\n", month, year)
	fmt.Fprintf(&b, "Income: %.2f, expense: %.2f.\n", totals.Income.Baht(), totals.Expense.Baht())
	if len(breakdown) > 0 {
		b.WriteString("Expense by category:\n")
		for _, cs := range breakdown {
			fmt.Fprintf(&b, "- %s: %.2f\n", cs.Category, cs.Total.Baht())
		}
	}
	b.WriteString("Largest expenses:\n")
	largest := core.FilterOptions{Type: core.Expense, SortBy: core.SortPriceDesc}.Apply(txs)
	for i, tx := range largest {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "- %s (%s): %.2f\n", tx.Description, tx.Category, tx.Total.Baht())
	}
	return b.String()
}
