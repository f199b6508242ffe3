package advisor

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/classifier"
	"github.com/finsight-ai/finsight/internal/models"
)

func newTestEngine() *Engine {
	return NewEngine(classifier.NewKeywordClassifier(), zap.NewNop())
}

func TestBuildAdviceIsIdempotent(t *testing.T) {
	engine := newTestEngine()

	inputs := []string{
		"",
		"hello",
		"I need a home loan for $300,000",
		"how to invest 50k, i am 30 years old",
		"my credit score is 620",
		"random text with no intent",
	}

	for _, input := range inputs {
		first := engine.BuildAdvice(input)
		second := engine.BuildAdvice(input)
		if first != second {
			t.Errorf("BuildAdvice(%q) is not deterministic", input)
		}
		if first == "" {
			t.Errorf("BuildAdvice(%q) returned empty response", input)
		}
	}
}

func TestBuildAdviceDefaultFallback(t *testing.T) {
	engine := newTestEngine()

	for _, input := range []string{"", "asdkjhasd"} {
		response := engine.BuildAdvice(input)
		if !strings.Contains(response, "Your Financial Guide") {
			t.Errorf("expected default template for %q, got:\n%s", input, response)
		}
	}

	// The default template echoes the original message back.
	response := engine.BuildAdvice("asdkjhasd")
	if !strings.Contains(response, "asdkjhasd") {
		t.Errorf("default response should echo the message")
	}
}

func TestLoanAdviceWithAmount(t *testing.T) {
	engine := newTestEngine()

	response, intent := engine.Advise(context.Background(), "I need a home loan for $300,000")
	if intent != models.IntentLoan {
		t.Fatalf("expected loan intent, got %q", intent)
	}
	if !strings.Contains(response, "Home Loan Advisory") {
		t.Errorf("expected home loan header, got:\n%s", response)
	}
	if !strings.Contains(response, "Requested Amount: $300,000") {
		t.Errorf("expected requested amount line, got:\n%s", response)
	}
	if !strings.Contains(response, "Estimated Monthly EMI") {
		t.Errorf("expected EMI line when amount is present, got:\n%s", response)
	}
	if !strings.Contains(response, "excellent credit score (750+)") {
		t.Errorf("expected large-loan assessment, got:\n%s", response)
	}
}

func TestLoanAdviceWithoutAmount(t *testing.T) {
	engine := newTestEngine()

	response, intent := engine.Advise(context.Background(), "tell me about mortgage options")
	if intent != models.IntentLoan {
		t.Fatalf("expected loan intent, got %q", intent)
	}
	if strings.Contains(response, "Estimated Monthly EMI") {
		t.Errorf("EMI line must be omitted when no amount was extracted")
	}
	if strings.Contains(response, "Requested Amount") {
		t.Errorf("amount line must be omitted when no amount was extracted")
	}
}

func TestInvestmentAdviceDefaultsAmount(t *testing.T) {
	engine := newTestEngine()

	response, intent := engine.Advise(context.Background(), "how should i invest")
	if intent != models.IntentInvestment {
		t.Fatalf("expected investment intent, got %q", intent)
	}
	if !strings.Contains(response, "Investment Strategy for $10,000") {
		t.Errorf("expected default amount 10,000, got:\n%s", response)
	}
	// No age, so no risk profile line.
	if strings.Contains(response, "Recommended Risk Profile") {
		t.Errorf("risk profile must be omitted when no age was extracted")
	}
}

func TestInvestmentAdviceWithAgeAndAmount(t *testing.T) {
	engine := newTestEngine()

	response, _ := engine.Advise(context.Background(), "how to invest 50k, i am 30 years old")
	if !strings.Contains(response, "Investment Strategy for $50,000") {
		t.Errorf("expected scaled amount, got:\n%s", response)
	}
	if !strings.Contains(response, "Moderate-Aggressive (70% Equity, 30% Debt)") {
		t.Errorf("expected age-30 risk profile, got:\n%s", response)
	}
	// Under 35 gets the growth mix.
	if !strings.Contains(response, "International Funds") {
		t.Errorf("expected growth allocation for age 30, got:\n%s", response)
	}
	if !strings.Contains(response, "10-Year Projected Value: $160,000.00") {
		t.Errorf("expected flat 3.2x projection, got:\n%s", response)
	}
}

func TestBudgetAdviceWithIncome(t *testing.T) {
	engine := newTestEngine()

	response, intent := engine.Advise(context.Background(), "plan my budget, monthly income $6,000")
	if intent != models.IntentBudget {
		t.Fatalf("expected budget intent, got %q", intent)
	}
	if !strings.Contains(response, "Needs (50%): $3,000.00") {
		t.Errorf("expected needs figure, got:\n%s", response)
	}
	if !strings.Contains(response, "Wants (30%): $1,800.00") {
		t.Errorf("expected wants figure, got:\n%s", response)
	}
	if !strings.Contains(response, "Savings (20%): $1,200.00") {
		t.Errorf("expected savings figure, got:\n%s", response)
	}
	if !strings.Contains(response, "Emergency Fund Target: $36,000") {
		t.Errorf("expected 6x emergency fund, got:\n%s", response)
	}
}

func TestBudgetAdviceWithoutIncome(t *testing.T) {
	engine := newTestEngine()

	response, _ := engine.Advise(context.Background(), "help with budgeting")
	if !strings.Contains(response, "The 50-30-20 Rule") {
		t.Errorf("expected abstract rule text, got:\n%s", response)
	}
	if strings.Contains(response, "Your Income Analysis") {
		t.Errorf("income figures must be omitted when no income was extracted")
	}
}

func TestCreditScoreAdviceWithTimeline(t *testing.T) {
	engine := newTestEngine()

	response, intent := engine.Advise(context.Background(), "my credit score is 620")
	if intent != models.IntentCreditScore {
		t.Fatalf("expected credit score intent, got %q", intent)
	}
	if !strings.Contains(response, "Current Score: 620") {
		t.Errorf("expected score line, got:\n%s", response)
	}
	if !strings.Contains(response, "Estimated Time: 6 months") {
		t.Errorf("expected 6-month timeline for score 620, got:\n%s", response)
	}
}

func TestCreditScoreAdviceHighScoreNoTimeline(t *testing.T) {
	engine := newTestEngine()

	response, _ := engine.Advise(context.Background(), "my credit score is 760")
	if !strings.Contains(response, "Excellent! You're in the top tier.") {
		t.Errorf("expected excellent assessment, got:\n%s", response)
	}
	if strings.Contains(response, "Your Improvement Timeline") {
		t.Errorf("timeline must be omitted for scores of 700 and above")
	}
}

func TestStaticTemplates(t *testing.T) {
	engine := newTestEngine()

	tests := []struct {
		message string
		intent  models.Intent
		marker  string
	}{
		{"hello", models.IntentGreeting, "Welcome to FinSight AI"},
		{"tax deduction question", models.IntentTax, "Tax Filing Assistance"},
		{"lottery fraud alert", models.IntentScam, "Scam Detection Alert"},
		{"pmay eligibility", models.IntentGovScheme, "Government Financial Schemes"},
		{"cashback offers", models.IntentCreditCard, "Credit Card Guidance"},
	}

	for _, tt := range tests {
		response, intent := engine.Advise(context.Background(), tt.message)
		if intent != tt.intent {
			t.Errorf("Advise(%q) intent = %q, want %q", tt.message, intent, tt.intent)
		}
		if !strings.Contains(response, tt.marker) {
			t.Errorf("Advise(%q) missing marker %q", tt.message, tt.marker)
		}
	}
}

func TestGPTAdvisorFallsBackWithoutKey(t *testing.T) {
	engine := newTestEngine()
	gpt := NewGPTAdvisor("", "gpt-4o-mini", 500, 0.7, engine, zap.NewNop())

	message := "I need a home loan for $300,000"
	gotResponse, gotIntent := gpt.Advise(context.Background(), message)
	wantResponse, wantIntent := engine.Advise(context.Background(), message)

	if gotResponse != wantResponse {
		t.Errorf("expected deterministic fallback response")
	}
	if gotIntent != wantIntent {
		t.Errorf("expected intent %q, got %q", wantIntent, gotIntent)
	}
}
