package classifier

import (
	"testing"

	"github.com/finsight-ai/finsight/internal/models"
)

func TestClassifyIntents(t *testing.T) {
	clf := NewKeywordClassifier()

	tests := []struct {
		message string
		want    models.Intent
	}{
		{"hello", models.IntentGreeting},
		{"mortgage rates please", models.IntentLoan},
		{"mutual fund options", models.IntentInvestment},
		{"tax deduction question", models.IntentTax},
		{"cibil report", models.IntentCreditScore},
		{"monthly budget", models.IntentBudget},
		{"pmay eligibility", models.IntentGovScheme},
		{"lottery winner notification", models.IntentScam},
		{"cashback offers", models.IntentCreditCard},
		{"asdkjhasd", models.IntentDefault},
		{"", models.IntentDefault},
	}

	for _, tt := range tests {
		t.Run(tt.message, func(t *testing.T) {
			if got := clf.Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	clf := NewKeywordClassifier()

	tests := []struct {
		name    string
		message string
		want    models.Intent
	}{
		{"loan beats investment", "I want a loan to invest", models.IntentLoan},
		{"tax beats budget", "budget and tax questions", models.IntentTax},
		{"greeting beats everything", "hello, I need a loan", models.IntentGreeting},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clf.Classify(tt.message); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	clf := NewKeywordClassifier()

	if got := clf.Classify("MORTGAGE RATES"); got != models.IntentLoan {
		t.Errorf("expected loan, got %q", got)
	}
}
