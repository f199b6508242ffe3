package classifier

import (
	"strings"

	"github.com/finsight-ai/finsight/internal/models"
)

// Classifier maps a raw message to an advisory intent.
type Classifier interface {
	Classify(text string) models.Intent
}

type intentRule struct {
	intent   models.Intent
	keywords []string
}

// KeywordClassifier selects an intent by keyword-set membership over an
// explicit priority list, first match wins. A message containing both
// "loan" and "invest" resolves to loan because loan is checked first;
// the ordering is deliberate.
type KeywordClassifier struct {
	rules []intentRule
}

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		rules: []intentRule{
			{models.IntentGreeting, []string{"hello", "hi", "hey", "greet", "start", "looking for", "help me"}},
			{models.IntentLoan, []string{"loan", "mortgage", "borrow", "lending", "emi"}},
			{models.IntentInvestment, []string{"invest", "investment", "mutual fund", "sip", "stock", "portfolio", "wealth building"}},
			{models.IntentTax, []string{"tax", "itr", "filing", "deduction", "80c", "income tax"}},
			{models.IntentCreditScore, []string{"credit score", "cibil", "credit report", "improve credit"}},
			{models.IntentBudget, []string{"budget", "save", "savings", "expense", "planning", "money management"}},
			{models.IntentGovScheme, []string{"government scheme", "subsidy", "pmay", "mudra", "startup india"}},
			{models.IntentScam, []string{"scam", "fraud", "suspicious", "lottery", "prize", "fake"}},
			{models.IntentCreditCard, []string{"credit card", "card", "cashback", "rewards"}},
		},
	}
}

func (c *KeywordClassifier) Classify(text string) models.Intent {
	lower := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.intent
			}
		}
	}
	return models.IntentDefault
}
