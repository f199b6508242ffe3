package models

import "time"

// Intent is the advisory category selected for a message.
type Intent string

const (
	IntentGreeting    Intent = "greeting"
	IntentLoan        Intent = "loan"
	IntentInvestment  Intent = "investment"
	IntentTax         Intent = "tax"
	IntentCreditScore Intent = "credit_score"
	IntentBudget      Intent = "budget"
	IntentGovScheme   Intent = "gov_scheme"
	IntentScam        Intent = "scam"
	IntentCreditCard  Intent = "credit_card"
	IntentDefault     Intent = "default"
)

// Facts holds the numeric values extracted from a single message.
// Each field is nil when no pattern matched. A Facts value is built
// fresh per message and never mutated afterwards.
type Facts struct {
	Amount      *float64
	Age         *int
	Income      *float64
	CreditScore *int
}

// LoanQuote is the illustrative quote computed on the loan advice path
// when an amount was extracted.
type LoanQuote struct {
	Principal         float64
	AnnualRate        float64
	TenureYears       int
	MonthlyEMI        float64
	RecommendedIncome float64
}

// InvestmentPlan is the allocation and projection computed on the
// investment advice path.
type InvestmentPlan struct {
	Amount       float64
	RiskProfile  string
	TimeHorizon  string
	Allocations  []Allocation
	MonthlySIP   float64
	TenYearValue float64
	TwentyYear   float64
}

// Allocation is a single fund-category line of an investment plan.
type Allocation struct {
	Category string
	Percent  float64
	Amount   float64
}

// BudgetPlan is the 50/30/20 split computed when income was extracted.
type BudgetPlan struct {
	Income        float64
	Needs         float64
	Wants         float64
	Savings       float64
	EmergencyFund float64
}

// ChatRecord is one processed chat request, kept for history only.
// Stored records never feed back into advice generation.
type ChatRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Intent    Intent    `json:"intent"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
