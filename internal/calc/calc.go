package calc

import (
	"errors"
	"math"
	"strings"
)

// LoanType is the inferred loan sub-type used to pick a representative
// rate and tenure for the EMI illustration.
type LoanType string

const (
	LoanHome      LoanType = "home"
	LoanPersonal  LoanType = "personal"
	LoanEducation LoanType = "education"
	LoanGeneral   LoanType = "general"
)

// EMI computes the equated monthly installment for an amortizing loan:
// M = P*r*(1+r)^n / ((1+r)^n - 1) with r the monthly rate and n the
// tenure in months. A zero rate degenerates to P/n exactly.
func EMI(principal, annualRatePercent float64, years int) (float64, error) {
	if principal <= 0 {
		return 0, errors.New("principal must be positive")
	}
	if years <= 0 {
		return 0, errors.New("tenure must be at least one year")
	}

	months := float64(years * 12)
	monthlyRate := annualRatePercent / (12 * 100)
	if monthlyRate == 0 {
		return principal / months, nil
	}

	factor := math.Pow(1+monthlyRate, months)
	return principal * monthlyRate * factor / (factor - 1), nil
}

// InferLoanType picks a loan sub-type from keyword presence, with
// home > personal > education > general precedence.
func InferLoanType(text string) LoanType {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "home"):
		return LoanHome
	case strings.Contains(lower, "personal"):
		return LoanPersonal
	case strings.Contains(lower, "education"):
		return LoanEducation
	default:
		return LoanGeneral
	}
}

// LoanTerms returns the representative annual rate and tenure for a
// loan type. These are illustrative figures for the EMI example, not a
// quote engine.
func LoanTerms(t LoanType) (ratePercent float64, years int) {
	if t == LoanHome {
		return 8.5, 20
	}
	return 15, 5
}

// RiskProfile buckets an age into an equity/debt mix and investment
// horizon.
func RiskProfile(age int) (profile, horizon string) {
	switch {
	case age < 30:
		return "Aggressive (80% Equity, 20% Debt)", "30+ years for retirement"
	case age < 40:
		return "Moderate-Aggressive (70% Equity, 30% Debt)", "20+ years for retirement"
	case age < 50:
		return "Moderate (60% Equity, 40% Debt)", "15+ years for retirement"
	default:
		return "Conservative (40% Equity, 60% Debt)", "10+ years for retirement"
	}
}

// AllocationEntry is one fund category with its share of the invested
// amount.
type AllocationEntry struct {
	Category string
	Percent  float64
}

// Allocation returns the fund-category split for an investor. Investors
// under 35 get the growth-oriented mix; everyone else, including
// investors of unknown age, gets the balanced mix.
func Allocation(age *int) []AllocationEntry {
	if age != nil && *age < 35 {
		return []AllocationEntry{
			{"Large Cap Funds", 0.40},
			{"Mid/Small Cap", 0.30},
			{"International Funds", 0.20},
			{"Debt Funds", 0.10},
		}
	}
	return []AllocationEntry{
		{"Large Cap Funds", 0.50},
		{"Mid Cap Funds", 0.20},
		{"Debt Funds", 0.20},
		{"ELSS (Tax Saving)", 0.10},
	}
}

// Projection multipliers are flat heuristics carried over from the
// advisory copy (12-15% assumed return band), intentionally not a
// compounding formula.
const (
	tenYearMultiplier    = 3.2
	twentyYearMultiplier = 9.6
)

// Project returns the heuristic 10-year and 20-year projected values
// for an invested amount.
func Project(amount float64) (tenYear, twentyYear float64) {
	return amount * tenYearMultiplier, amount * twentyYearMultiplier
}

// BudgetSplit applies the 50/30/20 rule to a monthly income and sizes a
// six-month emergency fund.
func BudgetSplit(income float64) (needs, wants, savings, emergencyFund float64) {
	return income * 0.50, income * 0.30, income * 0.20, income * 6
}

// MonthsToTargetScore estimates how long a sub-700 score takes to reach
// 750, at roughly 20 points per month, never less than three months.
func MonthsToTargetScore(score int) int {
	months := (750 - score) / 20
	if months < 3 {
		return 3
	}
	return months
}
