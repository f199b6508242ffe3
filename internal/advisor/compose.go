package advisor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/finsight-ai/finsight/internal/calc"
	"github.com/finsight-ai/finsight/internal/models"
)

// defaultInvestmentAmount is assumed when an investment query names no
// amount.
const defaultInvestmentAmount = 10000

func composeGreeting() string {
	return `Welcome to FinSight AI!

I'm your comprehensive financial advisor. I can help you with:
* Loan guidance - home, personal and education loans
* Investment planning - mutual funds, stocks, SIPs
* Tax optimization - filing, deductions, planning
* Credit score help - improve your CIBIL score
* Budget planning - smart money management
* Scam detection - protect your finances
* Government schemes - subsidies and benefits
* Credit card advice - choose and use wisely

Example queries:
* "I need a home loan for $300,000"
* "How to invest $50,000 at age 30?"
* "Help me improve my 620 credit score"
* "Create a budget for $6,000 monthly income"

What financial guidance can I provide you today?`
}

func composeLoan(message string, facts models.Facts) string {
	loanType := calc.InferLoanType(message)

	var quote *models.LoanQuote
	if facts.Amount != nil {
		rate, years := calc.LoanTerms(loanType)
		if emi, err := calc.EMI(*facts.Amount, rate, years); err == nil {
			quote = &models.LoanQuote{
				Principal:         *facts.Amount,
				AnnualRate:        rate,
				TenureYears:       years,
				MonthlyEMI:        emi,
				RecommendedIncome: emi * 3,
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "FinSight AI - %s Loan Advisory\n\n", titleCase(string(loanType)))
	b.WriteString("Your Loan Request Analysis:\n")

	if facts.Amount != nil {
		amount := *facts.Amount
		fmt.Fprintf(&b, "* Requested Amount: $%s\n", money(amount))
		switch {
		case amount >= 200000:
			b.WriteString("* Assessment: Large loan - excellent credit score (750+) recommended\n")
		case amount >= 50000:
			b.WriteString("* Assessment: Moderate loan - good credit score (700+) sufficient\n")
		default:
			b.WriteString("* Assessment: Small loan - fair credit score (650+) acceptable\n")
		}
	}

	b.WriteString(`
Current Loan Rates & Options:
* Home loans: 8.5% - 9.5% per annum, up to 30 years tenure
* Personal loans: 11% - 24% per annum, 1-7 years, quick approval
* Education loans: 9% - 15% per annum, up to 15 years, study moratorium
`)

	if quote != nil {
		fmt.Fprintf(&b, "\nEMI Calculation for $%s:\n", money(quote.Principal))
		fmt.Fprintf(&b, "* Estimated Monthly EMI: $%s (%.1f%% over %d years)\n", money2(quote.MonthlyEMI), quote.AnnualRate, quote.TenureYears)
		fmt.Fprintf(&b, "* Recommended Monthly Income: $%s+\n", money2(quote.RecommendedIncome))
	}

	b.WriteString(`
Pro Tips for Better Approval:
* Maintain credit score above 750
* Keep existing EMIs below 40% of income
* Have stable employment (2+ years)
* Compare rates from 3-4 lenders before finalizing`)

	return b.String()
}

func composeInvestment(facts models.Facts) string {
	amount := float64(defaultInvestmentAmount)
	if facts.Amount != nil {
		amount = *facts.Amount
	}

	plan := models.InvestmentPlan{
		Amount:     amount,
		MonthlySIP: amount / 12,
	}
	if facts.Age != nil {
		plan.RiskProfile, plan.TimeHorizon = calc.RiskProfile(*facts.Age)
	}
	for _, entry := range calc.Allocation(facts.Age) {
		plan.Allocations = append(plan.Allocations, models.Allocation{
			Category: entry.Category,
			Percent:  entry.Percent,
			Amount:   amount * entry.Percent,
		})
	}
	plan.TenYearValue, plan.TwentyYear = calc.Project(amount)

	var b strings.Builder
	fmt.Fprintf(&b, "FinSight AI - Investment Strategy for $%s\n\n", money(amount))
	b.WriteString("Your Investment Profile Analysis:\n")

	if facts.Age != nil {
		fmt.Fprintf(&b, "* Age: %d years\n", *facts.Age)
		fmt.Fprintf(&b, "* Recommended Risk Profile: %s\n", plan.RiskProfile)
		fmt.Fprintf(&b, "* Investment Horizon: %s\n", plan.TimeHorizon)
	}

	switch {
	case amount >= 100000:
		b.WriteString("* Investment Category: High-value portfolio, 5-7 different funds recommended\n")
	case amount >= 25000:
		b.WriteString("* Investment Category: Moderate portfolio, 3-4 different funds recommended\n")
	default:
		b.WriteString("* Investment Category: Starter portfolio, 2-3 different funds recommended\n")
	}

	fmt.Fprintf(&b, "\nStrategic Allocation for $%s:\n", money(amount))
	for _, alloc := range plan.Allocations {
		fmt.Fprintf(&b, "* %s: $%s (%.0f%%)\n", alloc.Category, money(alloc.Amount), alloc.Percent*100)
	}

	fmt.Fprintf(&b, `
SIP Strategy:
* Monthly SIP Amount: $%s
* Expected Annual Return: 12-15%%
* 10-Year Projected Value: $%s
* 20-Year Projected Value: $%s

Investment Action Plan:
1. Emergency fund first: 6 months of expenses
2. Start SIP with automated monthly investments
3. Step up the SIP by 10%% annually
4. Stay invested through market dips
5. Rebalance the portfolio annually`,
		money2(plan.MonthlySIP), money2(plan.TenYearValue), money2(plan.TwentyYear))

	return b.String()
}

func composeTax() string {
	return `FinSight AI - Tax Filing Assistance

Key Tax-Saving Sections:
* 80C: 1.5L limit (PPF, ELSS, life insurance)
* 80D: Medical insurance premiums
* 24B: Home loan interest (up to 2L)
* 80E: Education loan interest

Important Deductions for Salaried:
* Standard deduction: 50,000
* HRA exemption (if applicable)
* NPS for an additional 50K deduction

Tax Filing Deadlines:
* ITR filing: July 31st
* Advance tax: quarterly
* TDS certificates: check Form 16

Smart Tax Planning Tips:
1. Invest in ELSS early in the year
2. Keep all receipts organized
3. Plan medical expenses within one year
4. Gather Form 16/16A, bank statements, investment proofs

Need help with a specific tax situation or deduction?`
}

func composeCreditScore(facts models.Facts) string {
	var b strings.Builder
	b.WriteString("FinSight AI - Credit Score Improvement\n")

	if facts.CreditScore != nil {
		score := *facts.CreditScore
		var assessment, action string
		switch {
		case score >= 750:
			assessment = "Excellent! You're in the top tier."
			action = "Maintain current habits and consider premium credit cards."
		case score >= 700:
			assessment = "Good score! You qualify for most loans."
			action = "Fine-tune to reach 750+ for best rates."
		case score >= 650:
			assessment = "Fair score. Room for improvement."
			action = "Focus on payment history and utilization."
		default:
			assessment = "Needs significant improvement."
			action = "Urgent attention required on all factors."
		}
		b.WriteString("\nYour Credit Score Analysis:\n")
		fmt.Fprintf(&b, "* Current Score: %d\n", score)
		fmt.Fprintf(&b, "* Assessment: %s\n", assessment)
		fmt.Fprintf(&b, "* Action Plan: %s\n", action)
	}

	b.WriteString(`
Credit Score Ranges:
* 750-850: Excellent (best rates & terms)
* 700-749: Good (favorable conditions)
* 650-699: Fair (average rates)
* Below 650: Poor (limited options)

Score Improvement Strategy:
* Pay all outstanding dues completely and on time
* Keep credit utilization below 30%
* Don't close old credit accounts
* Avoid multiple new credit applications
* Check your credit report for errors monthly
`)

	if facts.CreditScore != nil && *facts.CreditScore < 700 {
		months := calc.MonthsToTargetScore(*facts.CreditScore)
		b.WriteString("\nYour Improvement Timeline:\n")
		b.WriteString("* Target Score: 750+\n")
		fmt.Fprintf(&b, "* Estimated Time: %d months\n", months)
		b.WriteString("* Monthly Progress: +15-25 points with consistent effort\n")
	}

	b.WriteString("\nStart improving today for better financial opportunities!")
	return b.String()
}

func composeBudget(facts models.Facts) string {
	var b strings.Builder
	b.WriteString("FinSight AI - Smart Budget Planning\n")

	var plan models.BudgetPlan
	if facts.Income != nil {
		needs, wants, savings, emergency := calc.BudgetSplit(*facts.Income)
		plan = models.BudgetPlan{
			Income:        *facts.Income,
			Needs:         needs,
			Wants:         wants,
			Savings:       savings,
			EmergencyFund: emergency,
		}
		b.WriteString("\nYour Income Analysis:\n")
		fmt.Fprintf(&b, "* Monthly Income: $%s\n", money(plan.Income))
		b.WriteString("* Recommended Budget Breakdown:\n")
		fmt.Fprintf(&b, "  - Needs (50%%): $%s\n", money2(plan.Needs))
		fmt.Fprintf(&b, "  - Wants (30%%): $%s\n", money2(plan.Wants))
		fmt.Fprintf(&b, "  - Savings (20%%): $%s\n", money2(plan.Savings))
	}

	b.WriteString(`
The 50-30-20 Rule:
* 50% Needs: rent, groceries, utilities, EMIs
* 30% Wants: entertainment, dining, shopping
* 20% Savings: emergency fund + investments

Smart Saving Strategies:
* Automate savings on salary day
* Use separate accounts for different goals
* Cook more, eat out less
* Cancel unused subscriptions
* Track expenses and review monthly
`)

	if facts.Income != nil {
		b.WriteString("\nYour Financial Goals:\n")
		fmt.Fprintf(&b, "* Emergency Fund Target: $%s (6 months of income)\n", money(plan.EmergencyFund))
		fmt.Fprintf(&b, "* Monthly Investment: $%s\n", money2(plan.Savings))
		fmt.Fprintf(&b, "* Annual Investment: $%s\n", money2(plan.Savings*12))
	}

	b.WriteString("\nStart budgeting today for financial freedom tomorrow!")
	return b.String()
}

func composeScam() string {
	return `FinSight AI - Scam Detection Alert

Common Financial Scams to Avoid:
* Lottery/prize scams: "you've won a lottery you never entered", pay-to-claim fees
* Loan scams: "guaranteed approval", upfront processing fees, no documentation
* Investment scams: get-rich-quick schemes, guaranteed returns above 15%
* Banking scams: fake calls asking for OTP, suspicious links, urgent KYC updates

Red Flags to Watch:
* Unsolicited calls or messages
* Requests for upfront payment
* Pressure tactics and artificial urgency
* Returns that sound too good to be true

Safety Guidelines:
* Never share OTP or PIN with anyone
* Verify caller identity independently
* Check company credentials online
* Consult family or friends before big decisions

If You Suspect a Scam:
1. Don't provide any information
2. Hang up and block the number
3. Report to the authorities
4. Warn friends and family

Stay safe! When in doubt, always verify independently.`
}

func composeGovScheme() string {
	return `FinSight AI - Government Financial Schemes

Popular schemes you might be eligible for:

Housing:
* PMAY: subsidized home loans with interest subsidy up to 2.67L
* Eligibility: annual income up to 18L

Business & Startup:
* MUDRA loan: up to 10L for small business
* Startup India: tax benefits and easier compliance
* Stand-up India: SC/ST and women entrepreneurs

Social Security:
* APY: pension with government co-contribution
* PMJJBY: life insurance at 330/year
* PMSBY: accident insurance at 20/year

Application Process:
1. Check eligibility on the official portals
2. Gather the required documents
3. Apply through official channels only
4. Avoid middlemen and agents

Which specific scheme interests you most?`
}

func composeCreditCard() string {
	return `FinSight AI - Credit Card Guidance

Best Cards by Category:
* Beginners: cashback cards with no or low annual fee
* Travel: reward-point cards with lounge access
* Premium: comprehensive coverage for high spenders

Key Features to Compare:
* Annual fee vs. benefits
* Reward rate (1-5% typical)
* Welcome bonus and lounge access
* Insurance coverage

Smart Usage Tips:
* Pay the full amount by the due date
* Keep utilization below 30%
* Use for planned purchases only
* Set up auto-pay and review statements monthly

Application Requirements:
* Credit score 700+
* Income proof and 6-month bank statements

Red Flags to Avoid:
* Too many cards
* Cash advances
* The minimum-payment trap
* Overspending just for rewards

What's your monthly income and primary use case for the card?`
}

func composeDefault(message string) string {
	return fmt.Sprintf(`FinSight AI - Your Financial Guide

I noticed you asked: %q

I can help you with comprehensive financial advice:
* Loan guidance: "I need a home loan for $300,000"
* Investment planning: "How to invest $50,000 at age 30"
* Tax help: "Tax filing help for freelancers"
* Credit score: "Improve my 620 credit score"
* Budget planning: "Create budget for $6000 income"
* Scam protection: "Is this investment offer legitimate?"
* Government schemes: "First-time home buyer programs"
* Credit cards: "Best credit card for beginners"

For best results, include specific amounts, your age or income level,
and your timeline or goals.

What specific financial topic would you like detailed guidance on?`, message)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// money formats a value with thousands separators, dropping the cents
// when they are zero ("300,000", "1,250.50").
func money(v float64) string {
	s := money2(v)
	return strings.TrimSuffix(s, ".00")
}

// money2 formats a value with thousands separators and two decimals.
func money2(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	intPart, decPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + "." + decPart
}
