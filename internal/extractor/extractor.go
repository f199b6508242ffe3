package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/finsight-ai/finsight/internal/models"
)

// Pattern lists are ordered: the first pattern that yields a match wins
// and later patterns are not consulted. The order is a contract.
var (
	amountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\$?([\d,]+(?:\.\d{2})?)`), // $300,000 or 300,000
		regexp.MustCompile(`(\d+)k`),                  // 300k
		regexp.MustCompile(`(\d+)\s*thousand`),        // 300 thousand
		regexp.MustCompile(`(\d+)\s*million`),         // 3 million
	}

	agePatterns = []*regexp.Regexp{
		regexp.MustCompile(`i'm (\d+)`),
		regexp.MustCompile(`i am (\d+)`),
		regexp.MustCompile(`(\d+) years old`),
		regexp.MustCompile(`age (\d+)`),
	}

	incomePatterns = []*regexp.Regexp{
		regexp.MustCompile(`earn \$?([\d,]+)`),
		regexp.MustCompile(`salary \$?([\d,]+)`),
		regexp.MustCompile(`income \$?([\d,]+)`),
		regexp.MustCompile(`make \$?([\d,]+)`),
	}

	creditScorePatterns = []*regexp.Regexp{
		regexp.MustCompile(`credit score.*?(\d{3})`),
		regexp.MustCompile(`cibil.*?(\d{3})`),
		regexp.MustCompile(`score.*?(\d{3})`),
	}
)

const (
	minCreditScore = 300
	maxCreditScore = 850
)

// Extract pulls amount, age, income and credit score out of a raw
// message. It is total: a field that cannot be matched or parsed comes
// back nil, never an error. All four fields are extracted independently
// over the same text.
func Extract(text string) models.Facts {
	lower := strings.ToLower(text)
	return models.Facts{
		Amount:      extractAmount(lower),
		Age:         extractAge(lower),
		Income:      extractIncome(lower),
		CreditScore: extractCreditScore(lower),
	}
}

func extractAmount(lower string) *float64 {
	for _, p := range amountPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		// Unit scaling keys off the whole message, not the matched
		// sub-pattern: "300" next to a stray "k" or "million" anywhere
		// in the text still gets scaled.
		if strings.Contains(lower, "k") {
			amount *= 1_000
		} else if strings.Contains(lower, "million") {
			amount *= 1_000_000
		}
		return &amount
	}
	return nil
}

func extractAge(lower string) *int {
	for _, p := range agePatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		age, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		return &age
	}
	return nil
}

func extractIncome(lower string) *float64 {
	for _, p := range incomePatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		income, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		return &income
	}
	return nil
}

func extractCreditScore(lower string) *int {
	for _, p := range creditScorePatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		score, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// Out-of-range values are treated as no match for this
		// pattern, not clamped.
		if score >= minCreditScore && score <= maxCreditScore {
			return &score
		}
	}
	return nil
}
