package advisor

import (
	"context"

	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/classifier"
	"github.com/finsight-ai/finsight/internal/extractor"
	"github.com/finsight-ai/finsight/internal/models"
)

// Advisor turns a free-text message into a composed advisory response.
type Advisor interface {
	Advise(ctx context.Context, message string) (response string, intent models.Intent)
}

// Engine is the deterministic advisory pipeline: extract facts,
// classify the intent, run the intent-specific calculators and compose
// the response. It holds no per-request state and is safe for
// concurrent use; the response is a pure function of the message.
type Engine struct {
	classifier classifier.Classifier
	logger     *zap.Logger
}

func NewEngine(clf classifier.Classifier, logger *zap.Logger) *Engine {
	return &Engine{
		classifier: clf,
		logger:     logger,
	}
}

// BuildAdvice is the end-to-end entry point the transport layers call
// per chat message. It is total: any input, including empty or
// adversarial text, yields a composed response.
func (e *Engine) BuildAdvice(message string) string {
	response, _ := e.Advise(context.Background(), message)
	return response
}

func (e *Engine) Advise(_ context.Context, message string) (string, models.Intent) {
	facts := extractor.Extract(message)
	intent := e.classifier.Classify(message)

	e.logger.Debug("composing advice",
		zap.String("intent", string(intent)),
		zap.Bool("has_amount", facts.Amount != nil),
		zap.Bool("has_age", facts.Age != nil),
		zap.Bool("has_income", facts.Income != nil),
		zap.Bool("has_credit_score", facts.CreditScore != nil))

	var response string
	switch intent {
	case models.IntentGreeting:
		response = composeGreeting()
	case models.IntentLoan:
		response = composeLoan(message, facts)
	case models.IntentInvestment:
		response = composeInvestment(facts)
	case models.IntentTax:
		response = composeTax()
	case models.IntentCreditScore:
		response = composeCreditScore(facts)
	case models.IntentBudget:
		response = composeBudget(facts)
	case models.IntentGovScheme:
		response = composeGovScheme()
	case models.IntentScam:
		response = composeScam()
	case models.IntentCreditCard:
		response = composeCreditCard()
	default:
		response = composeDefault(message)
	}
	return response, intent
}
