package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/finsight-ai/finsight/internal/advisor"
	"github.com/finsight-ai/finsight/internal/models"
	"github.com/finsight-ai/finsight/internal/storage"
)

// Bot is the Telegram front-end over the advisory engine. It drives the
// same pipeline as the HTTP server.
type Bot struct {
	api     *tgbotapi.BotAPI
	advisor advisor.Advisor
	storage storage.Storage
	logger  *zap.Logger
}

func New(token string, adv advisor.Advisor, store storage.Storage, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Bot{
		api:     api,
		advisor: adv,
		storage: store,
		logger:  logger,
	}, nil
}

func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if update.Message == nil {
			continue
		}

		go b.handleMessage(update.Message)
	}

	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	ctx := context.Background()

	if message.IsCommand() {
		b.handleCommand(ctx, message)
		return
	}

	content := message.Text
	if message.Caption != "" {
		content = message.Caption
	}

	userID := strconv.FormatInt(message.From.ID, 10)
	response, intent := b.advisor.Advise(ctx, content)

	record := &models.ChatRecord{
		ID:        uuid.New().String(),
		UserID:    userID,
		Message:   content,
		Intent:    intent,
		Response:  response,
		CreatedAt: time.Now().UTC(),
	}
	if err := b.storage.SaveChat(ctx, record); err != nil {
		b.logger.Error("Failed to save chat",
			zap.Error(err),
			zap.String("chat_id", record.ID),
			zap.String("user_id", userID))
	}

	b.sendMessage(message.Chat.ID, response)
}

func (b *Bot) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		b.handleStart(message)
	case "help":
		b.handleHelp(message)
	case "history":
		b.handleHistory(ctx, message)
	default:
		b.sendMessage(message.Chat.ID, "Unknown command. Use /help to see available commands.")
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	welcome := `Welcome to FinSight AI!
I'm your financial advisor for loans, investments, taxes, credit scores,
budgeting, scams, government schemes and credit cards.

Just describe your situation, for example:
"I need a home loan for $300,000"
"How to invest $50,000 at age 30?"

Use /help to see all available commands.`

	b.sendMessage(message.Chat.ID, welcome)
}

func (b *Bot) handleHelp(message *tgbotapi.Message) {
	help := `Available commands:
/start - Start the advisor
/help - Show this help message
/history - Show your recent questions

Just send me any financial question and I'll compose advice with
concrete numbers when you mention amounts, your age, income or
credit score.`

	b.sendMessage(message.Chat.ID, help)
}

func (b *Bot) handleHistory(ctx context.Context, message *tgbotapi.Message) {
	userID := strconv.FormatInt(message.From.ID, 10)
	chats, err := b.storage.GetUserChats(ctx, userID, 5)
	if err != nil {
		b.logger.Error("Failed to get user chats",
			zap.Error(err),
			zap.String("user_id", userID))
		b.sendMessage(message.Chat.ID, "Sorry, I couldn't retrieve your history. Please try again later.")
		return
	}

	if len(chats) == 0 {
		b.sendMessage(message.Chat.ID, "You don't have any questions yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Your recent questions:\n\n")
	for _, chat := range chats {
		fmt.Fprintf(&sb, "[%s] %s\n", chat.Intent, chat.Message)
	}

	b.sendMessage(message.Chat.ID, sb.String())
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Error("Failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID))
	}
}
