package bot

import (
	"context"
	"log"

	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type ServiceI interface {
	RefreshLeaderboard(ctx context.Context)
	CachedLeaderboard() []models.LeaderboardEntry
	Register(ctx context.Context, chatID int64, name, email string) (session.Session, error)
	LoadSection(ctx context.Context, chatID int64) (session.Session, error)
	Select(chatID, questionID int64, optionIdx int) (session.Session, bool)
	Submit(ctx context.Context, chatID int64) (session.Session, error)
	Session(chatID int64) session.Session
	ResetIfCurrent(chatID int64, generation uint64) bool
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type TelegramAPI struct {
	bot  *tgbotapi.BotAPI
	quiz *QuizT
}

func NewTelegramAPI(botToken, env string, service ServiceI, sessions *session.Store) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	if env == "development" {
		bot.Debug = true
	} else {
		bot.Debug = false
	}

	return &TelegramAPI{
		bot:  bot,
		quiz: NewQuizTAPI(bot, sessions, service),
	}, nil
}

func (t *TelegramAPI) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			if update.Message.IsCommand() {
				t.handleCommand(update.Message)
			} else {
				t.handleMessage(update.Message)
			}
			continue
		}

		if update.CallbackQuery != nil {
			t.handleCallbackQuery(update.CallbackQuery)
		}
	}
}

func sendMessage(bot BotSender, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send message: %v", err)
	} else {
		log.Printf("Sent message to %d", sentMsg.Chat.ID)
	}
}
