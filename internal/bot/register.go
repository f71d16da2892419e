package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/internal/service"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const registerHint = "📝 Register / Login\nSend your name and email like this:\n\nName, email@example.com"

// handleStart behaves like a page load: any previous session for this chat
// is discarded, the leaderboard is refreshed and the registration screen is
// shown.
func (t *QuizT) handleStart(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	t.sessions.Update(message.Chat.ID, func(s *session.Session) {
		s.Reset()
	})

	t.service.RefreshLeaderboard(ctx)
	t.showRegistration(message.Chat.ID, "")
}

func (t *QuizT) handleTextInput(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	sess := t.service.Session(chatID)

	if sess.State != session.StateRegistering {
		msg := tgbotapi.NewMessage(chatID, "Use the buttons above to play, or /start to begin again.")
		sendMessage(t.bot, msg)
		return
	}

	name, email, ok := parseRegistration(message.Text)
	if !ok {
		msg := tgbotapi.NewMessage(chatID, registerHint)
		sendMessage(t.bot, msg)
		return
	}

	t.register(chatID, name, email)
}

func (t *QuizT) register(chatID int64, name, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := t.service.Register(ctx, chatID, name, email)
	if err != nil {
		if errors.Is(err, service.ErrNameEmailRequired) {
			msg := tgbotapi.NewMessage(chatID, registerHint)
			sendMessage(t.bot, msg)
			return
		}
		log.Printf("Registration failed for chat %d: %v", chatID, err)
		t.showRegistration(chatID, "Registration failed. Please try again.")
		return
	}

	// A session still in the registering state carries the service's own
	// error text, shown verbatim.
	if sess.State == session.StateRegistering {
		t.showRegistration(chatID, sess.Message)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("👋 Welcome, %s!", sess.User.Name))
	sendMessage(t.bot, msg)

	t.loadSection(chatID)
}

func (t *QuizT) showRegistration(chatID int64, statusMsg string) {
	var sb strings.Builder

	if statusMsg != "" {
		sb.WriteString("⚠️ ")
		sb.WriteString(statusMsg)
		sb.WriteString("\n\n")
	}

	sb.WriteString(registerHint)
	sb.WriteString("\n\n")
	sb.WriteString(formatLeaderboard(t.service.CachedLeaderboard()))

	msg := tgbotapi.NewMessage(chatID, sb.String())
	sendMessage(t.bot, msg)
}

func formatLeaderboard(entries []models.LeaderboardEntry) string {
	var sb strings.Builder

	sb.WriteString("🏆 Leaderboard\n")

	if len(entries) == 0 {
		sb.WriteString("No users or scores yet.")
		return sb.String()
	}

	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s: %d XP\n", i+1, entry.Username, entry.XP))
	}

	return strings.TrimRight(sb.String(), "\n")
}

func parseRegistration(text string) (name, email string, ok bool) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	name = strings.TrimSpace(parts[0])
	email = strings.TrimSpace(parts[1])
	if name == "" || email == "" {
		return "", "", false
	}

	return name, email, true
}
