package bot

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	callbackAnswerPrefix = "ans_"
	callbackSubmit       = "submit_section"
	callbackNextSection  = "next_section"
)

func (t *TelegramAPI) handleCommand(message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.quiz.handleStart(message)
	case "help":
		t.handleHelpCommand(message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Unknown command. Use /start")
		sendMessage(t.bot, msg)
	}
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `🎮 Quiz Game

/start - restart and show the registration screen
/help - this message

How to play:
• Register with your name and email: Name, email@example.com
• Answer every question of the section, then press Submit Section
• Score at least 100 XP to unlock the next section
• The leaderboard on the registration screen shows everyone's XP`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, msg)
}

func (t *TelegramAPI) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		log.Printf("Message without sender: %d", message.Chat.ID)
		return
	}

	t.quiz.handleTextInput(message)
}

func (t *TelegramAPI) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, "")
	callback.ShowAlert = false
	if _, err := t.bot.Request(callback); err != nil {
		log.Printf("Failed to answer callback: %v", err)
	}

	if query.Message == nil {
		log.Printf("CallbackQuery without message: %v", query.ID)
		return
	}

	data := query.Data

	switch {
	case strings.HasPrefix(data, callbackAnswerPrefix):
		t.quiz.handleSelect(query)

	case data == callbackSubmit:
		t.quiz.handleSubmit(query)

	case data == callbackNextSection:
		t.quiz.handleNextSection(query)

	default:
		log.Printf("Unknown callback data: %s from user %d", data, query.From.ID)
	}
}
