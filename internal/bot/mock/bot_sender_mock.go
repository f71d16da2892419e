package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

type MockBot struct {
	SentMessages []tgbotapi.Chattable
	nextMsgID    int
}

func (m *MockBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	m.nextMsgID++
	return tgbotapi.Message{
		MessageID: m.nextMsgID,
		Chat:      &tgbotapi.Chat{ID: 123},
	}, nil
}

func ClearSentMessages(bot *MockBot) {
	bot.SentMessages = nil
}
