package bot

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/internal/service"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type QuizT struct {
	bot      BotSender
	sessions *session.Store
	service  ServiceI
	after    func(d time.Duration, f func()) *time.Timer
}

func NewQuizTAPI(bot BotSender, sessions *session.Store, service ServiceI) *QuizT {
	return &QuizT{
		bot:      bot,
		sessions: sessions,
		service:  service,
		after:    time.AfterFunc,
	}
}

// loadSection fetches the current unlocked section and renders whatever came
// out of it: the section screen, the all-complete banner, or the generic
// failure message.
func (t *QuizT) loadSection(chatID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := t.service.LoadSection(ctx, chatID)
	if err != nil && !errors.Is(err, service.ErrNoActiveUser) {
		log.Printf("Section fetch failed for chat %d: %v", chatID, err)
	}

	switch sess.State {
	case session.StateSectionActive:
		t.renderSection(chatID, sess)

	case session.StateAllComplete:
		t.showAllComplete(chatID, sess.Generation)

	default:
		text := sess.Message
		if text == "" {
			text = service.SectionUnavailableMsg
		}
		msg := tgbotapi.NewMessage(chatID, text)
		sendMessage(t.bot, msg)
	}
}

func (t *QuizT) renderSection(chatID int64, sess session.Session) {
	section := sess.Section

	header := fmt.Sprintf("📘 Section %d: %s", section.Number, section.Title)
	if bar := progressBar(*section); bar != "" {
		header += "\n" + bar
	}
	sendMessage(t.bot, tgbotapi.NewMessage(chatID, header))

	for i, q := range section.Questions {
		msg := tgbotapi.NewMessage(chatID, questionText(i, q))
		keyboard := optionsKeyboard(q, -1)
		msg.ReplyMarkup = &keyboard

		sent, err := t.bot.Send(msg)
		if err != nil {
			log.Printf("Failed to send question %d to chat %d: %v", q.ID, chatID, err)
			continue
		}

		questionID := q.ID
		t.sessions.Update(chatID, func(s *session.Session) {
			s.QuestionMsgIDs[questionID] = sent.MessageID
		})
	}
}

// handleSelect records an option choice and re-renders the question with the
// chosen option marked. Rejected edits (submitted section, stale buttons) are
// inert, matching the disabled inputs of the result screen.
func (t *QuizT) handleSelect(query *tgbotapi.CallbackQuery) {
	questionID, optionIdx, ok := parseAnswerCallback(query.Data)
	if !ok {
		log.Printf("Malformed answer callback: %s", query.Data)
		return
	}

	chatID := query.Message.Chat.ID

	sess, ok := t.service.Select(chatID, questionID, optionIdx)
	if !ok {
		return
	}

	idx, question, found := findQuestion(*sess.Section, questionID)
	if !found {
		return
	}

	if msgID, tracked := sess.QuestionMsgIDs[questionID]; tracked {
		edit := tgbotapi.NewEditMessageTextAndMarkup(
			chatID,
			msgID,
			questionText(idx, question),
			optionsKeyboard(question, optionIdx),
		)
		sendMessage(t.bot, edit)
	}

	if sess.ReadyToSubmit() && sess.ControlMsgID == 0 {
		t.showSubmitControl(chatID)
	}
}

// showSubmitControl appears once every question has an answer; before that
// there is nothing to press, which is this surface's version of a disabled
// submit button.
func (t *QuizT) showSubmitControl(chatID int64) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📤 Submit Section", callbackSubmit),
		),
	)

	msg := tgbotapi.NewMessage(chatID, "All questions answered.")
	msg.ReplyMarkup = &keyboard

	sent, err := t.bot.Send(msg)
	if err != nil {
		log.Printf("Failed to send submit control to chat %d: %v", chatID, err)
		return
	}

	t.sessions.Update(chatID, func(s *session.Session) {
		s.ControlMsgID = sent.MessageID
	})
}

func (t *QuizT) handleSubmit(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	sess, err := t.service.Submit(ctx, chatID)
	if err != nil {
		if errors.Is(err, service.ErrNotReady) || errors.Is(err, service.ErrNoActiveUser) {
			return
		}
		log.Printf("Submission failed for chat %d: %v", chatID, err)
		msg := tgbotapi.NewMessage(chatID, "❌ Submission failed. Please try again.")
		sendMessage(t.bot, msg)
		return
	}

	t.renderResults(chatID, sess)
}

// renderResults rewrites every question with the server's judgement and
// replaces the submit control with the outcome summary. The client never
// decides correctness itself.
func (t *QuizT) renderResults(chatID int64, sess session.Session) {
	result := sess.Result

	for i, q := range sess.Section.Questions {
		msgID, tracked := sess.QuestionMsgIDs[q.ID]
		if !tracked {
			continue
		}

		edit := tgbotapi.NewEditMessageText(chatID, msgID, resultText(i, q, *result))
		sendMessage(t.bot, edit)
	}

	summary := summaryText(*result)

	if sess.State == session.StateInsufficientScore {
		summary += "\n\n" + insufficientScoreBanner(result.Score)
		t.replaceControl(chatID, sess.ControlMsgID, summary, nil)
		t.scheduleReturn(chatID, sess.Generation, session.InsufficientScoreDelay)
		return
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➡️ Next Section", callbackNextSection),
		),
	)
	t.replaceControl(chatID, sess.ControlMsgID, summary, &keyboard)
}

func (t *QuizT) handleNextSection(query *tgbotapi.CallbackQuery) {
	chatID := query.Message.Chat.ID

	sess := t.service.Session(chatID)
	if sess.State != session.StateSectionSubmitted || sess.Result == nil || sess.Result.Score < session.PassThreshold {
		return
	}

	t.loadSection(chatID)
}

func (t *QuizT) showAllComplete(chatID int64, generation uint64) {
	text := "🎉 Congratulations! 🎉\n" +
		"You have completed all sections!\n" +
		"You are a quiz master! Returning to registration in a few seconds..."

	sendMessage(t.bot, tgbotapi.NewMessage(chatID, text))

	t.scheduleReturn(chatID, generation, session.AllCompleteDelay)
}

// scheduleReturn arms the delayed auto-return to the registration screen.
// The generation check drops timers that outlived their session.
func (t *QuizT) scheduleReturn(chatID int64, generation uint64, delay time.Duration) {
	t.after(delay, func() {
		if !t.service.ResetIfCurrent(chatID, generation) {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		t.service.RefreshLeaderboard(ctx)
		t.showRegistration(chatID, "")
	})
}

func (t *QuizT) replaceControl(chatID int64, controlMsgID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if controlMsgID != 0 {
		if keyboard != nil {
			sendMessage(t.bot, tgbotapi.NewEditMessageTextAndMarkup(chatID, controlMsgID, text, *keyboard))
		} else {
			sendMessage(t.bot, tgbotapi.NewEditMessageText(chatID, controlMsgID, text))
		}
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	sendMessage(t.bot, msg)
}

func questionText(idx int, q models.Question) string {
	return fmt.Sprintf("Q%d: %s", idx+1, q.Text)
}

// optionsKeyboard renders one button per option, marking selectedIdx when it
// is non-negative.
func optionsKeyboard(q models.Question, selectedIdx int) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))

	for i, opt := range q.Options {
		label := opt.Text
		if i == selectedIdx {
			label = "🔘 " + label
		}

		data := fmt.Sprintf("%s%d_%d", callbackAnswerPrefix, q.ID, i)
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, data),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func progressBar(section models.Section) string {
	if len(section.SectionProgress) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, p := range section.SectionProgress {
		switch {
		case p.Completed:
			sb.WriteString("🟩")
		case p.SectionNumber == section.Number:
			sb.WriteString("🔵")
		default:
			sb.WriteString("⬜")
		}
	}

	return sb.String()
}

// resultText shows each option with the server's verdict on the recorded
// selection: green for a correct pick, red for a wrong one.
func resultText(idx int, q models.Question, result models.SubmitResult) string {
	var sb strings.Builder

	sb.WriteString(questionText(idx, q))
	sb.WriteString("\n")

	ans, graded := result.ResultFor(q.ID)

	for i, opt := range q.Options {
		marker := "▫️"
		if graded && ans.Selected != nil && *ans.Selected == i {
			if ans.IsCorrect {
				marker = "🟩"
			} else {
				marker = "🟥"
			}
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, opt.Text))
	}

	if graded {
		if ans.IsCorrect {
			sb.WriteString("✅ Correct!")
		} else {
			sb.WriteString("❌ Incorrect.")
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func summaryText(result models.SubmitResult) string {
	title := "Section Complete"
	if result.IsNewHighscore {
		title = "🎉 New Highscore!"
	}
	return fmt.Sprintf("%s\nScore: %d XP", title, result.Score)
}

func insufficientScoreBanner(score int) string {
	return fmt.Sprintf("😔 Oops! Not Enough Score\n"+
		"You scored %d XP\n"+
		"You need at least %d XP to proceed to the next section.\n"+
		"Returning to registration in a few seconds...", score, session.PassThreshold)
}

func parseAnswerCallback(data string) (questionID int64, optionIdx int, ok bool) {
	raw := strings.TrimPrefix(data, callbackAnswerPrefix)
	parts := strings.Split(raw, "_")
	if len(parts) != 2 {
		return 0, 0, false
	}

	questionID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}

	optionIdx, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return questionID, optionIdx, true
}

func findQuestion(section models.Section, questionID int64) (int, models.Question, bool) {
	for i, q := range section.Questions {
		if q.ID == questionID {
			return i, q, true
		}
	}
	return 0, models.Question{}, false
}
