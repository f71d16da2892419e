package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/abhishek-creditor/quiz-frontend/internal/client"
	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"
	"go.uber.org/zap"
)

// SectionUnavailableMsg is shown when the section fetch fails for any reason
// other than the all-complete signal.
const SectionUnavailableMsg = "No unlocked section found or you have completed all sections!"

var (
	ErrNameEmailRequired = errors.New("name and email are required")
	ErrNotReady          = errors.New("section is not fully answered")
	ErrNoActiveUser      = errors.New("no registered user in session")
)

// QuizS drives the quiz session state machine: registration, section loads,
// answer collection and submission, plus the held leaderboard.
type QuizS struct {
	api      QuizAPII
	sessions *session.Store
	log      *zap.Logger

	mu          sync.RWMutex
	leaderboard []models.LeaderboardEntry
}

func NewQuizService(api QuizAPII, sessions *session.Store, log *zap.Logger) *QuizS {
	return &QuizS{
		api:      api,
		sessions: sessions,
		log:      log,
	}
}

// RefreshLeaderboard replaces the held ranked list. Failure is silent toward
// the user: the list degrades to empty and the cause only goes to the log.
func (q *QuizS) RefreshLeaderboard(ctx context.Context) {
	entries, err := q.api.Leaderboard(ctx)
	if err != nil {
		q.log.Warn("leaderboard fetch failed, degrading to empty", zap.Error(err))
		entries = nil
	}

	q.mu.Lock()
	q.leaderboard = entries
	q.mu.Unlock()
}

// CachedLeaderboard returns the list as of the last refresh, in server order.
func (q *QuizS) CachedLeaderboard() []models.LeaderboardEntry {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.leaderboard
}

// Register creates or logs in a user. A business error from the service
// lands verbatim in the session message with the state unchanged; a non-nil
// error means transport or decode failure and gets generic treatment.
func (q *QuizS) Register(ctx context.Context, chatID int64, name, email string) (session.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return q.sessions.Get(chatID), ErrNameEmailRequired
	}

	q.sessions.Update(chatID, func(s *session.Session) {
		s.Message = ""
	})

	result, err := q.api.RegisterUser(ctx, name, email)
	if err != nil {
		q.log.Warn("registration request failed", zap.Int64("chat_id", chatID), zap.Error(err))
		return q.sessions.Get(chatID), err
	}

	if result.Error != "" {
		return q.sessions.Update(chatID, func(s *session.Session) {
			s.State = session.StateRegistering
			s.Message = result.Error
		}), nil
	}

	sess := q.sessions.Update(chatID, func(s *session.Session) {
		s.SetUser(result.User)
	})

	q.log.Info("user registered",
		zap.Int64("chat_id", chatID),
		zap.Int64("user_id", result.User.ID),
		zap.String("name", result.User.Name))

	return sess, nil
}

// LoadSection fetches the current unlocked section for the session's user.
// The returned snapshot's state tells the outcome apart: SectionActive on
// success, AllComplete on the not-found signal, SectionLoading with the
// generic message on anything else.
func (q *QuizS) LoadSection(ctx context.Context, chatID int64) (session.Session, error) {
	sess := q.sessions.Get(chatID)
	if sess.User == nil {
		return sess, ErrNoActiveUser
	}
	userID := sess.User.ID

	q.sessions.Update(chatID, func(s *session.Session) {
		s.BeginSectionLoad()
	})

	section, err := q.api.CurrentSection(ctx, userID)
	switch {
	case err == nil:
		return q.sessions.Update(chatID, func(s *session.Session) {
			s.SetSection(section)
		}), nil

	case errors.Is(err, client.ErrNoSection):
		q.log.Info("all sections complete", zap.Int64("user_id", userID))
		return q.sessions.Update(chatID, func(s *session.Session) {
			s.State = session.StateAllComplete
			s.Section = nil
		}), nil

	default:
		q.log.Warn("section fetch failed", zap.Int64("user_id", userID), zap.Error(err))
		return q.sessions.Update(chatID, func(s *session.Session) {
			s.Section = nil
			s.Message = SectionUnavailableMsg
		}), err
	}
}

// Select records an option choice for a question. It reports false when the
// session rejects the edit (no active section, unknown question, or a submit
// result already freezing the attempt).
func (q *QuizS) Select(chatID, questionID int64, optionIdx int) (session.Session, bool) {
	var ok bool
	sess := q.sessions.Update(chatID, func(s *session.Session) {
		ok = s.Select(questionID, optionIdx)
	})
	return sess, ok
}

// Submit posts the collected answers and stores the graded result, which
// decides between SectionSubmitted (score at or above the threshold) and
// InsufficientScore. The leaderboard is refreshed after every completed
// submission, never before the result is stored.
func (q *QuizS) Submit(ctx context.Context, chatID int64) (session.Session, error) {
	sess := q.sessions.Get(chatID)
	if sess.User == nil || sess.Section == nil {
		return sess, ErrNoActiveUser
	}
	if !sess.ReadyToSubmit() {
		return sess, ErrNotReady
	}

	result, err := q.api.SubmitSection(ctx, sess.User.ID, sess.Section.ID, sess.Answers())
	if err != nil {
		q.log.Warn("submission failed",
			zap.Int64("user_id", sess.User.ID),
			zap.Int64("section_id", sess.Section.ID),
			zap.Error(err))
		return q.sessions.Get(chatID), err
	}

	sess = q.sessions.Update(chatID, func(s *session.Session) {
		s.SetResult(result)
	})

	q.log.Info("section submitted",
		zap.Int64("user_id", sess.User.ID),
		zap.Int64("section_id", sess.Section.ID),
		zap.Int("score", result.Score),
		zap.Bool("new_highscore", result.IsNewHighscore))

	q.RefreshLeaderboard(ctx)

	return sess, nil
}

// Session returns the current snapshot for a chat.
func (q *QuizS) Session(chatID int64) session.Session {
	return q.sessions.Get(chatID)
}

// ResetIfCurrent executes a delayed auto-return to the registration screen.
// It reports false when the captured generation is stale, in which case the
// newer session stays untouched.
func (q *QuizS) ResetIfCurrent(chatID int64, generation uint64) bool {
	return q.sessions.ResetIfCurrent(chatID, generation)
}
