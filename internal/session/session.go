package session

import (
	"time"

	"github.com/abhishek-creditor/quiz-frontend/internal/models"
)

type State string

const (
	// StateRegistering is the initial screen: no user, leaderboard shown.
	StateRegistering State = "registering"
	// StateSectionLoading covers the window between a successful registration
	// (or a "next section" action) and the section fetch resolving.
	StateSectionLoading   State = "section_loading"
	StateSectionActive    State = "section_active"
	StateSectionSubmitted State = "section_submitted"
	// StateAllComplete and StateInsufficientScore are display-only interludes
	// that loop back to StateRegistering after a fixed delay.
	StateAllComplete       State = "all_complete"
	StateInsufficientScore State = "insufficient_score"
)

const (
	// PassThreshold is the XP a submission needs to unlock the next section.
	PassThreshold = 100

	InsufficientScoreDelay = 3 * time.Second
	AllCompleteDelay       = 5 * time.Second
)

// Session is one chat's run of the quiz state machine. Exactly one State is
// active at a time; everything else is data scoped to that state.
type Session struct {
	State   State
	User    *models.User
	Section *models.Section
	// Selected maps question ID to the chosen option index. Cleared whenever
	// a section is loaded, frozen once Result is set.
	Selected map[int64]int
	Result   *models.SubmitResult
	// Message is the status line of the registration/loading screens, either
	// a verbatim business error or a generic failure text.
	Message string
	// Generation is bumped on registration and on every section load. Delayed
	// auto-returns capture it and become no-ops once it moves on, so a stale
	// timer never clobbers a newer session.
	Generation uint64

	// Telegram message IDs, needed to edit questions in place after
	// selections and grading.
	QuestionMsgIDs map[int64]int
	ControlMsgID   int
}

func New() *Session {
	return &Session{
		State:          StateRegistering,
		Selected:       make(map[int64]int),
		QuestionMsgIDs: make(map[int64]int),
	}
}

// SetUser stores the registered identity and moves to the loading state.
func (s *Session) SetUser(user models.User) {
	s.User = &user
	s.State = StateSectionLoading
	s.Message = ""
	s.Generation++
}

// BeginSectionLoad clears the per-attempt data ahead of a fetch, mirroring
// the fetch-start reset of the message and prior submit result.
func (s *Session) BeginSectionLoad() {
	s.State = StateSectionLoading
	s.Message = ""
	s.Result = nil
	s.Generation++
}

// SetSection replaces the section wholesale and resets the attempt: empty
// selection map, no submit result, no tracked messages.
func (s *Session) SetSection(section models.Section) {
	s.State = StateSectionActive
	s.Section = &section
	s.Selected = make(map[int64]int)
	s.Result = nil
	s.QuestionMsgIDs = make(map[int64]int)
	s.ControlMsgID = 0
	s.Message = ""
}

// Select records an option choice. Last choice wins per question; edits are
// rejected once a submit result exists or when the question is not part of
// the active section.
func (s *Session) Select(questionID int64, optionIdx int) bool {
	if s.State != StateSectionActive || s.Section == nil || s.Result != nil {
		return false
	}

	question, ok := s.question(questionID)
	if !ok {
		return false
	}
	if optionIdx < 0 || optionIdx >= len(question.Options) {
		return false
	}

	s.Selected[questionID] = optionIdx
	return true
}

// ReadyToSubmit reports whether every question of the active section has a
// recorded selection.
func (s *Session) ReadyToSubmit() bool {
	if s.State != StateSectionActive || s.Section == nil || s.Result != nil {
		return false
	}
	return len(s.Selected) == len(s.Section.Questions)
}

// Answers builds the submit payload over the section's question order, with
// an explicit nil selection for any gap.
func (s *Session) Answers() []models.Answer {
	if s.Section == nil {
		return nil
	}

	answers := make([]models.Answer, 0, len(s.Section.Questions))
	for _, q := range s.Section.Questions {
		answer := models.Answer{QuestionID: q.ID}
		if idx, ok := s.Selected[q.ID]; ok {
			selected := idx
			answer.Selected = &selected
		}
		answers = append(answers, answer)
	}

	return answers
}

// SetResult stores the server-graded outcome and picks the follow-up state
// from the score threshold.
func (s *Session) SetResult(result models.SubmitResult) {
	s.Result = &result
	if result.Score < PassThreshold {
		s.State = StateInsufficientScore
	} else {
		s.State = StateSectionSubmitted
	}
}

// Reset returns the session to the registration screen, discarding the user
// and everything scoped to it.
func (s *Session) Reset() {
	s.State = StateRegistering
	s.User = nil
	s.Section = nil
	s.Selected = make(map[int64]int)
	s.Result = nil
	s.Message = ""
	s.QuestionMsgIDs = make(map[int64]int)
	s.ControlMsgID = 0
	s.Generation++
}

func (s *Session) question(questionID int64) (models.Question, bool) {
	for _, q := range s.Section.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return models.Question{}, false
}
