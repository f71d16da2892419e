package models

// Answer is one entry of the submit payload. Selected stays nil for an
// unanswered question so the service grades it instead of skipping it.
type Answer struct {
	QuestionID int64 `json:"questionId"`
	Selected   *int  `json:"selected"`
}

type SubmitResult struct {
	Score          int            `json:"score"`
	IsNewHighscore bool           `json:"isNewHighscore"`
	AnswerResults  []AnswerResult `json:"answerResults" validate:"required,dive"`
}

type AnswerResult struct {
	QuestionID int64 `json:"questionId" validate:"required"`
	Selected   *int  `json:"selected"`
	IsCorrect  bool  `json:"isCorrect"`
}

func (r SubmitResult) ResultFor(questionID int64) (AnswerResult, bool) {
	for _, ar := range r.AnswerResults {
		if ar.QuestionID == questionID {
			return ar, true
		}
	}
	return AnswerResult{}, false
}
