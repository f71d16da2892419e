package service

import (
	"context"

	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/internal/session"
	"go.uber.org/zap"
)

type QuizAPII interface {
	Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	RegisterUser(ctx context.Context, name, email string) (models.RegisterResult, error)
	CurrentSection(ctx context.Context, userID int64) (models.Section, error)
	SubmitSection(ctx context.Context, userID, sectionID int64, answers []models.Answer) (models.SubmitResult, error)
}

type Service struct {
	*QuizS
}

func InitServices(api QuizAPII, sessions *session.Store, log *zap.Logger) *Service {
	return &Service{
		QuizS: NewQuizService(api, sessions, log),
	}
}
