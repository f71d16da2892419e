package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/abhishek-creditor/quiz-frontend/internal/config"
	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/abhishek-creditor/quiz-frontend/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuizAPI talks to the remote quiz service. All state lives server-side;
// the client only ever reads whole resources and posts whole submissions.
type QuizAPI struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewQuizAPI(cfg config.APIConfig, log *zap.Logger) *QuizAPI {
	return &QuizAPI{
		baseURL: strings.TrimRight(cfg.BaseURL, "/") + "/",
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// Leaderboard fetches the ranked list. Ranking order is the server's; the
// caller decides what to do with failures (the service layer degrades to an
// empty list).
func (c *QuizAPI) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"leaderboard", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req, "leaderboard")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("leaderboard: unexpected status %d", resp.StatusCode)
	}

	var entries []models.LeaderboardEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, &DecodeError{Endpoint: "leaderboard", Err: err}
	}

	return entries, nil
}

// RegisterUser creates or logs in a user. A service-reported error comes back
// in RegisterResult.Error and is meant to be shown verbatim; the returned
// error covers transport and decode failures only.
func (c *QuizAPI) RegisterUser(ctx context.Context, name, email string) (models.RegisterResult, error) {
	body, err := json.Marshal(map[string]string{"name": name, "email": email})
	if err != nil {
		return models.RegisterResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"user", bytes.NewReader(body))
	if err != nil {
		return models.RegisterResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, "user")
	if err != nil {
		return models.RegisterResult{}, err
	}
	defer resp.Body.Close()

	var data struct {
		models.User
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.RegisterResult{}, &DecodeError{Endpoint: "user", Err: err}
	}

	if data.Error != "" {
		return models.RegisterResult{Error: data.Error}, nil
	}

	if err := validator.ValidateStruct(data.User); err != nil {
		return models.RegisterResult{}, &DecodeError{Endpoint: "user", Err: err}
	}

	return models.RegisterResult{User: data.User}, nil
}

// CurrentSection fetches the single unlocked section for the user. A 404
// means every section is done and maps to ErrNoSection; any other non-2xx
// status is a plain failure.
func (c *QuizAPI) CurrentSection(ctx context.Context, userID int64) (models.Section, error) {
	u := c.baseURL + "quiz/current?userId=" + url.QueryEscape(strconv.FormatInt(userID, 10))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.Section{}, err
	}

	resp, err := c.do(req, "quiz/current")
	if err != nil {
		return models.Section{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return models.Section{}, ErrNoSection
	case resp.StatusCode != http.StatusOK:
		return models.Section{}, fmt.Errorf("quiz/current: unexpected status %d", resp.StatusCode)
	}

	var section models.Section
	if err := json.NewDecoder(resp.Body).Decode(&section); err != nil {
		return models.Section{}, &DecodeError{Endpoint: "quiz/current", Err: err}
	}

	if err := validator.ValidateStruct(section); err != nil {
		return models.Section{}, &DecodeError{Endpoint: "quiz/current", Err: err}
	}

	return section, nil
}

// SubmitSection posts the full answer list for a section. Every question of
// the section must appear in answers, with Selected nil when unanswered.
func (c *QuizAPI) SubmitSection(ctx context.Context, userID, sectionID int64, answers []models.Answer) (models.SubmitResult, error) {
	payload := struct {
		UserID    int64           `json:"userId"`
		SectionID int64           `json:"sectionId"`
		Answers   []models.Answer `json:"answers"`
	}{UserID: userID, SectionID: sectionID, Answers: answers}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.SubmitResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"quiz/submit-section", bytes.NewReader(body))
	if err != nil {
		return models.SubmitResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req, "quiz/submit-section")
	if err != nil {
		return models.SubmitResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.SubmitResult{}, fmt.Errorf("quiz/submit-section: unexpected status %d", resp.StatusCode)
	}

	var result models.SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.SubmitResult{}, &DecodeError{Endpoint: "quiz/submit-section", Err: err}
	}

	if err := validator.ValidateStruct(result); err != nil {
		return models.SubmitResult{}, &DecodeError{Endpoint: "quiz/submit-section", Err: err}
	}

	return result, nil
}

func (c *QuizAPI) do(req *http.Request, endpoint string) (*http.Response, error) {
	reqID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("quiz api request failed",
			zap.String("request_id", reqID),
			zap.String("endpoint", endpoint),
			zap.Error(err))
		return nil, err
	}

	c.log.Debug("quiz api request",
		zap.String("request_id", reqID),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	return resp, nil
}
