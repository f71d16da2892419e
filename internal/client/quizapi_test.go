package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abhishek-creditor/quiz-frontend/internal/config"
	"github.com/abhishek-creditor/quiz-frontend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *QuizAPI {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewQuizAPI(config.APIConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	}, zap.NewNop())
}

func TestQuizAPI_Leaderboard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []models.LeaderboardEntry
		wantErr bool
	}{
		{
			name: "success: server order preserved",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/leaderboard", r.URL.Path)
				json.NewEncoder(w).Encode([]models.LeaderboardEntry{
					{Username: "bob", XP: 300},
					{Username: "ada", XP: 120},
				})
			},
			want: []models.LeaderboardEntry{
				{Username: "bob", XP: 300},
				{Username: "ada", XP: 120},
			},
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"not":"a list"`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)

			got, err := api.Leaderboard(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuizAPI_RegisterUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantUser   models.User
		wantAPIErr string
		wantErr    bool
		wantDecode bool
	}{
		{
			name: "success: identity returned",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/user", r.URL.Path)
				assert.Equal(t, http.MethodPost, r.Method)

				var body map[string]string
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, "Ada", body["name"])
				assert.Equal(t, "ada@x.com", body["email"])

				json.NewEncoder(w).Encode(models.User{ID: 1, Name: "Ada", Email: "ada@x.com"})
			},
			wantUser: models.User{ID: 1, Name: "Ada", Email: "ada@x.com"},
		},
		{
			name: "business error carried verbatim",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{"error": "email already in use"})
			},
			wantAPIErr: "email already in use",
		},
		{
			name: "missing id is a decode error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"name":"Ada"}`))
			},
			wantErr:    true,
			wantDecode: true,
		},
		{
			name: "malformed body is a decode error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			wantErr:    true,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)

			got, err := api.RegisterUser(context.Background(), "Ada", "ada@x.com")
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantDecode {
					var decodeErr *DecodeError
					assert.True(t, errors.As(err, &decodeErr))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAPIErr, got.Error)
			assert.Equal(t, tt.wantUser, got.User)
		})
	}
}

func TestQuizAPI_CurrentSection(t *testing.T) {
	t.Parallel()

	section := models.Section{
		ID:     10,
		Title:  "Basics",
		Number: 1,
		Questions: []models.Question{
			{ID: 1, Text: "Q one", Options: []models.Option{{ID: 11, Text: "a"}, {ID: 12, Text: "b"}}},
		},
		SectionProgress: []models.SectionProgress{{SectionNumber: 1, Completed: false}},
	}

	tests := []struct {
		name          string
		handler       http.HandlerFunc
		wantErr       bool
		wantNoSection bool
		wantDecode    bool
	}{
		{
			name: "success: section decoded",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/quiz/current", r.URL.Path)
				assert.Equal(t, "42", r.URL.Query().Get("userId"))
				json.NewEncoder(w).Encode(section)
			},
		},
		{
			name: "404 means all sections complete",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
			wantErr:       true,
			wantNoSection: true,
		},
		{
			name: "other failure status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
		{
			name: "section without questions is a decode error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"id":10,"title":"Basics","number":1,"questions":[]}`))
			},
			wantErr:    true,
			wantDecode: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)

			got, err := api.CurrentSection(context.Background(), 42)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantNoSection, errors.Is(err, ErrNoSection))
				if tt.wantDecode {
					var decodeErr *DecodeError
					assert.True(t, errors.As(err, &decodeErr))
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, section, got)
		})
	}
}

func TestQuizAPI_SubmitSection(t *testing.T) {
	t.Parallel()

	selected := 1

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    models.SubmitResult
		wantErr bool
	}{
		{
			name: "success: payload carries explicit null for gaps",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/quiz/submit-section", r.URL.Path)

				var payload struct {
					UserID    int64             `json:"userId"`
					SectionID int64             `json:"sectionId"`
					Answers   []json.RawMessage `json:"answers"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				assert.Equal(t, int64(42), payload.UserID)
				assert.Equal(t, int64(10), payload.SectionID)
				require.Len(t, payload.Answers, 2)
				assert.JSONEq(t, `{"questionId":1,"selected":1}`, string(payload.Answers[0]))
				assert.JSONEq(t, `{"questionId":2,"selected":null}`, string(payload.Answers[1]))

				json.NewEncoder(w).Encode(models.SubmitResult{
					Score:          80,
					IsNewHighscore: false,
					AnswerResults: []models.AnswerResult{
						{QuestionID: 1, Selected: &selected, IsCorrect: true},
						{QuestionID: 2, Selected: nil, IsCorrect: false},
					},
				})
			},
			want: models.SubmitResult{
				Score: 80,
				AnswerResults: []models.AnswerResult{
					{QuestionID: 1, Selected: &selected, IsCorrect: true},
					{QuestionID: 2, Selected: nil, IsCorrect: false},
				},
			},
		},
		{
			name: "failure status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`[`))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			api := newTestAPI(t, tt.handler)

			answers := []models.Answer{
				{QuestionID: 1, Selected: &selected},
				{QuestionID: 2, Selected: nil},
			}

			got, err := api.SubmitSection(context.Background(), 42, 10, answers)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
