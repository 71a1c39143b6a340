package dto

import (
	"time"

	"skintel.app/core/internal/model"
)

type CreateUserRequest struct {
	Nickname   string  `json:"nickname" binding:"required,min=1,max=50"`
	BirthYear  *int32  `json:"birth_year,omitempty" binding:"omitempty,min=1900,max=2100"`
	TopConcern *string `json:"top_concern,omitempty"`
}

type UserResponse struct {
	ID         int64     `json:"id,string"`
	Nickname   string    `json:"nickname"`
	BirthYear  *int32    `json:"birth_year,omitempty"`
	TopConcern *string   `json:"top_concern,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:         u.ID,
		Nickname:   u.Nickname,
		BirthYear:  u.BirthYear,
		TopConcern: u.TopConcern,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
}

type ProfileAnswerEntry struct {
	QuestionKey string `json:"question_key" binding:"required"`
	Answer      string `json:"answer" binding:"required"`
}

type UpdateProfileAnswersRequest struct {
	TopConcern *string              `json:"top_concern,omitempty"`
	Answers    []ProfileAnswerEntry `json:"answers" binding:"required,min=1,dive"`
}

type AnswerResponse struct {
	QuestionKey string `json:"question_key"`
	Answer      string `json:"answer"`
	Scope       string `json:"scope"`
}

type UpdateProfileAnswersResponse struct {
	User    *UserResponse    `json:"user"`
	Answers []AnswerResponse `json:"answers"`
}

func ToAnswerResponses(answers []model.Answer) []AnswerResponse {
	out := make([]AnswerResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, AnswerResponse{
			QuestionKey: a.QuestionKey,
			Answer:      a.Answer,
			Scope:       a.Scope,
		})
	}
	return out
}
