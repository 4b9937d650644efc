package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"quizengine_backend/internals/features/quizzes/model"
)

// CreateQuizRequest is the body of POST /api/quizzes. Answer stays a pointer:
// a quiz may legitimately be created without one, and that is distinct from
// an empty list.
type CreateQuizRequest struct {
	Title   string   `json:"title" validate:"required"`
	Text    string   `json:"text" validate:"required"`
	Options []string `json:"options" validate:"required,min=2"`
	Answer  *[]int   `json:"answer"`
}

func (r CreateQuizRequest) ToModel(ownerID uint) model.QuizModel {
	quiz := model.QuizModel{
		Title:   r.Title,
		Text:    r.Text,
		Options: datatypes.NewJSONSlice(r.Options),
		OwnerID: ownerID,
	}
	if r.Answer != nil {
		// marshalling a plain int slice cannot fail
		raw, _ := json.Marshal(*r.Answer)
		quiz.Answer = datatypes.JSON(raw)
	}
	return quiz
}

// QuizResponse is the outward view of a quiz. It deliberately has no answer
// field at all, so correct indices can never leak through serialization.
type QuizResponse struct {
	ID      uint     `json:"id"`
	Title   string   `json:"title"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

func ToQuizResponse(m model.QuizModel) QuizResponse {
	return QuizResponse{
		ID:      m.ID,
		Title:   m.Title,
		Text:    m.Text,
		Options: []string(m.Options),
	}
}

// SolveRequest is the body of POST /api/quizzes/{id}/solve. The pointer keeps
// "no answer submitted" distinguishable from an empty index list.
type SolveRequest struct {
	Answer *[]int `json:"answer"`
}

type SolveResponse struct {
	Success  bool   `json:"success"`
	Feedback string `json:"feedback"`
}

// CompletionResponse mirrors the stored completion: the "id" field carries the
// solved quiz's id, not the row id.
type CompletionResponse struct {
	QuizID      uint      `json:"id"`
	CompletedAt time.Time `json:"completedAt"`
}

func ToCompletionResponse(m model.QuizCompletionModel) CompletionResponse {
	return CompletionResponse{
		QuizID:      m.QuizID,
		CompletedAt: m.CompletedAt,
	}
}
