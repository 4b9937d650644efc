package model

import (
	"time"

	"gorm.io/datatypes"
)

// QuizModel represents the quizzes table. Options and Answer live in jsonb
// columns; Answer is nullable and write-only from the API's point of view,
// so it never carries a json tag that would serialize it outward.
//
// OwnerID is a direct reference to the creating user, which makes the
// ownership check on delete a single column comparison.
type QuizModel struct {
	ID      uint                        `gorm:"column:quiz_id;primaryKey" json:"id"`
	Title   string                      `gorm:"column:quiz_title;size:255;not null" json:"title"`
	Text    string                      `gorm:"column:quiz_text;type:text;not null" json:"text"`
	Options datatypes.JSONSlice[string] `gorm:"column:quiz_options;type:jsonb;not null" json:"options"`
	Answer  datatypes.JSON              `gorm:"column:quiz_answer;type:jsonb" json:"-"`
	OwnerID uint                        `gorm:"column:quiz_owner_id;not null;index" json:"-"`

	CreatedAt time.Time `gorm:"column:quiz_created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:quiz_updated_at;autoUpdateTime" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
