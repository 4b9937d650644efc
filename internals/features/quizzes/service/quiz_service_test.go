package service

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"quizengine_backend/internals/features/quizzes/model"
)

func jsonAnswer(values ...int) datatypes.JSON {
	raw, err := json.Marshal(values)
	if err != nil {
		panic(err)
	}
	return datatypes.JSON(raw)
}

func ints(values ...int) *[]int {
	return &values
}

func TestAnswerIsCorrect(t *testing.T) {
	cases := []struct {
		name      string
		stored    datatypes.JSON
		submitted *[]int
		want      bool
	}{
		{"exact match", jsonAnswer(0, 2), ints(0, 2), true},
		{"single correct", jsonAnswer(0), ints(0), true},
		{"wrong value", jsonAnswer(0), ints(1), false},
		{"different order", jsonAnswer(0, 1), ints(1, 0), false},
		{"subset", jsonAnswer(0, 1), ints(0), false},
		{"both empty lists", jsonAnswer(), ints(), true},
		{"both absent", nil, nil, true},
		{"stored absent, empty submitted", nil, ints(), false},
		{"stored absent, non-empty submitted", nil, ints(0), false},
		{"submitted absent, stored present", jsonAnswer(0), nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnswerIsCorrect(tc.stored, tc.submitted); got != tc.want {
				t.Fatalf("AnswerIsCorrect(%v, %v) = %v, want %v", tc.stored, tc.submitted, got, tc.want)
			}
		})
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection, one in-memory database
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.QuizModel{}, &model.QuizCompletionModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestDeleteQuizRemovesCompletionsInSameTransaction(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	quiz := model.QuizModel{
		Title:   "Capitals",
		Text:    "Pick the capital of France",
		Options: datatypes.NewJSONSlice([]string{"Paris", "Lyon"}),
		Answer:  jsonAnswer(0),
		OwnerID: 1,
	}
	if err := db.Create(&quiz).Error; err != nil {
		t.Fatalf("create quiz: %v", err)
	}
	other := model.QuizModel{
		Title:   "Other",
		Text:    "Other quiz",
		Options: datatypes.NewJSONSlice([]string{"a", "b"}),
		OwnerID: 1,
	}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("create other quiz: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := RecordCompletion(ctx, db, quiz.ID, uint(i+1)); err != nil {
			t.Fatalf("record completion: %v", err)
		}
	}
	if err := RecordCompletion(ctx, db, other.ID, 1); err != nil {
		t.Fatalf("record completion: %v", err)
	}

	if err := DeleteQuiz(ctx, db, &quiz); err != nil {
		t.Fatalf("delete quiz: %v", err)
	}

	var quizCount int64
	db.Model(&model.QuizModel{}).Where("quiz_id = ?", quiz.ID).Count(&quizCount)
	if quizCount != 0 {
		t.Fatalf("quiz row still present after delete")
	}

	var completionCount int64
	db.Model(&model.QuizCompletionModel{}).Where("quiz_completion_quiz_id = ?", quiz.ID).Count(&completionCount)
	if completionCount != 0 {
		t.Fatalf("expected 0 completions for deleted quiz, got %d", completionCount)
	}

	// completions of the surviving quiz stay untouched
	db.Model(&model.QuizCompletionModel{}).Where("quiz_completion_quiz_id = ?", other.ID).Count(&completionCount)
	if completionCount != 1 {
		t.Fatalf("expected 1 completion for other quiz, got %d", completionCount)
	}
}
