package domain

import "time"

// Question field limits, in characters after trimming.
const (
	MinQuestionTitle = 10
	MaxQuestionTitle = 150
	MinQuestionText  = 30
	MinAnswerText    = 10
)

// Question is an authored question. CreatedAt is assigned by storage on insert
// and never changes afterwards.
type Question struct {
	ID        int64
	AuthorID  int64
	Title     string
	Text      string
	CreatedAt time.Time
}

// QuestionCard is a question with everything a listing needs resolved:
// author with profile, the full tag set and live like/answer counts.
type QuestionCard struct {
	Question
	Author      Author
	Tags        []Tag
	LikeCount   int
	AnswerCount int
}

// Answer belongs to exactly one question and is deleted with it.
type Answer struct {
	ID         int64
	QuestionID int64
	AuthorID   int64
	Text       string
	IsCorrect  bool
	CreatedAt  time.Time
}

// AnswerCard is an answer with its author and live like count resolved.
type AnswerCard struct {
	Answer
	Author    Author
	LikeCount int
}
