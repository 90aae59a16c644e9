package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/heartmarshall/askme-backend/internal/config"
	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

func newTestService(questions *questionRepoMock, tags *tagRepoMock, answers *answerRepoMock, tx *txManagerMock) *Service {
	return NewService(slog.Default(), questions, tags, answers, tx, config.ForumConfig{AnswersPageSize: 5})
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func authCtx(userID int64) context.Context {
	return ctxutil.WithUserID(context.Background(), userID)
}

// ---------------------------------------------------------------------------
// Ask
// ---------------------------------------------------------------------------

func TestAsk_Success(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		CreateFunc: func(ctx context.Context, q domain.Question) (domain.Question, error) {
			q.ID = 42
			return q, nil
		},
		AttachTagsFunc: func(ctx context.Context, questionID int64, tagIDs []int64) error {
			return nil
		},
	}
	nextTagID := int64(0)
	tags := &tagRepoMock{
		GetOrCreateFunc: func(ctx context.Context, name string) (domain.Tag, error) {
			nextTagID++
			return domain.Tag{ID: nextTagID, Name: name}, nil
		},
	}
	tx := defaultTxMock()
	svc := newTestService(questions, tags, &answerRepoMock{}, tx)

	q, err := svc.Ask(authCtx(7), AskInput{Title: validTitle, Text: validText, Tags: "go, Go-Kit"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID != 42 || q.AuthorID != 7 {
		t.Errorf("question = %+v, want id 42 by user 7", q)
	}
	if len(tx.RunInTxCalls()) != 1 {
		t.Errorf("RunInTx calls = %d, want 1", len(tx.RunInTxCalls()))
	}
	if got := tags.GetOrCreateCalls(); len(got) != 2 || got[0].Name != "go" || got[1].Name != "Go-Kit" {
		t.Errorf("GetOrCreate calls = %+v", got)
	}
	attach := questions.AttachTagsCalls()
	if len(attach) != 1 || attach[0].QuestionID != 42 || len(attach[0].TagIDs) != 2 {
		t.Fatalf("AttachTags calls = %+v", attach)
	}
	if attach[0].TagIDs[0] != 1 || attach[0].TagIDs[1] != 2 {
		t.Errorf("tag ids = %v, want [1 2]", attach[0].TagIDs)
	}
}

func TestAsk_Unauthorized(t *testing.T) {
	t.Parallel()

	svc := newTestService(&questionRepoMock{}, &tagRepoMock{}, &answerRepoMock{}, defaultTxMock())

	_, err := svc.Ask(context.Background(), AskInput{Title: validTitle, Text: validText, Tags: "go"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAsk_ValidationStoresNothing(t *testing.T) {
	t.Parallel()

	tx := defaultTxMock()
	svc := newTestService(&questionRepoMock{}, &tagRepoMock{}, &answerRepoMock{}, tx)

	_, err := svc.Ask(authCtx(1), AskInput{Title: validTitle, Text: validText, Tags: "a,b,c,d,e,f"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(tx.RunInTxCalls()) != 0 {
		t.Error("no transaction expected for invalid input")
	}
}

func TestAsk_TagFailureAbortsTransaction(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		CreateFunc: func(ctx context.Context, q domain.Question) (domain.Question, error) {
			q.ID = 1
			return q, nil
		},
		AttachTagsFunc: func(ctx context.Context, questionID int64, tagIDs []int64) error {
			return nil
		},
	}
	tags := &tagRepoMock{
		GetOrCreateFunc: func(ctx context.Context, name string) (domain.Tag, error) {
			if name == "sql" {
				return domain.Tag{}, fmt.Errorf("tag %s: %w", name, domain.ErrConflict)
			}
			return domain.Tag{ID: 1, Name: name}, nil
		},
	}
	svc := newTestService(questions, tags, &answerRepoMock{}, defaultTxMock())

	_, err := svc.Ask(authCtx(1), AskInput{Title: validTitle, Text: validText, Tags: "go, sql"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(questions.AttachTagsCalls()) != 0 {
		t.Error("tags must not be attached after a failed get-or-create")
	}
}

// ---------------------------------------------------------------------------
// Get
// ---------------------------------------------------------------------------

func TestGet_AnswersPage(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		GetCardFunc: func(ctx context.Context, id int64) (domain.QuestionCard, error) {
			return domain.QuestionCard{Question: domain.Question{ID: id}, AnswerCount: 12}, nil
		},
	}
	answers := &answerRepoMock{
		CountByQuestionFunc: func(ctx context.Context, questionID int64) (int, error) {
			return 12, nil
		},
		ListByQuestionFunc: func(ctx context.Context, questionID int64, offset, limit int) ([]domain.AnswerCard, error) {
			return make([]domain.AnswerCard, min(limit, 12-offset)), nil
		},
	}
	svc := newTestService(questions, &tagRepoMock{}, answers, defaultTxMock())

	detail, err := svc.Get(context.Background(), 3, "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Question.ID != 3 {
		t.Errorf("question id = %d, want 3", detail.Question.ID)
	}
	if detail.Answers.Number != 3 || detail.Answers.NumPages != 3 || len(detail.Answers.Items) != 2 {
		t.Errorf("answers page = %d/%d with %d items", detail.Answers.Number, detail.Answers.NumPages, len(detail.Answers.Items))
	}
	if calls := answers.ListByQuestionCalls(); calls[0].Offset != 10 || calls[0].QuestionID != 3 {
		t.Errorf("ListByQuestion calls = %+v", calls)
	}
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()

	questions := &questionRepoMock{
		GetCardFunc: func(ctx context.Context, id int64) (domain.QuestionCard, error) {
			return domain.QuestionCard{}, domain.ErrNotFound
		},
	}
	svc := newTestService(questions, &tagRepoMock{}, &answerRepoMock{}, defaultTxMock())

	if _, err := svc.Get(context.Background(), 99, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// AddAnswer / AnswerPage
// ---------------------------------------------------------------------------

func existingQuestion(authorID int64) *questionRepoMock {
	return &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Question, error) {
			return domain.Question{ID: id, AuthorID: authorID}, nil
		},
		DeleteFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}
}

func TestAddAnswer_LandsOnLastPage(t *testing.T) {
	t.Parallel()

	answers := &answerRepoMock{
		CreateFunc: func(ctx context.Context, a domain.Answer) (domain.Answer, error) {
			a.ID = 500
			return a, nil
		},
		PositionFunc: func(ctx context.Context, questionID, answerID int64) (int, error) {
			return 11, nil
		},
	}
	svc := newTestService(existingQuestion(1), &tagRepoMock{}, answers, defaultTxMock())

	placement, err := svc.AddAnswer(authCtx(2), 10, AnswerInput{Text: "  use LIMIT and OFFSET  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placement.Page != 3 || placement.Answer.ID != 500 {
		t.Errorf("placement = %+v, want answer 500 on page 3", placement)
	}
	created := answers.CreateCalls()[0].A
	if created.QuestionID != 10 || created.AuthorID != 2 || created.Text != "use LIMIT and OFFSET" {
		t.Errorf("created answer = %+v", created)
	}
}

func TestAddAnswer_Errors(t *testing.T) {
	t.Parallel()

	missing := &questionRepoMock{
		GetByIDFunc: func(ctx context.Context, id int64) (domain.Question, error) {
			return domain.Question{}, domain.ErrNotFound
		},
	}

	tests := []struct {
		name      string
		ctx       context.Context
		questions *questionRepoMock
		text      string
		wantErr   error
	}{
		{"anonymous", context.Background(), existingQuestion(1), "a long enough answer", domain.ErrUnauthorized},
		{"missing question", authCtx(2), missing, "a long enough answer", domain.ErrNotFound},
		{"short text", authCtx(2), existingQuestion(1), "too short", domain.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			answers := &answerRepoMock{}
			svc := newTestService(tt.questions, &tagRepoMock{}, answers, defaultTxMock())

			_, err := svc.AddAnswer(tt.ctx, 10, AnswerInput{Text: tt.text})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if len(answers.CreateCalls()) != 0 {
				t.Error("answer must not be stored")
			}
		})
	}
}

func TestAnswerPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		position int
		wantPage int
		wantErr  error
	}{
		{position: 1, wantPage: 1},
		{position: 5, wantPage: 1},
		{position: 6, wantPage: 2},
		{position: 12, wantPage: 3},
		{position: 0, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("position %d", tt.position), func(t *testing.T) {
			t.Parallel()

			answers := &answerRepoMock{
				PositionFunc: func(ctx context.Context, questionID, answerID int64) (int, error) {
					return tt.position, nil
				},
			}
			svc := newTestService(&questionRepoMock{}, &tagRepoMock{}, answers, defaultTxMock())

			page, err := svc.AnswerPage(context.Background(), 1, 2)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page != tt.wantPage {
				t.Errorf("page = %d, want %d", page, tt.wantPage)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_ByAuthor(t *testing.T) {
	t.Parallel()

	questions := existingQuestion(5)
	svc := newTestService(questions, &tagRepoMock{}, &answerRepoMock{}, defaultTxMock())

	if err := svc.Delete(authCtx(5), 8); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls := questions.DeleteCalls(); len(calls) != 1 || calls[0].ID != 8 {
		t.Errorf("Delete calls = %+v", calls)
	}
}

func TestDelete_ByOtherUserForbidden(t *testing.T) {
	t.Parallel()

	questions := existingQuestion(5)
	svc := newTestService(questions, &tagRepoMock{}, &answerRepoMock{}, defaultTxMock())

	if err := svc.Delete(authCtx(6), 8); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(questions.DeleteCalls()) != 0 {
		t.Error("question must not be deleted")
	}
}
