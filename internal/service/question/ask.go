package question

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/askme-backend/internal/domain"
	"github.com/heartmarshall/askme-backend/pkg/ctxutil"
)

// Ask stores a new question for the authenticated user. The question and all
// of its tag links are written in one transaction: either everything is
// visible afterwards or nothing is.
func (s *Service) Ask(ctx context.Context, input AskInput) (domain.Question, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Question{}, domain.ErrUnauthorized
	}

	draft, err := input.Validate()
	if err != nil {
		return domain.Question{}, err
	}

	var q domain.Question
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		q, createErr = s.questions.Create(txCtx, domain.Question{
			AuthorID: userID,
			Title:    draft.Title,
			Text:     draft.Text,
		})
		if createErr != nil {
			return fmt.Errorf("create question: %w", createErr)
		}

		tagIDs := make([]int64, 0, len(draft.Tags))
		for _, name := range draft.Tags {
			tag, tagErr := s.tags.GetOrCreate(txCtx, name)
			if tagErr != nil {
				return fmt.Errorf("get or create tag %q: %w", name, tagErr)
			}
			tagIDs = append(tagIDs, tag.ID)
		}

		if attachErr := s.questions.AttachTags(txCtx, q.ID, tagIDs); attachErr != nil {
			return fmt.Errorf("attach tags: %w", attachErr)
		}
		return nil
	})
	if err != nil {
		return domain.Question{}, err
	}

	s.log.InfoContext(ctx, "question asked",
		slog.Int64("user_id", userID),
		slog.Int64("question_id", q.ID),
		slog.String("tags", strings.Join(draft.Tags, ",")),
	)

	return q, nil
}
