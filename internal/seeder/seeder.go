package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/askme-backend/internal/domain"
)

// usernameAttempts bounds retries when a generated username is taken.
const usernameAttempts = 5

// Plan is how much content one Fill run creates.
type Plan struct {
	Users     int
	Tags      int
	Questions int
	Answers   int
	// Likes is capped by the number of distinct (user, question or answer)
	// pairs, since a user likes a given item at most once.
	Likes int
}

// NewPlan scales the demo content by ratio.
func NewPlan(ratio int) (Plan, error) {
	if ratio < 1 {
		return Plan{}, fmt.Errorf("ratio must be positive, got %d", ratio)
	}
	p := Plan{
		Users:     ratio,
		Tags:      ratio,
		Questions: 10 * ratio,
		Answers:   100 * ratio,
	}
	p.Likes = min(200*ratio, p.Users*(p.Questions+p.Answers))
	return p, nil
}

// Stats counts what a Fill run created.
type Stats struct {
	Users         int
	Tags          int
	Questions     int
	Answers       int
	QuestionLikes int
	AnswerLikes   int
}

// Cleared counts what Clear removed. Answers and likes go with their
// questions and authors and are not counted separately.
type Cleared struct {
	Questions int64
	Users     int64
	Tags      int64
}

// Seeder generates and removes demo content.
type Seeder struct {
	log   *slog.Logger
	repos Repos
	cfg   Config
}

// New creates a Seeder.
func New(log *slog.Logger, repos Repos, cfg Config) *Seeder {
	return &Seeder{log: log, repos: repos, cfg: cfg}
}

// fill holds the ids created so far in one run.
type fill struct {
	rng       *rand.Rand
	plan      Plan
	users     []int64
	tags      []int64
	questions []int64
	answers   []int64
	stats     Stats
}

// Fill creates users, tags, questions, answers and likes in the proportions
// given by NewPlan(ratio).
func (s *Seeder) Fill(ctx context.Context, ratio int) (Stats, error) {
	plan, err := NewPlan(ratio)
	if err != nil {
		return Stats{}, err
	}

	seed := s.cfg.RandomSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	f := &fill{rng: rand.New(rand.NewPCG(seed, seed>>1)), plan: plan}

	phases := []struct {
		name string
		run  func(ctx context.Context, f *fill) (int, error)
	}{
		{"users", s.fillUsers},
		{"tags", s.fillTags},
		{"questions", s.fillQuestions},
		{"answers", s.fillAnswers},
		{"likes", s.fillLikes},
	}

	s.log.Info("filling database", slog.Int("ratio", ratio), slog.Uint64("seed", seed))
	for _, ph := range phases {
		start := time.Now()
		s.log.Info("starting phase", slog.String("phase", ph.name))

		n, err := ph.run(ctx, f)
		if err != nil {
			s.log.Warn("phase failed",
				slog.String("phase", ph.name),
				slog.String("error", err.Error()),
				slog.Duration("duration", time.Since(start)),
			)
			return f.stats, fmt.Errorf("fill %s: %w", ph.name, err)
		}

		s.log.Info("phase completed",
			slog.String("phase", ph.name),
			slog.Int("inserted", n),
			slog.Duration("duration", time.Since(start)),
		)
	}

	return f.stats, nil
}

func (s *Seeder) fillUsers(ctx context.Context, f *fill) (int, error) {
	for i := range f.plan.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.PasswordPrefix+strconv.Itoa(i+1)), s.cfg.BcryptCost)
		if err != nil {
			return f.stats.Users, fmt.Errorf("hash password: %w", err)
		}

		id, err := s.createUser(ctx, f.rng, i, string(hash))
		if err != nil {
			return f.stats.Users, err
		}
		f.users = append(f.users, id)
		f.stats.Users++
	}
	return f.stats.Users, nil
}

// createUser inserts one user with a profile, picking a new random suffix
// when the generated username already exists from an earlier run.
func (s *Seeder) createUser(ctx context.Context, rng *rand.Rand, n int, hash string) (int64, error) {
	var lastErr error
	for range usernameAttempts {
		username := fmt.Sprintf("fan_%d_%04d", n, rng.IntN(10000))

		var id int64
		err := s.repos.Tx.RunInTx(ctx, func(ctx context.Context) error {
			u, err := s.repos.Users.Create(ctx, &domain.User{
				Username:     username,
				Email:        username + "@example.com",
				PasswordHash: hash,
			})
			if err != nil {
				return err
			}
			id = u.ID
			return s.repos.Users.CreateProfile(ctx, domain.Profile{UserID: u.ID})
		})
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, domain.ErrAlreadyExists) {
			return 0, fmt.Errorf("create user %s: %w", username, err)
		}
		lastErr = err
	}
	return 0, fmt.Errorf("create user %d: %w", n, lastErr)
}

func (s *Seeder) fillTags(ctx context.Context, f *fill) (int, error) {
	for i := range f.plan.Tags {
		name := tagNames[i%len(tagNames)] + "." + strconv.Itoa(i+1)
		tag, err := s.repos.Tags.GetOrCreate(ctx, name)
		if err != nil {
			return f.stats.Tags, fmt.Errorf("tag %q: %w", name, err)
		}
		f.tags = append(f.tags, tag.ID)
		f.stats.Tags++
	}
	return f.stats.Tags, nil
}

func (s *Seeder) fillQuestions(ctx context.Context, f *fill) (int, error) {
	for range f.plan.Questions {
		k := 1 + f.rng.IntN(min(3, len(f.tags)))
		tagIDs := make([]int64, 0, k)
		for _, idx := range f.rng.Perm(len(f.tags))[:k] {
			tagIDs = append(tagIDs, f.tags[idx])
		}

		var id int64
		err := s.repos.Tx.RunInTx(ctx, func(ctx context.Context) error {
			q, err := s.repos.Questions.Create(ctx, domain.Question{
				AuthorID: pick(f.rng, f.users),
				Title:    pick(f.rng, questionTitles),
				Text:     pick(f.rng, questionTexts),
			})
			if err != nil {
				return err
			}
			id = q.ID
			return s.repos.Questions.AttachTags(ctx, q.ID, tagIDs)
		})
		if err != nil {
			return f.stats.Questions, fmt.Errorf("create question: %w", err)
		}
		f.questions = append(f.questions, id)
		f.stats.Questions++
	}
	return f.stats.Questions, nil
}

func (s *Seeder) fillAnswers(ctx context.Context, f *fill) (int, error) {
	for range f.plan.Answers {
		a, err := s.repos.Answers.Create(ctx, domain.Answer{
			QuestionID: pick(f.rng, f.questions),
			AuthorID:   pick(f.rng, f.users),
			Text:       pick(f.rng, answerTexts),
			IsCorrect:  f.rng.IntN(2) == 1,
		})
		if err != nil {
			return f.stats.Answers, fmt.Errorf("create answer: %w", err)
		}
		f.answers = append(f.answers, a.ID)
		f.stats.Answers++
	}
	return f.stats.Answers, nil
}

// fillLikes spreads Plan.Likes over distinct (user, item) pairs. Pair
// indexes below users*questions are question likes, the rest answer likes.
func (s *Seeder) fillLikes(ctx context.Context, f *fill) (int, error) {
	nq, na := len(f.questions), len(f.answers)
	questionPairs := len(f.users) * nq
	total := questionPairs + len(f.users)*na

	for _, idx := range samplePairs(f.rng, total, min(f.plan.Likes, total)) {
		if idx < questionPairs {
			if err := s.repos.Likes.LikeQuestion(ctx, f.users[idx/nq], f.questions[idx%nq]); err != nil {
				return f.stats.QuestionLikes + f.stats.AnswerLikes, fmt.Errorf("like question: %w", err)
			}
			f.stats.QuestionLikes++
			continue
		}
		idx -= questionPairs
		if err := s.repos.Likes.LikeAnswer(ctx, f.users[idx/na], f.answers[idx%na]); err != nil {
			return f.stats.QuestionLikes + f.stats.AnswerLikes, fmt.Errorf("like answer: %w", err)
		}
		f.stats.AnswerLikes++
	}
	return f.stats.QuestionLikes + f.stats.AnswerLikes, nil
}

// samplePairs returns n distinct indexes from [0, total).
func samplePairs(rng *rand.Rand, total, n int) []int {
	if n <= 0 || total <= 0 {
		return nil
	}
	if 2*n > total {
		return rng.Perm(total)[:n]
	}

	seen := make(map[int]struct{}, n)
	out := make([]int, 0, n)
	for len(out) < n {
		idx := rng.IntN(total)
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	return out
}

func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.IntN(len(items))]
}

// Clear deletes every question, every regular user and the tags left
// without questions. Superusers and their profiles stay.
func (s *Seeder) Clear(ctx context.Context) (Cleared, error) {
	var c Cleared
	err := s.repos.Tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		if c.Questions, err = s.repos.Questions.DeleteAll(ctx); err != nil {
			return err
		}
		if c.Users, err = s.repos.Users.DeleteRegular(ctx); err != nil {
			return err
		}
		c.Tags, err = s.repos.Tags.DeleteUnused(ctx)
		return err
	})
	if err != nil {
		return Cleared{}, fmt.Errorf("clear: %w", err)
	}

	s.log.Info("database cleared",
		slog.Int64("questions", c.Questions),
		slog.Int64("users", c.Users),
		slog.Int64("tags", c.Tags),
	)
	return c, nil
}
