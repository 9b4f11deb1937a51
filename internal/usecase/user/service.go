package user

import (
	"context"
	"time"

	"go.uber.org/zap"

	"backend-tracking/internal/domain/pagination"
	dom "backend-tracking/internal/domain/user"
)

type Service struct {
	repo   dom.Repository
	logger *zap.Logger
}

func NewService(repo dom.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

type CreateInput struct {
	Username     string
	FullName     string
	RegisterDate time.Time
	Status       *int
}

type UpdateInput struct {
	Username     *string
	FullName     *string
	RegisterDate time.Time
	Status       int
}

// Create registers a new account. The expiry is always one calendar
// month after the register date, and the status is forced to active —
// a client-supplied status is ignored here (update applies it, create
// does not).
func (s *Service) Create(ctx context.Context, in CreateInput) (*dom.User, error) {
	s.logger.Info("creating user", zap.String("username", in.Username))

	exists, err := s.repo.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dom.ErrUsernameExists
	}

	created, err := s.repo.Create(ctx, &dom.User{
		Username:     in.Username,
		FullName:     in.FullName,
		RegisterDate: in.RegisterDate,
		ExpiredDate:  dom.AddOneMonth(in.RegisterDate),
		Status:       dom.StatusActive,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("id", created.ID))
	return created, nil
}

// Update recomputes the expiry from the supplied register date and
// overwrites the status. A supplied username is checked for collisions
// but the stored username and full name are left untouched.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*dom.User, error) {
	s.logger.Info("updating user", zap.Int64("id", id))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != nil && *in.Username != existing.Username {
		exists, err := s.repo.ExistsByUsername(ctx, *in.Username)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, dom.ErrUsernameExists
		}
	}

	existing.RegisterDate = in.RegisterDate
	existing.ExpiredDate = dom.AddOneMonth(in.RegisterDate)
	existing.Status = in.Status

	return s.repo.Update(ctx, existing)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Search(ctx context.Context, filter dom.SearchFilter, page pagination.Request) ([]*dom.User, int64, error) {
	return s.repo.Search(ctx, filter, page)
}
