package product

import (
	"context"

	"go.uber.org/zap"

	"backend-tracking/internal/domain/pagination"
	dom "backend-tracking/internal/domain/product"
)

type Service struct {
	repo   dom.Repository
	logger *zap.Logger
}

func NewService(repo dom.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Input carries a create/update payload. IsNotify is a pointer so a
// missing flag can be told apart from an explicit 0; missing defaults
// to 1.
type Input struct {
	URL      string
	Type     *string
	IsNotify *int
}

func (in Input) notifyOrDefault() int {
	if in.IsNotify == nil {
		return 1
	}
	return *in.IsNotify
}

func (s *Service) Create(ctx context.Context, in Input) (*dom.Product, error) {
	s.logger.Info("creating product", zap.String("url", in.URL))

	exists, err := s.repo.ExistsByURL(ctx, in.URL)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, dom.ErrURLExists
	}

	created, err := s.repo.Create(ctx, &dom.Product{
		URL:      in.URL,
		Type:     in.Type,
		IsNotify: in.notifyOrDefault(),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("product created", zap.Int64("id", created.ID))
	return created, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (*dom.Product, error) {
	s.logger.Info("updating product", zap.Int64("id", id))

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A URL change must not collide with another record. Keeping the
	// same URL is always allowed.
	if existing.URL != in.URL {
		exists, err := s.repo.ExistsByURL(ctx, in.URL)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, dom.ErrURLExists
		}
	}

	existing.URL = in.URL
	existing.Type = in.Type
	existing.IsNotify = in.notifyOrDefault()

	return s.repo.Update(ctx, existing)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("deleting product", zap.Int64("id", id))
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*dom.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByType(ctx context.Context, productType string) ([]*dom.Product, error) {
	return s.repo.ListByType(ctx, productType)
}

func (s *Service) ToggleNotification(ctx context.Context, id int64) (*dom.Product, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.ToggleNotification()
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("notification toggled",
		zap.Int64("id", id),
		zap.Bool("enabled", updated.NotificationEnabled()))
	return updated, nil
}

func (s *Service) ListPaginated(ctx context.Context, filter dom.ListFilter, page pagination.Request) ([]*dom.Product, int64, error) {
	return s.repo.ListPaginated(ctx, filter, page)
}

func (s *Service) Search(ctx context.Context, filter dom.SearchFilter, page pagination.Request) ([]*dom.Product, int64, error) {
	return s.repo.Search(ctx, filter, page)
}

func (s *Service) DistinctTypes(ctx context.Context) ([]string, error) {
	return s.repo.DistinctTypes(ctx)
}

// Statistics issues three independent counts. There is no snapshot
// across them, so the numbers may not add up during concurrent writes.
func (s *Service) Statistics(ctx context.Context) (*dom.Statistics, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.repo.CountByNotify(ctx, 1)
	if err != nil {
		return nil, err
	}
	inactive, err := s.repo.CountByNotify(ctx, 0)
	if err != nil {
		return nil, err
	}
	return &dom.Statistics{
		TotalProducts:         total,
		ActiveNotifications:   active,
		InactiveNotifications: inactive,
	}, nil
}
