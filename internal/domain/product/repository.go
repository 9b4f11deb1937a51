package product

import (
	"context"

	"backend-tracking/internal/domain/pagination"
)

type Repository interface {
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context) ([]*Product, error)
	ListByType(ctx context.Context, productType string) ([]*Product, error)
	ListPaginated(ctx context.Context, filter ListFilter, page pagination.Request) ([]*Product, int64, error)
	Search(ctx context.Context, filter SearchFilter, page pagination.Request) ([]*Product, int64, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	ExistsByURL(ctx context.Context, url string) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByNotify(ctx context.Context, isNotify int) (int64, error)
}
