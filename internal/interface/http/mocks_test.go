package http

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"backend-tracking/internal/domain/pagination"
	domproduct "backend-tracking/internal/domain/product"
	domuser "backend-tracking/internal/domain/user"
	productuc "backend-tracking/internal/usecase/product"
	useruc "backend-tracking/internal/usecase/user"
)

func newTestAPI() *API {
	return NewAPI(Dependencies{
		ProductService: productuc.NewService(newMockProductRepository(), zap.NewNop()),
		UserService:    useruc.NewService(newMockUserRepository(), zap.NewNop()),
	})
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// Mock product repository
type mockProductRepository struct {
	products map[int64]*domproduct.Product
	nextID   int64
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{products: make(map[int64]*domproduct.Product), nextID: 1}
}

func copyProduct(p *domproduct.Product) *domproduct.Product {
	c := *p
	return &c
}

func (m *mockProductRepository) Create(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	p.ID = m.nextID
	m.nextID++
	p.CreatedAt = today()
	p.UpdatedAt = today()
	m.products[p.ID] = copyProduct(p)
	return p, nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *domproduct.Product) (*domproduct.Product, error) {
	if _, ok := m.products[p.ID]; !ok {
		return nil, domproduct.ErrProductNotFound
	}
	p.UpdatedAt = today()
	m.products[p.ID] = copyProduct(p)
	return p, nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.products[id]; !ok {
		return domproduct.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return copyProduct(p), nil
}

func (m *mockProductRepository) all() []*domproduct.Product {
	var products []*domproduct.Product
	for _, p := range m.products {
		products = append(products, copyProduct(p))
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products
}

func (m *mockProductRepository) List(ctx context.Context) ([]*domproduct.Product, error) {
	return m.all(), nil
}

func (m *mockProductRepository) ListByType(ctx context.Context, productType string) ([]*domproduct.Product, error) {
	var products []*domproduct.Product
	for _, p := range m.all() {
		if p.Type != nil && *p.Type == productType {
			products = append(products, p)
		}
	}
	return products, nil
}

func productMatches(p *domproduct.Product, url, typ *string, isNotify *int) bool {
	if url != nil && !strings.Contains(strings.ToLower(p.URL), strings.ToLower(*url)) {
		return false
	}
	if typ != nil && (p.Type == nil || *p.Type != *typ) {
		return false
	}
	if isNotify != nil && p.IsNotify != *isNotify {
		return false
	}
	return true
}

func pageSlice(products []*domproduct.Product, page pagination.Request) []*domproduct.Product {
	if page.Descending() {
		sort.Slice(products, func(i, j int) bool { return products[i].ID > products[j].ID })
	}
	start := page.Offset()
	if start >= len(products) {
		return nil
	}
	end := start + page.Limit()
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func (m *mockProductRepository) ListPaginated(ctx context.Context, filter domproduct.ListFilter, page pagination.Request) ([]*domproduct.Product, int64, error) {
	var matched []*domproduct.Product
	for _, p := range m.all() {
		if productMatches(p, nil, filter.Type, filter.IsNotify) {
			matched = append(matched, p)
		}
	}
	return pageSlice(matched, page), int64(len(matched)), nil
}

func (m *mockProductRepository) Search(ctx context.Context, filter domproduct.SearchFilter, page pagination.Request) ([]*domproduct.Product, int64, error) {
	var matched []*domproduct.Product
	for _, p := range m.all() {
		if productMatches(p, filter.URL, filter.Type, filter.IsNotify) {
			matched = append(matched, p)
		}
	}
	return pageSlice(matched, page), int64(len(matched)), nil
}

func (m *mockProductRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var types []string
	for _, p := range m.products {
		if p.Type != nil && !seen[*p.Type] {
			seen[*p.Type] = true
			types = append(types, *p.Type)
		}
	}
	sort.Strings(types)
	return types, nil
}

func (m *mockProductRepository) ExistsByURL(ctx context.Context, url string) (bool, error) {
	for _, p := range m.products {
		if p.URL == url {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockProductRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

func (m *mockProductRepository) CountByNotify(ctx context.Context, isNotify int) (int64, error) {
	var n int64
	for _, p := range m.products {
		if p.IsNotify == isNotify {
			n++
		}
	}
	return n, nil
}

// Mock user repository
type mockUserRepository struct {
	users  map[int64]*domuser.User
	nextID int64
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[int64]*domuser.User), nextID: 1}
}

func copyUser(u *domuser.User) *domuser.User {
	c := *u
	return &c
}

func (m *mockUserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	u.ID = m.nextID
	m.nextID++
	m.users[u.ID] = copyUser(u)
	return u, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	if _, ok := m.users[u.ID]; !ok {
		return nil, domuser.ErrUserNotFound
	}
	m.users[u.ID] = copyUser(u)
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domuser.ErrUserNotFound
	}
	return copyUser(u), nil
}

func (m *mockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepository) Search(ctx context.Context, filter domuser.SearchFilter, page pagination.Request) ([]*domuser.User, int64, error) {
	var matched []*domuser.User
	for _, u := range m.users {
		if filter.Username != nil && !strings.Contains(strings.ToLower(u.Username), strings.ToLower(*filter.Username)) {
			continue
		}
		if filter.FullName != nil && !strings.Contains(strings.ToLower(u.FullName), strings.ToLower(*filter.FullName)) {
			continue
		}
		if filter.RegisterDateFrom != nil && u.RegisterDate.Before(*filter.RegisterDateFrom) {
			continue
		}
		if filter.RegisterDateTo != nil && u.RegisterDate.After(*filter.RegisterDateTo) {
			continue
		}
		if filter.ExpiredDateFrom != nil && u.ExpiredDate.Before(*filter.ExpiredDateFrom) {
			continue
		}
		if filter.ExpiredDateTo != nil && u.ExpiredDate.After(*filter.ExpiredDateTo) {
			continue
		}
		if filter.Status != nil && u.Status != *filter.Status {
			continue
		}
		matched = append(matched, copyUser(u))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	start := page.Offset()
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + page.Limit()
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}
