package http

import (
	"time"

	"backend-tracking/internal/domain/pagination"
	domproduct "backend-tracking/internal/domain/product"
	domuser "backend-tracking/internal/domain/user"
)

type productRequest struct {
	URL      string  `json:"url" validate:"required,max=255"`
	Type     *string `json:"type" validate:"omitempty,max=255"`
	IsNotify *int    `json:"isNotify" validate:"omitempty,oneof=0 1"`
}

type productResponse struct {
	ID        int64    `json:"id"`
	URL       string   `json:"url"`
	Type      *string  `json:"type"`
	IsNotify  int      `json:"isNotify"`
	CreatedAt dateOnly `json:"createdAt"`
	UpdatedAt dateOnly `json:"updatedAt"`
}

type productSearchRequest struct {
	URL           *string `json:"url"`
	Type          *string `json:"type"`
	IsNotify      *int    `json:"isNotify" validate:"omitempty,oneof=0 1"`
	Page          int     `json:"page" validate:"min=0"`
	Size          int     `json:"size" validate:"min=0"`
	SortBy        string  `json:"sortBy"`
	SortDirection string  `json:"sortDirection"`
}

func (req productSearchRequest) pageRequest() pagination.Request {
	page := pagination.Request{
		Page:    req.Page,
		Size:    req.Size,
		SortBy:  req.SortBy,
		SortDir: req.SortDirection,
	}
	if page.SortBy == "" {
		page.SortBy = "id"
	}
	return page
}

type statisticsResponse struct {
	TotalProducts         int64 `json:"totalProducts"`
	ActiveNotifications   int64 `json:"activeNotifications"`
	InactiveNotifications int64 `json:"inactiveNotifications"`
}

type userCreateRequest struct {
	Username     string   `json:"username" validate:"required,min=3,max=50"`
	FullName     string   `json:"fullName" validate:"required,max=100"`
	RegisterDate dateOnly `json:"registerDate" validate:"required"`
	Status       *int     `json:"status"`
}

type userUpdateRequest struct {
	Username     *string  `json:"username" validate:"omitempty,min=3,max=50"`
	FullName     *string  `json:"fullName" validate:"omitempty,max=100"`
	RegisterDate dateOnly `json:"registerDate" validate:"required"`
	Status       int      `json:"status"`
}

type userResponse struct {
	ID           int64    `json:"id"`
	Username     string   `json:"username"`
	FullName     string   `json:"fullName"`
	RegisterDate dateOnly `json:"registerDate"`
	ExpiredDate  dateOnly `json:"expiredDate"`
	Status       int      `json:"status"`
	IsExpired    bool     `json:"isExpired"`
}

type userSearchRequest struct {
	Username         *string   `json:"username"`
	FullName         *string   `json:"fullName"`
	RegisterDateFrom *dateOnly `json:"registerDateFrom"`
	RegisterDateTo   *dateOnly `json:"registerDateTo"`
	ExpiredDateFrom  *dateOnly `json:"expiredDateFrom"`
	ExpiredDateTo    *dateOnly `json:"expiredDateTo"`
	Status           *int      `json:"status"`
	Page             int       `json:"page" validate:"min=0"`
	Size             int       `json:"size" validate:"min=0"`
}

func (req userSearchRequest) filter() domuser.SearchFilter {
	return domuser.SearchFilter{
		Username:         req.Username,
		FullName:         req.FullName,
		RegisterDateFrom: datePtr(req.RegisterDateFrom),
		RegisterDateTo:   datePtr(req.RegisterDateTo),
		ExpiredDateFrom:  datePtr(req.ExpiredDateFrom),
		ExpiredDateTo:    datePtr(req.ExpiredDateTo),
		Status:           req.Status,
	}
}

func datePtr(d *dateOnly) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time()
	return &t
}

// pageResponse mirrors the paged payload shape of the envelope's data
// field for search and paginated listings.
type pageResponse struct {
	Content       any   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

func newPageResponse(content any, page pagination.Request, total int64) pageResponse {
	return pageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Limit(),
		TotalElements: total,
		TotalPages:    page.TotalPages(total),
	}
}

// Record-to-response mapping is deliberately field by field; the only
// derived value is isExpired, computed against the clock at response
// time.
func mapProduct(p *domproduct.Product) productResponse {
	return productResponse{
		ID:        p.ID,
		URL:       p.URL,
		Type:      p.Type,
		IsNotify:  p.IsNotify,
		CreatedAt: dateOnly(p.CreatedAt),
		UpdatedAt: dateOnly(p.UpdatedAt),
	}
}

func mapProducts(products []*domproduct.Product) []productResponse {
	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, mapProduct(p))
	}
	return resp
}

func mapUser(u *domuser.User, now time.Time) userResponse {
	return userResponse{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		RegisterDate: dateOnly(u.RegisterDate),
		ExpiredDate:  dateOnly(u.ExpiredDate),
		Status:       u.Status,
		IsExpired:    u.Expired(now),
	}
}

func mapUsers(users []*domuser.User, now time.Time) []userResponse {
	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, mapUser(u, now))
	}
	return resp
}
