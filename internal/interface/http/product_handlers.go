package http

import (
	"net/http"
	"strconv"

	"backend-tracking/internal/domain/pagination"
	domproduct "backend-tracking/internal/domain/product"
	productuc "backend-tracking/internal/usecase/product"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Tạo sản phẩm thất bại", err)
		return
	}

	created, err := a.productSvc.Create(r.Context(), toProductInput(req))
	if err != nil {
		respondDomainError(w, "Tạo sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusCreated, successResponse("Tạo sản phẩm thành công", mapProduct(created)))
}

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := a.productSvc.List(r.Context())
	if err != nil {
		respondDomainError(w, "Lỗi khi lấy danh sách sản phẩm", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", mapProducts(products)))
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Không tìm thấy sản phẩm", err)
		return
	}

	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, "Không tìm thấy sản phẩm", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", mapProduct(p)))
}

func (a *API) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Cập nhật sản phẩm thất bại", err)
		return
	}

	var req productRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Cập nhật sản phẩm thất bại", err)
		return
	}

	updated, err := a.productSvc.Update(r.Context(), id, toProductInput(req))
	if err != nil {
		respondDomainError(w, "Cập nhật sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Cập nhật sản phẩm thành công", mapProduct(updated)))
}

func (a *API) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Xóa sản phẩm thất bại", err)
		return
	}

	if err := a.productSvc.Delete(r.Context(), id); err != nil {
		respondDomainError(w, "Xóa sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Xóa sản phẩm thành công", nil))
}

func (a *API) handleListProductsByType(w http.ResponseWriter, r *http.Request) {
	productType := chi.URLParam(r, "type")

	products, err := a.productSvc.ListByType(r.Context(), productType)
	if err != nil {
		respondDomainError(w, "Lỗi khi lấy sản phẩm theo type", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", mapProducts(products)))
}

func (a *API) handleToggleNotification(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Cập nhật thông báo thất bại", err)
		return
	}

	p, err := a.productSvc.ToggleNotification(r.Context(), id)
	if err != nil {
		respondDomainError(w, "Cập nhật thông báo thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Cập nhật thông báo thành công", mapProduct(p)))
}

func (a *API) handleListProductsPaginated(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := pagination.Request{
		Page:    queryInt(q.Get("page"), 0),
		Size:    queryInt(q.Get("size"), pagination.DefaultSize),
		SortBy:  queryString(q.Get("sortBy"), "createdAt"),
		SortDir: queryString(q.Get("sortDir"), "desc"),
	}

	var filter domproduct.ListFilter
	if t := q.Get("type"); t != "" {
		filter.Type = &t
	}
	if n := q.Get("isNotify"); n != "" {
		if v, err := strconv.Atoi(n); err == nil {
			filter.IsNotify = &v
		}
	}

	products, total, err := a.productSvc.ListPaginated(r.Context(), filter, page)
	if err != nil {
		respondDomainError(w, "Lỗi khi lấy danh sách sản phẩm", err)
		return
	}
	writeJSON(w, http.StatusOK,
		successResponse("Thành công", newPageResponse(mapProducts(products), page, total)))
}

func (a *API) handleDistinctTypes(w http.ResponseWriter, r *http.Request) {
	types, err := a.productSvc.DistinctTypes(r.Context())
	if err != nil {
		respondDomainError(w, "Lỗi khi lấy danh sách type", err)
		return
	}
	if types == nil {
		types = []string{}
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", types))
}

func (a *API) handleProductStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := a.productSvc.Statistics(r.Context())
	if err != nil {
		respondDomainError(w, "Lỗi khi lấy thống kê", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", statisticsResponse{
		TotalProducts:         stats.TotalProducts,
		ActiveNotifications:   stats.ActiveNotifications,
		InactiveNotifications: stats.InactiveNotifications,
	}))
}

func (a *API) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	var req productSearchRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Tìm kiếm sản phẩm thất bại", err)
		return
	}

	filter := domproduct.SearchFilter{
		URL:      req.URL,
		Type:     req.Type,
		IsNotify: req.IsNotify,
	}
	page := req.pageRequest()

	products, total, err := a.productSvc.Search(r.Context(), filter, page)
	if err != nil {
		respondDomainError(w, "Tìm kiếm sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK,
		successResponse("Thành công", newPageResponse(mapProducts(products), page, total)))
}

func toProductInput(req productRequest) productuc.Input {
	return productuc.Input{
		URL:      req.URL,
		Type:     req.Type,
		IsNotify: req.IsNotify,
	}
}

func queryInt(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func queryString(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	return raw
}
