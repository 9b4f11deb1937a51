package http

import (
	"net/http"
	"time"

	"backend-tracking/internal/domain/pagination"
	useruc "backend-tracking/internal/usecase/user"
)

func (a *API) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req userCreateRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Tạo sản phẩm thất bại", err)
		return
	}

	created, err := a.userSvc.Create(r.Context(), useruc.CreateInput{
		Username:     req.Username,
		FullName:     req.FullName,
		RegisterDate: req.RegisterDate.Time(),
		Status:       req.Status,
	})
	if err != nil {
		respondDomainError(w, "Tạo sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusCreated,
		successResponse("Tạo sản phẩm thành công", mapUser(created, time.Now())))
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Cập nhật sản phẩm thất bại", err)
		return
	}

	var req userUpdateRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Cập nhật sản phẩm thất bại", err)
		return
	}

	updated, err := a.userSvc.Update(r.Context(), id, useruc.UpdateInput{
		Username:     req.Username,
		FullName:     req.FullName,
		RegisterDate: req.RegisterDate.Time(),
		Status:       req.Status,
	})
	if err != nil {
		respondDomainError(w, "Cập nhật sản phẩm thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK,
		successResponse("Cập nhật sản phẩm thành công", mapUser(updated, time.Now())))
}

func (a *API) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondBadRequest(w, "Không tìm thấy user", err)
		return
	}

	u, err := a.userSvc.GetByID(r.Context(), id)
	if err != nil {
		respondDomainError(w, "Không tìm thấy user", err)
		return
	}
	writeJSON(w, http.StatusOK, successResponse("Thành công", mapUser(u, time.Now())))
}

func (a *API) handleSearchUsers(w http.ResponseWriter, r *http.Request) {
	var req userSearchRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondBadRequest(w, "Tìm kiếm user thất bại", err)
		return
	}

	page := pagination.Request{Page: req.Page, Size: req.Size}

	users, total, err := a.userSvc.Search(r.Context(), req.filter(), page)
	if err != nil {
		respondDomainError(w, "Tìm kiếm user thất bại", err)
		return
	}
	writeJSON(w, http.StatusOK,
		successResponse("Thành công", newPageResponse(mapUsers(users, time.Now()), page, total)))
}
