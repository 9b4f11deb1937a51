package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domproduct "backend-tracking/internal/domain/product"
	domuser "backend-tracking/internal/domain/user"
	productuc "backend-tracking/internal/usecase/product"
	useruc "backend-tracking/internal/usecase/user"
)

type API struct {
	productSvc *productuc.Service
	userSvc    *useruc.Service
	validator  *validator.Validate
}

type Dependencies struct {
	ProductService *productuc.Service
	UserService    *useruc.Service
}

func NewAPI(deps Dependencies) *API {
	return &API{
		productSvc: deps.ProductService,
		userSvc:    deps.UserService,
		validator:  validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(pr chi.Router) {
			pr.Post("/", a.handleCreateProduct)
			pr.Get("/", a.handleListProducts)
			pr.Get("/paginated", a.handleListProductsPaginated)
			pr.Get("/types", a.handleDistinctTypes)
			pr.Get("/statistics", a.handleProductStatistics)
			pr.Post("/search", a.handleSearchProducts)
			pr.Get("/type/{type}", a.handleListProductsByType)
			pr.Get("/{id}", a.handleGetProduct)
			pr.Put("/{id}", a.handleUpdateProduct)
			pr.Delete("/{id}", a.handleDeleteProduct)
			pr.Patch("/{id}/toggle-notification", a.handleToggleNotification)
		})

		r.Route("/users", func(ur chi.Router) {
			ur.Post("/", a.handleCreateUser)
			ur.Post("/search", a.handleSearchUsers)
			ur.Get("/{id}", a.handleGetUser)
			ur.Put("/{id}", a.handleUpdateUser)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// apiResponse is the uniform envelope every endpoint answers with.
type apiResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
	Data    any     `json:"data"`
	Error   *string `json:"error"`
}

func successResponse(message string, data any) apiResponse {
	return apiResponse{Success: true, Message: &message, Data: data}
}

func errorResponse(message string, err error) apiResponse {
	detail := err.Error()
	return apiResponse{Success: false, Message: &message, Error: &detail}
}

// respondDomainError picks the status from the error kind: missing
// records map to 404, uniqueness conflicts and bad payloads to 400,
// anything else to 500. The raw message is surfaced as-is; this is an
// internal tool.
func respondDomainError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domuser.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(message, err))
	case errors.Is(err, domproduct.ErrURLExists),
		errors.Is(err, domuser.ErrUsernameExists):
		writeJSON(w, http.StatusBadRequest, errorResponse(message, err))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse(message, err))
	}
}

func respondBadRequest(w http.ResponseWriter, message string, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse(message, err))
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}
