package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	router := newTestAPI().Router()

	rec, env := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob B", "registerDate": "2024-01-15", "status": 9})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, env.Success)

	var data userResponse
	decodeData(t, env, &data)
	require.Positive(t, data.ID)
	require.Equal(t, "bob", data.Username)
	require.Equal(t, "2024-02-15", data.ExpiredDate.Time().Format(dateLayout))
	require.Equal(t, 1, data.Status, "client-supplied status is ignored on create")
	require.True(t, data.IsExpired, "a 2024 expiry is already in the past")
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	router := newTestAPI().Router()

	rec, _ := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob B", "registerDate": "2024-01-15"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Other Bob", "registerDate": "2024-03-01"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.Contains(t, *env.Error, "tồn tại")
}

func TestCreateUser_UsernameTooShort(t *testing.T) {
	router := newTestAPI().Router()

	rec, env := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "ab", "fullName": "Short Name", "registerDate": "2024-01-15"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
	require.NotNil(t, env.Error)
}

func TestCreateUser_MissingRegisterDate(t *testing.T) {
	router := newTestAPI().Router()

	rec, env := doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob B"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, env.Success)
}

func TestUpdateUser(t *testing.T) {
	router := newTestAPI().Router()

	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob B", "registerDate": "2024-01-15"})

	rec, env := doRequest(t, router, http.MethodPut, "/api/users/1",
		map[string]any{"registerDate": "2024-01-31", "status": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	var data userResponse
	decodeData(t, env, &data)
	require.Equal(t, "2024-02-29", data.ExpiredDate.Time().Format(dateLayout))
	require.Equal(t, 2, data.Status)
	require.Equal(t, "bob", data.Username)
}

func TestUpdateUser_NotFound(t *testing.T) {
	router := newTestAPI().Router()

	rec, _ := doRequest(t, router, http.MethodPut, "/api/users/42",
		map[string]any{"registerDate": "2024-01-15", "status": 1})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUser_NotFound(t *testing.T) {
	router := newTestAPI().Router()

	rec, env := doRequest(t, router, http.MethodGet, "/api/users/42", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.False(t, env.Success)
}

type userPage struct {
	Content       []userResponse `json:"content"`
	Page          int            `json:"page"`
	Size          int            `json:"size"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int64          `json:"totalPages"`
}

func TestSearchUsers(t *testing.T) {
	router := newTestAPI().Router()

	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "alice", "fullName": "Alice Anderson", "registerDate": "2024-01-10"})
	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob Brown", "registerDate": "2024-02-20"})
	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bobby", "fullName": "Bobby Blue", "registerDate": "2024-03-05"})

	rec, env := doRequest(t, router, http.MethodPost, "/api/users/search", map[string]any{"username": "BOB"})
	require.Equal(t, http.StatusOK, rec.Code)

	var page userPage
	decodeData(t, env, &page)
	require.Equal(t, int64(2), page.TotalElements)
	for _, u := range page.Content {
		require.Contains(t, u.Username, "bob")
	}
}

func TestSearchUsers_DateRange(t *testing.T) {
	router := newTestAPI().Router()

	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "alice", "fullName": "Alice Anderson", "registerDate": "2024-01-10"})
	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob Brown", "registerDate": "2024-02-20"})

	_, env := doRequest(t, router, http.MethodPost, "/api/users/search",
		map[string]any{"registerDateFrom": "2024-02-01", "registerDateTo": "2024-02-28"})

	var page userPage
	decodeData(t, env, &page)
	require.Equal(t, int64(1), page.TotalElements)
	require.Equal(t, "bob", page.Content[0].Username)
}

func TestSearchUsers_EmptyFiltersReturnEveryone(t *testing.T) {
	router := newTestAPI().Router()

	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "alice", "fullName": "Alice Anderson", "registerDate": "2024-01-10"})
	doRequest(t, router, http.MethodPost, "/api/users",
		map[string]any{"username": "bob", "fullName": "Bob Brown", "registerDate": "2024-02-20"})

	_, env := doRequest(t, router, http.MethodPost, "/api/users/search", map[string]any{})

	var page userPage
	decodeData(t, env, &page)
	require.Equal(t, int64(2), page.TotalElements)
	require.Len(t, page.Content, 2)
}
