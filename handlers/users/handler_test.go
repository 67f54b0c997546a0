package users

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sumeetkoyande/myFans/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()
	m.Run()
}

func setupRouter(userID uint) *gin.Engine {
	router := testutils.SetupTestRouter()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	router.GET("/users/profile", GetProfile)
	router.PUT("/users/profile", UpdateProfile)
	router.PUT("/users/password", ChangePassword)
	router.PUT("/users/become-creator", BecomeCreator)
	router.GET("/users/creators", GetCreators)
	router.GET("/users/creator/:id", GetCreatorProfile)
	return router
}

func expectUser(mock sqlmock.Sqlmock, id uint, password string, isCreator bool) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "name", "is_creator", "is_active", "subscription_price", "created_at", "updated_at"}).
			AddRow(id, "user@example.com", password, "User", isCreator, true, 0, now, now))
}

func putJSON(router *gin.Engine, path string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(http.MethodPut, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestGetProfile(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectUser(mock, 2, "hash", false)

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/users/profile", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "user@example.com")
	// The password hash must never leave the API.
	assert.NotContains(t, resp.Body.String(), "hash")
}

func TestUpdateProfile(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectUser(mock, 2, "hash", false)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := putJSON(setupRouter(2), "/users/profile", map[string]string{
		"name": "New Name",
		"bio":  "hello",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestChangePassword(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("current123"), bcrypt.MinCost)
	assert.NoError(t, err)

	expectUser(mock, 2, string(hash), false)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := putJSON(setupRouter(2), "/users/password", map[string]string{
		"currentPassword": "current123",
		"newPassword":     "next-password",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Password updated successfully")
}

func TestChangePassword_WrongCurrent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	hash, err := bcrypt.GenerateFromPassword([]byte("current123"), bcrypt.MinCost)
	assert.NoError(t, err)

	expectUser(mock, 2, string(hash), false)

	resp := putJSON(setupRouter(2), "/users/password", map[string]string{
		"currentPassword": "not-the-password",
		"newPassword":     "next-password",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Current password is incorrect")
}

func TestBecomeCreator(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectUser(mock, 2, "hash", false)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	resp := putJSON(setupRouter(2), "/users/become-creator", map[string]int{
		"subscriptionPrice": 500,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestBecomeCreator_AlreadyCreator(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectUser(mock, 2, "hash", true)

	resp := putJSON(setupRouter(2), "/users/become-creator", map[string]int{
		"subscriptionPrice": 500,
	})

	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Contains(t, resp.Body.String(), "User is already a creator")
}

func TestBecomeCreator_InvalidPrice(t *testing.T) {
	resp := putJSON(setupRouter(2), "/users/become-creator", map[string]int{
		"subscriptionPrice": -5,
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func creatorSummaryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "email", "name", "bio", "avatar", "subscription_price", "is_active", "created_at", "photo_count", "subscriber_count"})
}

func TestGetCreators(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT users\.id, users\.email, users\.name`).
		WillReturnRows(creatorSummaryRows().
			AddRow(1, "creator@example.com", "Creator", "", "", 10, true, now, 12, 3))

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/users/creators", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"photoCount":12`)
	assert.Contains(t, resp.Body.String(), `"subscriberCount":3`)
}

func TestGetCreatorProfile_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT users\.id, users\.email, users\.name`).
		WillReturnRows(creatorSummaryRows())

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/users/creator/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Creator not found")
}
