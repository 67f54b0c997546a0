package photos

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
	router.GET("/photos", ListPhotos)
	router.GET("/photos/:id", GetPhoto)
	router.PUT("/photos/:id", UpdatePhoto)
	router.DELETE("/photos/:id", DeletePhoto)
	router.GET("/photos/creator/:id", GetCreatorGallery)
	return router
}

func photoColumns() []string {
	return []string{"id", "creator_id", "url", "description", "is_premium", "created_at", "updated_at"}
}

func expectPhotoByID(mock sqlmock.Sqlmock, id, creatorID uint, url string, premium bool) {
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(photoColumns()).
			AddRow(id, creatorID, url, "a photo", premium, now, now))
}

func TestGetPhoto_Public(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 1, "https://cdn/p.jpg", false)

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/photos/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "https://cdn/p.jpg")
}

// A premium photo the viewer is not entitled to answers exactly like a
// missing photo.
func TestGetPhoto_PremiumNonSubscriber(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 1, "https://cdn/p.jpg", true)
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/photos/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Photo not found or access denied")
	assert.NotContains(t, resp.Body.String(), "https://cdn/p.jpg")
}

func TestGetPhoto_PremiumOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 2, "https://cdn/p.jpg", true)

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/photos/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestGetPhoto_NotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(photoColumns()))

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/photos/42", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Photo not found or access denied")
}

func TestUpdatePhoto(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 2, "https://cdn/p.jpg", false)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "photos" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body, _ := json.Marshal(map[string]interface{}{"isPremium": true})
	req, _ := http.NewRequest(http.MethodPut, "/photos/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestUpdatePhoto_NotOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 1, "https://cdn/p.jpg", false)

	body, _ := json.Marshal(map[string]interface{}{"description": "mine now"})
	req, _ := http.NewRequest(http.MethodPut, "/photos/1", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "You can only update your own photos")
}

func TestDeletePhoto(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 2, "", false)
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "photos"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	req, _ := http.NewRequest(http.MethodDelete, "/photos/1", nil)
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Photo deleted successfully")
}

func TestDeletePhoto_NotOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectPhotoByID(mock, 1, 1, "", false)

	req, _ := http.NewRequest(http.MethodDelete, "/photos/1", nil)
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "You can only delete your own photos")
}

func TestListPhotos(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE is_premium = \$1`).
		WillReturnRows(sqlmock.NewRows(photoColumns()).
			AddRow(1, 1, "https://cdn/p1.jpg", "", false, now, now))
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE creator_id = \$1 AND is_premium = \$2`).
		WillReturnRows(sqlmock.NewRows(photoColumns()))
	mock.ExpectQuery(`SELECT "creator_id" FROM "subscriptions" WHERE subscriber_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"creator_id"}))

	req, _ := http.NewRequest(http.MethodGet, "/photos", nil)
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var photos []map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &photos))
	assert.Len(t, photos, 1)
}

func TestGetCreatorGallery_NonSubscriber(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT \* FROM "photos" WHERE creator_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(photoColumns()).
			AddRow(2, 1, "https://cdn/premium.jpg", "", true, now, now).
			AddRow(1, 1, "https://cdn/public.jpg", "", false, now, now))

	req, _ := http.NewRequest(http.MethodGet, "/photos/creator/1", nil)
	resp := httptest.NewRecorder()
	setupRouter(2).ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"hasAccess":false`)
	assert.Contains(t, resp.Body.String(), `"premiumCount":1`)
	assert.NotContains(t, resp.Body.String(), "https://cdn/premium.jpg")
}
