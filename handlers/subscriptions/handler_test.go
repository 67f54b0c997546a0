package subscriptions

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
	router.POST("/subscriptions/subscribe", SubscribeHandler)
	router.DELETE("/subscriptions/:creatorId", Unsubscribe)
	router.GET("/subscriptions/my-subscriptions", GetMySubscriptions)
	router.GET("/subscriptions/status/:creatorId", GetSubscriptionStatus)
	return router
}

func expectCreatorLookup(mock sqlmock.Sqlmock, creatorID uint, isCreator bool) {
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "is_creator", "is_active", "subscription_price"}).
			AddRow(creatorID, "creator@example.com", isCreator, true, 10))
}

func subscriptionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "subscriber_id", "creator_id", "start_date", "end_date", "created_at", "updated_at"})
}

func postSubscribe(router *gin.Engine, creatorID uint) *httptest.ResponseRecorder {
	body, _ := json.Marshal(map[string]uint{"creatorId": creatorID})
	req, _ := http.NewRequest(http.MethodPost, "/subscriptions/subscribe", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestSubscribe(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCreatorLookup(mock, 1, true)
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2 AND end_date IS NULL`).
		WillReturnRows(subscriptionRows())
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "subscriptions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp := postSubscribe(setupRouter(2), 1)

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"creatorId":1`)
}

// Subscribing twice returns the existing row with a 200 instead of failing.
func TestSubscribe_Idempotent(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCreatorLookup(mock, 1, true)
	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2 AND end_date IS NULL`).
		WillReturnRows(subscriptionRows().AddRow(9, 2, 1, now, nil, now, now))

	resp := postSubscribe(setupRouter(2), 1)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"id":9`)
}

func TestSubscribe_Self(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()
	_ = mock

	resp := postSubscribe(setupRouter(2), 2)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "Cannot subscribe to yourself")
}

func TestSubscribe_NotACreator(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	expectCreatorLookup(mock, 1, false)

	resp := postSubscribe(setupRouter(2), 1)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	assert.Contains(t, resp.Body.String(), "Can only subscribe to a creator")
}

func TestSubscribe_CreatorNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp := postSubscribe(setupRouter(2), 42)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Creator not found")
}

func TestUnsubscribe(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(subscriptionRows().AddRow(9, 2, 1, now, nil, now, now))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "subscriptions"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodDelete, "/subscriptions/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Successfully unsubscribed")
}

func TestUnsubscribe_NotSubscribed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(subscriptionRows())

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodDelete, "/subscriptions/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Subscription not found")
}

func TestGetSubscriptionStatus_Subscribed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(subscriptionRows().AddRow(9, 2, 1, start, nil, start, start))

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/status/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"isSubscribed":true`)
	assert.Contains(t, resp.Body.String(), "2026-01-31")
}

func TestGetSubscriptionStatus_NotSubscribed(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 AND creator_id = \$2`).
		WillReturnRows(subscriptionRows())

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/status/1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"isSubscribed":false`)
}

func TestGetMySubscriptions(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery(`SELECT \* FROM "subscriptions" WHERE subscriber_id = \$1 ORDER BY created_at DESC`).
		WillReturnRows(subscriptionRows().
			AddRow(2, 2, 3, now, nil, now, now).
			AddRow(1, 2, 1, now, nil, now, now))

	router := setupRouter(2)
	req, _ := http.NewRequest(http.MethodGet, "/subscriptions/my-subscriptions", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var subs []map[string]interface{}
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &subs))
	assert.Len(t, subs, 2)
}
