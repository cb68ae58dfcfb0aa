package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/raffialdf/evently/internal/handlers"
	"github.com/raffialdf/evently/internal/middleware"
)

func eventRows(id uuid.UUID, name string, capacity, remaining int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "image_url", "datetime", "location", "capacity", "description", "tickets_remaining", "created_at", "updated_at"}).
		AddRow(id.String(), name, "https://img.example.com/1.png", time.Now(), "New York, USA", capacity, "A fine event", remaining, time.Now(), time.Now())
}

func emptyEventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "image_url", "datetime", "location", "capacity", "description", "tickets_remaining", "created_at", "updated_at"})
}

func newEventRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter(db)
	admin := r.Group("", middleware.JWTAuthMiddleware(testSecret), middleware.AdminRequired())
	admin.POST("/events", handlers.CreateEvent)
	admin.PATCH("/events", handlers.UpdateEvent)
	admin.DELETE("/events", handlers.DeleteEvent)
	return r
}

func TestCreateEvent(t *testing.T) {
	db, mock := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	mock.ExpectExec(`INSERT INTO "events"`).WillReturnResult(sqlmock.NewResult(1, 1))

	w := performRequest(r, http.MethodPost, "/events", token, map[string]interface{}{
		"name":              "Event 1",
		"image_url":         "https://img.example.com/1.png",
		"location":          "New York, USA",
		"description":       "Event 1 description",
		"capacity":          100,
		"tickets_remaining": 100,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEventMissingFields(t *testing.T) {
	db, _ := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	w := performRequest(r, http.MethodPost, "/events", token, map[string]interface{}{
		"name":     "Event 1",
		"capacity": 100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateEventRemainingExceedsCapacity(t *testing.T) {
	db, _ := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	w := performRequest(r, http.MethodPost, "/events", token, map[string]interface{}{
		"name":              "Event 1",
		"image_url":         "https://img.example.com/1.png",
		"location":          "New York, USA",
		"description":       "Event 1 description",
		"capacity":          100,
		"tickets_remaining": 150,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMutationsForbiddenForNonAdmin(t *testing.T) {
	db, _ := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "user", false)

	payload := map[string]interface{}{
		"name":              "Event 1",
		"image_url":         "https://img.example.com/1.png",
		"location":          "New York, USA",
		"description":       "Event 1 description",
		"capacity":          100,
		"tickets_remaining": 100,
	}

	assert.Equal(t, http.StatusForbidden, performRequest(r, http.MethodPost, "/events", token, payload).Code)
	assert.Equal(t, http.StatusForbidden, performRequest(r, http.MethodPatch, "/events", token, map[string]interface{}{"id": uuid.New().String()}).Code)
	assert.Equal(t, http.StatusForbidden, performRequest(r, http.MethodDelete, "/events", token, map[string]interface{}{"id": uuid.New().String()}).Code)
}

func TestMutationsRequireToken(t *testing.T) {
	db, _ := setupTestDB(t)
	r := newEventRouter(db)

	w := performRequest(r, http.MethodPost, "/events", "", map[string]interface{}{"name": "Event 1"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateEventPartial(t *testing.T) {
	db, mock := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "events"`).WillReturnRows(eventRows(eventID, "Event 1", 100, 40))
	mock.ExpectExec(`UPDATE "events"`).WillReturnResult(sqlmock.NewResult(0, 1))

	w := performRequest(r, http.MethodPatch, "/events", token, map[string]interface{}{
		"id":       eventID.String(),
		"location": "Los Angeles, USA",
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	event := body["event"].(map[string]interface{})
	assert.Equal(t, "Los Angeles, USA", event["location"])
	assert.Equal(t, "Event 1", event["name"])
	assert.Equal(t, float64(100), event["capacity"])
	assert.Equal(t, "A fine event", event["description"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEventNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	mock.ExpectQuery(`SELECT \* FROM "events"`).WillReturnRows(emptyEventRows())

	w := performRequest(r, http.MethodPatch, "/events", token, map[string]interface{}{
		"id":       uuid.New().String(),
		"location": "Nowhere",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteEventCascades(t *testing.T) {
	db, mock := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tickets"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "user_events"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "feedback"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "event_organizers"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "events"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := performRequest(r, http.MethodDelete, "/events", token, map[string]interface{}{
		"id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEventNotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	r := newEventRouter(db)
	token := makeToken(t, uuid.New(), "admin", true)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "tickets"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "user_events"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "feedback"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "event_organizers"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "events"`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	w := performRequest(r, http.MethodDelete, "/events", token, map[string]interface{}{
		"id": uuid.New().String(),
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
