package remotework_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-attendance/internal/domain"
	"go-attendance/internal/middleware"
	"go-attendance/internal/remotework"
	remoteworkerrors "go-attendance/internal/remotework/errors"
	"go-attendance/internal/remotework/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type handlerDeps struct {
	service *mock.MockService
	handler *remotework.Handler
	actor   domain.Actor
}

func setupHandler(t *testing.T) *handlerDeps {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)
	return &handlerDeps{
		service: svc,
		handler: remotework.NewHandler(svc),
		actor: domain.Actor{
			EmployeeID: uuid.NewString(),
			CompanyID:  uuid.NewString(),
			Role:       domain.RoleEmployee,
		},
	}
}

func (d *handlerDeps) context(method, target, body string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("company_id", d.actor.CompanyID)
	middleware.SetActor(c, d.actor)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestRemoteWorkHandler_OpenWindow(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		d := setupHandler(t)
		start, end := "2024-11-18", "2024-11-22"
		d.service.EXPECT().
			OpenWindow(gomock.Any(), d.actor.CompanyID, d.actor, remotework.OpenWindowRequest{StartDate: start}).
			Return(remotework.WindowResponse{IsOpen: true, StartDate: &start, EndDate: &end, Frequency: "WEEKLY", Limit: 2, EffectiveLimit: 2}, nil)

		w, c := d.context(http.MethodPost, "/remote-work/window/open", `{"start_date":"2024-11-18"}`)
		d.handler.OpenWindow(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"is_open":true`)
	})

	t.Run("start date required", func(t *testing.T) {
		d := setupHandler(t)

		w, c := d.context(http.MethodPost, "/remote-work/window/open", `{}`)
		d.handler.OpenWindow(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("window too long", func(t *testing.T) {
		d := setupHandler(t)
		d.service.EXPECT().OpenWindow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(remotework.WindowResponse{}, remoteworkerrors.ErrWindowTooLong)

		w, c := d.context(http.MethodPost, "/remote-work/window/open", `{"start_date":"2024-11-18","end_date":"2024-11-26"}`)
		d.handler.OpenWindow(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "7 days")
	})
}

func TestRemoteWorkHandler_LogDay(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		d := setupHandler(t)
		d.service.EXPECT().
			LogDay(gomock.Any(), d.actor.CompanyID, d.actor, remotework.LogDayRequest{Date: "2024-11-18"}).
			Return(remotework.RemoteWorkLogResponse{ID: "l-1", EmployeeID: d.actor.EmployeeID, Date: "2024-11-18"}, nil)

		w, c := d.context(http.MethodPost, "/remote-work/logs", `{"date":"2024-11-18"}`)
		d.handler.LogDay(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("quota reached", func(t *testing.T) {
		d := setupHandler(t)
		d.service.EXPECT().LogDay(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(remotework.RemoteWorkLogResponse{}, remoteworkerrors.ErrQuotaReached)

		w, c := d.context(http.MethodPost, "/remote-work/logs", `{"date":"2024-11-20"}`)
		d.handler.LogDay(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "POLICY_CONFLICT")
	})

	t.Run("employee id must be a uuid", func(t *testing.T) {
		d := setupHandler(t)

		w, c := d.context(http.MethodPost, "/remote-work/logs", `{"date":"2024-11-20","employee_id":"bob"}`)
		d.handler.LogDay(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRemoteWorkHandler_SetPreferences(t *testing.T) {
	d := setupHandler(t)
	d.service.EXPECT().
		SetPreferences(gomock.Any(), d.actor.CompanyID, d.actor, remotework.SetPreferencesRequest{Dates: []string{"2024-11-19", "2024-11-21"}}).
		Return(remotework.PreferencesResponse{EmployeeID: d.actor.EmployeeID, Dates: []string{"2024-11-19", "2024-11-21"}, Removed: 1}, nil)

	w, c := d.context(http.MethodPut, "/remote-work/preferences", `{"dates":["2024-11-19","2024-11-21"]}`)
	d.handler.SetPreferences(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":1`)
}

func TestRemoteWorkHandler_ListLogs(t *testing.T) {
	d := setupHandler(t)
	d.service.EXPECT().
		ListLogs(gomock.Any(), d.actor.CompanyID, d.actor, remotework.ListLogsQuery{Start: "2024-11-01"}).
		Return([]remotework.RemoteWorkLogResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil)

	w, c := d.context(http.MethodGet, "/remote-work/logs?start=2024-11-01&page=2&page_size=2", "")
	d.handler.ListLogs(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c"`)
	assert.NotContains(t, w.Body.String(), `"id":"a"`)
	assert.Contains(t, w.Body.String(), `"totalPages":2`)
}

func TestRemoteWorkHandler_GetWindow(t *testing.T) {
	d := setupHandler(t)
	d.service.EXPECT().GetWindow(gomock.Any(), d.actor.CompanyID).
		Return(remotework.WindowResponse{IsOpen: false, Frequency: "WEEKLY", Limit: 2, EffectiveLimit: 2}, nil)

	w, c := d.context(http.MethodGet, "/remote-work/window", "")
	d.handler.GetWindow(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_open":false`)
}
