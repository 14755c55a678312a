package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fiberops/backend/internal/domain/shared"
	"github.com/fiberops/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestGetRequestID(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(*gin.Context)
		expectedID string
	}{
		{
			name: "from context string",
			setup: func(c *gin.Context) {
				c.Set("request_id", "ctx-request-id")
			},
			expectedID: "ctx-request-id",
		},
		{
			name: "from header when context empty",
			setup: func(c *gin.Context) {
				c.Request.Header.Set("X-Request-ID", "header-request-id")
			},
			expectedID: "header-request-id",
		},
		{
			name:       "empty when not set",
			setup:      func(c *gin.Context) {},
			expectedID: "",
		},
		{
			name: "context takes precedence over header",
			setup: func(c *gin.Context) {
				c.Set("request_id", "ctx-id")
				c.Request.Header.Set("X-Request-ID", "header-id")
			},
			expectedID: "ctx-id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)
			tt.setup(c)

			assert.Equal(t, tt.expectedID, getRequestID(c))
		})
	}
}

func TestGetOrgID(t *testing.T) {
	t.Run("from JWT context", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		orgID := uuid.New()
		c.Set("jwt_org_id", orgID.String())

		got, err := getOrgID(c)
		require.NoError(t, err)
		assert.Equal(t, orgID, got)
	})

	t.Run("error when missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		_, err := getOrgID(c)
		assert.Error(t, err)
	})

	t.Run("error on malformed ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Set("jwt_org_id", "not-a-uuid")

		_, err := getOrgID(c)
		assert.Error(t, err)
	})
}

func TestBaseHandlerSuccess(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Success(c, map[string]string{"key": "value"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestBaseHandlerSuccessWithMeta(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.SuccessWithMeta(c, []string{"item1", "item2"}, 100, 1, 10)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(100), resp.Meta.Total)
	assert.Equal(t, 10, resp.Meta.TotalPages)
}

func TestBaseHandlerCreated(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.Created(c, map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestBaseHandlerNoContent(t *testing.T) {
	h := &BaseHandler{}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.NoContent(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestBaseHandlerErrorHelpers(t *testing.T) {
	tests := []struct {
		name         string
		call         func(h *BaseHandler, c *gin.Context)
		expectedCode int
		expectedErr  string
	}{
		{"BadRequest", func(h *BaseHandler, c *gin.Context) { h.BadRequest(c, "bad") }, http.StatusBadRequest, dto.ErrCodeBadRequest},
		{"NotFound", func(h *BaseHandler, c *gin.Context) { h.NotFound(c, "missing") }, http.StatusNotFound, dto.ErrCodeNotFound},
		{"Unauthorized", func(h *BaseHandler, c *gin.Context) { h.Unauthorized(c, "no auth") }, http.StatusUnauthorized, dto.ErrCodeUnauthorized},
		{"Forbidden", func(h *BaseHandler, c *gin.Context) { h.Forbidden(c, "denied") }, http.StatusForbidden, dto.ErrCodeForbidden},
		{"Conflict", func(h *BaseHandler, c *gin.Context) { h.Conflict(c, "dup") }, http.StatusConflict, dto.ErrCodeConflict},
		{"InternalError", func(h *BaseHandler, c *gin.Context) { h.InternalError(c, "boom") }, http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &BaseHandler{}
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			tt.call(h, c)

			assert.Equal(t, tt.expectedCode, w.Code)

			var resp dto.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.expectedErr, resp.Error.Code)
		})
	}
}

func TestBaseHandlerHandleError(t *testing.T) {
	t.Run("domain not found error maps to 404", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		h.HandleError(c, shared.NewDomainError("NOT_FOUND", "Employee not found"))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotFound, resp.Error.Code)
		assert.Equal(t, "Employee not found", resp.Error.Message)
	})

	t.Run("business rule error maps to 422", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		h.HandleError(c, shared.NewDomainError("PERIOD_CLOSED", "Pay period already closed"))

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("field validation error maps to 400", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		h.HandleError(c, shared.NewDomainError("INVALID_EMAIL", "Invalid email"))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown error maps to 500 without leaking details", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		h.HandleError(c, assert.AnError)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), assert.AnError.Error())
	})

	t.Run("request ID included in error response", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)
		c.Set("request_id", "req-789")

		h.HandleError(c, shared.NewDomainError("NOT_FOUND", "gone"))

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, "req-789", resp.Error.RequestID)
	})

	t.Run("nil error writes nothing", func(t *testing.T) {
		h := &BaseHandler{}
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		h.HandleError(c, nil)

		assert.Empty(t, w.Body.String())
	})
}
