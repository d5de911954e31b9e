package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSupplyControllerCreate(t *testing.T) {
	t.Run("should fail if the body is not json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("fantasy"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewSupplyController(nil, nil)

		err := h.Create(ctx)
		if err == nil {
			t.Fail()
		}
	})

	t.Run("should fail validation without a batch id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"itemType": "Textbooks"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewSupplyController(nil, nil)

		err := h.Create(ctx)

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should hand a valid request to the service", func(t *testing.T) {
		supplyService := mocks.NewSupplyService(t)
		supplyService.On("Create", mock.Anything, mock.Anything).Return(models.Supply{
			BatchID:       "EDU-2025-001",
			CurrentStatus: dtos.SupplyStatusManufactured,
		}, nil)

		body := `{"batchId": "EDU-2025-001", "itemType": "Textbooks", "category": "Books", "quantity": 100, "unitPrice": 50, "destinationState": "Maharashtra", "destinationDistrict": "Pune", "fromLocation": "Delhi Factory"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		h := NewSupplyController(nil, supplyService)

		assert.NoError(t, h.Create(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "EDU-2025-001")
	})
}

func TestSupplyControllerList(t *testing.T) {
	t.Run("should reject an unknown status filter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?status=teleported", nil)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())

		h := NewSupplyController(nil, nil)

		err := h.List(ctx)

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})
}

func TestSupplyControllerVerify(t *testing.T) {
	t.Run("should answer an unknown hash with a neutral response", func(t *testing.T) {
		supplyService := mocks.NewSupplyService(t)
		supplyService.On("Verify", "0xunknown").Return(dtos.VerifyResponseDTO{Authentic: false}, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("blockHash")
		ctx.SetParamValues("0xunknown")

		h := NewSupplyController(nil, supplyService)

		assert.NoError(t, h.Verify(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), `"authentic":false`)
	})
}
