package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/educhain-dev/educhain/database/models"
	"github.com/educhain-dev/educhain/dtos"
	"github.com/educhain-dev/educhain/mocks"
	"github.com/educhain-dev/educhain/utils"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestLocationControllerUpdate(t *testing.T) {
	t.Run("should fail validation for out of range coordinates", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"latitude": 91, "longitude": 77.1025, "locationName": "Nowhere"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		ctx := e.NewContext(req, httptest.NewRecorder())
		ctx.SetParamNames("batchID")
		ctx.SetParamValues("EDU-2025-001")

		h := NewLocationController(nil, nil, nil)

		err := h.UpdateLocation(ctx)

		assert.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		assert.True(t, ok)
		assert.Equal(t, 400, httpErr.Code)
	})

	t.Run("should return the appended gps entry", func(t *testing.T) {
		locationService := mocks.NewLocationService(t)
		locationService.On("UpdateLocation", mock.Anything, "EDU-2025-001", dtos.LocationUpdateRequest{
			Latitude:     28.7041,
			Longitude:    77.1025,
			LocationName: "Delhi",
		}).Return(models.Transaction{
			TransactionType: dtos.TransactionTypeGPSUpdate,
			Status:          dtos.SupplyStatusInTransit,
			BlockHash:       "0xgps",
			Latitude:        utils.Ptr(28.7041),
			Longitude:       utils.Ptr(77.1025),
			LocationName:    utils.Ptr("Delhi"),
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"latitude": 28.7041, "longitude": 77.1025, "locationName": "Delhi"}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)
		ctx.SetParamNames("batchID")
		ctx.SetParamValues("EDU-2025-001")

		h := NewLocationController(nil, nil, locationService)

		assert.NoError(t, h.UpdateLocation(ctx))
		assert.Equal(t, 200, rec.Code)
		assert.Contains(t, rec.Body.String(), "0xgps")
	})
}
