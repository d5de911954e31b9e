package middlewares

import (
	"testing"

	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestHTTPErrorMapping(t *testing.T) {
	t.Run("should map the domain errors to status codes", func(t *testing.T) {
		assert.Equal(t, 404, httpError(gorm.ErrRecordNotFound).Code)
		assert.Equal(t, 409, httpError(shared.ErrInvalidTransition).Code)
		assert.Equal(t, 409, httpError(shared.ErrChainIntegrity).Code)
		assert.Equal(t, 409, httpError(shared.ErrSupplyNotInTransit).Code)
		assert.Equal(t, 400, httpError(shared.ErrInvalidCoordinate).Code)
		assert.Equal(t, 500, httpError(shared.ErrHashComputation).Code)
	})

	t.Run("should unwrap wrapped domain errors", func(t *testing.T) {
		err := errors.Wrap(shared.ErrChainIntegrity, "chain head moved: expected 0x1")
		assert.Equal(t, 409, httpError(err).Code)
	})

	t.Run("should pass through explicit http errors", func(t *testing.T) {
		assert.Equal(t, 418, httpError(echo.NewHTTPError(418, "teapot")).Code)
	})

	t.Run("should default to a 500", func(t *testing.T) {
		assert.Equal(t, 500, httpError(errors.New("boom")).Code)
	})
}
