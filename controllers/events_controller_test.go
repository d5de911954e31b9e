package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/educhain-dev/educhain/mocks"
	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestEventsStream(t *testing.T) {
	t.Run("should stream payloads as server-sent events until the feed closes", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any, 2)
		ch <- map[string]any{"transactionType": "MANUFACTURED", "blockHash": "0x1"}
		ch <- map[string]any{"transactionType": "GPS_UPDATE", "blockHash": "0x2"}
		close(ch)

		broker.On("Subscribe", shared.ChannelTransactions).Return((<-chan map[string]any)(ch), nil)
		broker.On("Unsubscribe", shared.ChannelTransactions, mock.Anything).Return()

		req := httptest.NewRequest(http.MethodGet, "/", nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		h := NewEventsController(broker)

		assert.NoError(t, h.Transactions(ctx))
		assert.Equal(t, "text/event-stream", rec.Header().Get(echo.HeaderContentType))
		assert.Contains(t, rec.Body.String(), "0x1")
		assert.Contains(t, rec.Body.String(), "0x2")
	})

	t.Run("should drop payloads that do not match the type filter", func(t *testing.T) {
		broker := mocks.NewPubSubBroker(t)

		ch := make(chan map[string]any, 2)
		ch <- map[string]any{"transactionType": "MANUFACTURED", "blockHash": "0x1"}
		ch <- map[string]any{"transactionType": "GPS_UPDATE", "blockHash": "0x2"}
		close(ch)

		broker.On("Subscribe", shared.ChannelTransactions).Return((<-chan map[string]any)(ch), nil)
		broker.On("Unsubscribe", shared.ChannelTransactions, mock.Anything).Return()

		req := httptest.NewRequest(http.MethodGet, "/?transactionType=GPS_UPDATE", nil)

		e := echo.New()
		rec := httptest.NewRecorder()
		ctx := e.NewContext(req, rec)

		h := NewEventsController(broker)

		assert.NoError(t, h.Transactions(ctx))
		assert.NotContains(t, rec.Body.String(), "0x1")
		assert.Contains(t, rec.Body.String(), "0x2")
	})
}
