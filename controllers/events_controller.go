// Copyright (C) 2025 EduChain Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/educhain-dev/educhain/shared"
	"github.com/labstack/echo/v4"
)

// EventsController streams appended ledger entries to dashboard clients as
// server-sent events. A closed stream is the signal to the client to re-query
// and reconnect, there is no replay.
type EventsController struct {
	broker shared.PubSubBroker
}

func NewEventsController(broker shared.PubSubBroker) *EventsController {
	return &EventsController{
		broker: broker,
	}
}

func (controller *EventsController) Transactions(ctx shared.Context) error {
	return controller.stream(ctx, shared.ChannelTransactions)
}

func (controller *EventsController) GPSUpdates(ctx shared.Context) error {
	return controller.stream(ctx, shared.ChannelGPSUpdates)
}

func (controller *EventsController) stream(ctx shared.Context, channel shared.PubSubChannel) error {
	messages, err := controller.broker.Subscribe(channel)
	if err != nil {
		return echo.NewHTTPError(500, "could not subscribe to change feed").WithInternal(err)
	}
	defer controller.broker.Unsubscribe(channel, messages)

	// optional filter on the transaction type, e.g. ?transactionType=GPS_UPDATE
	typeFilter := ctx.QueryParam("transactionType")

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case payload, ok := <-messages:
			if !ok {
				// broker shut down, let the client reconnect
				return nil
			}

			if typeFilter != "" {
				if txType, _ := payload["transactionType"].(string); txType != typeFilter {
					continue
				}
			}

			data, err := json.Marshal(payload)
			if err != nil {
				continue
			}

			if _, err := fmt.Fprintf(resp, "data: %s\n\n", data); err != nil {
				return nil
			}
			resp.Flush()
		}
	}
}
