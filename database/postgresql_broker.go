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
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/educhain-dev/educhain/monitoring"
	"github.com/educhain-dev/educhain/shared"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type PostgreSQLMessage struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"sender_id,omitempty"`
}

func (m PostgreSQLMessage) GetChannel() shared.PubSubChannel {
	return m.Channel
}

func (m PostgreSQLMessage) GetPayload() map[string]any {
	return m.Payload
}

type ListeningConnection struct {
	Conn        *pgxpool.Conn
	Subscribers []chan map[string]any
}

// PostgreSQLBroker implements the PubSubBroker interface using PostgreSQL
// LISTEN/NOTIFY. Every appended ledger entry is published through it, so a
// fleet of api instances shares one change feed without an extra message
// broker.
type PostgreSQLBroker struct {
	db                       *pgxpool.Pool
	subscribers              map[shared.PubSubChannel]ListeningConnection
	subscribeMux             sync.RWMutex
	wg                       sync.WaitGroup
	ID                       string
	shouldReceiveOwnMessages bool
}

func (b *PostgreSQLBroker) SetShouldReceiveOwnMessages(should bool) {
	b.shouldReceiveOwnMessages = should
}

// NewPostgreSQLBroker creates a new PostgreSQL broker. The broker receives
// its own messages since the instance appending ledger entries usually also
// serves the event stream.
func NewPostgreSQLBroker(db *pgxpool.Pool) (*PostgreSQLBroker, error) {
	broker := &PostgreSQLBroker{
		db:                       db,
		subscribers:              make(map[shared.PubSubChannel]ListeningConnection),
		ID:                       uuid.New().String(),
		shouldReceiveOwnMessages: true,
	}

	return broker, nil
}

// Publish implements the PubSubBroker interface
func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	topic := message.GetChannel()

	pgMessage := PostgreSQLMessage{
		ID:        uuid.New().String(),
		Channel:   topic,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.ID,
	}

	messageJSON, err := json.Marshal(pgMessage)
	if err != nil {
		return fmt.Errorf("failed to marshal PostgreSQL message: %w", err)
	}

	query := fmt.Sprintf("NOTIFY %s, '%s'", pq.QuoteIdentifier(string(topic)), string(messageJSON))
	_, err = b.db.Exec(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", topic, "messageID", pgMessage.ID)
	return nil
}

// Subscribe implements the PubSubBroker interface
func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	// buffered so a slow consumer does not block the notification loop
	ch := make(chan map[string]any, 100)

	if _, exists := b.subscribers[topic]; !exists {
		ctx := context.Background()
		ctxWithTimeout, cancel := context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
		conn, err := b.db.Acquire(ctxWithTimeout)
		if err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to acquire connection for listening: %w", err)
		}
		if _, err = conn.Exec(context.Background(), "LISTEN "+pq.QuoteIdentifier(string(topic))); err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}
		b.wg.Go(func() {
			b.processMessages(topic, conn)
		})

		b.subscribers[topic] = ListeningConnection{
			Conn:        conn,
			Subscribers: []chan map[string]any{},
		}
	}

	b.subscribers[topic] = ListeningConnection{
		Conn:        b.subscribers[topic].Conn,
		Subscribers: append(b.subscribers[topic].Subscribers, ch),
	}

	return ch, nil
}

// Unsubscribe removes a subscriber channel and closes it. The LISTEN
// connection stays open for the remaining subscribers of the topic.
func (b *PostgreSQLBroker) Unsubscribe(topic shared.PubSubChannel, ch <-chan map[string]any) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	listening, exists := b.subscribers[topic]
	if !exists {
		return
	}

	remaining := make([]chan map[string]any, 0, len(listening.Subscribers))
	for _, subscriber := range listening.Subscribers {
		if subscriber == ch {
			close(subscriber)
			continue
		}
		remaining = append(remaining, subscriber)
	}

	b.subscribers[topic] = ListeningConnection{
		Conn:        listening.Conn,
		Subscribers: remaining,
	}
}

// processMessages handles incoming notifications in a separate goroutine
func (b *PostgreSQLBroker) processMessages(topic shared.PubSubChannel, conn *pgxpool.Conn) {
	for {
		notification, err := conn.Conn().WaitForNotification(context.TODO())
		if err != nil {
			conn.Release()
			monitoring.Alert("could not listen for notifications from PostgreSQL broker", err)
			return
		}
		if notification != nil && notification.Channel == string(topic) {
			var message PostgreSQLMessage
			if err := json.Unmarshal([]byte(notification.Payload), &message); err != nil {
				slog.Error("Failed to unmarshal message", "error", err, "payload", notification.Payload)
				continue
			}

			if message.SenderID == b.ID && !b.shouldReceiveOwnMessages {
				slog.Debug("ignoring message sent by self", "messageID", message.ID, "topic", message.Channel)
				continue
			}

			b.subscribeMux.RLock()
			subscribers, exists := b.subscribers[topic]
			b.subscribeMux.RUnlock()

			if !exists {
				slog.Warn("no subscribers for topic", "topic", topic)
				continue
			}

			for _, subscriber := range subscribers.Subscribers {
				select {
				case subscriber <- message.Payload:
				default:
					slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", message.ID)
				}
			}

			slog.Debug("message distributed", "topic", topic, "messageID", message.ID, "subscribers", len(subscribers.Subscribers))
		}
	}
}

// IsHealthy checks if the broker is functioning properly
func (b *PostgreSQLBroker) IsHealthy() bool {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	for topic, listeningConn := range b.subscribers {
		ctx := context.Background()
		ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := listeningConn.Conn.Ping(ctxWithTimeout); err != nil {
			slog.Error("listening connection is not healthy", "topic", topic, "error", err)
			return false
		}
	}
	return true
}

// GetActiveTopics returns a list of topics currently being listened to
func (b *PostgreSQLBroker) GetActiveTopics() []shared.PubSubChannel {
	b.subscribeMux.RLock()
	defer b.subscribeMux.RUnlock()

	topics := make([]shared.PubSubChannel, 0, len(b.subscribers))
	for topic := range b.subscribers {
		topics = append(topics, topic)
	}
	return topics
}
