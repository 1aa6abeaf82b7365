// SPDX-License-Identifier: GPL-3.0-only

// Package events publishes catalog-change notifications so downstream
// consumers (pricing pages, caches) can refresh. Publishing is optional
// and best-effort: without AMQP_URL the publisher is a no-op, and a
// failed publish never fails the admin operation that triggered it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"vsprice-server/commons"

	amqp "github.com/rabbitmq/amqp091-go"
)

var publisher *Publisher

// Init connects the process-wide publisher. It is a no-op when AMQP_URL
// is not configured.
func Init() {
	amqpURL := commons.GetEnv("AMQP_URL")
	if amqpURL == "" {
		commons.Logger.Debug("AMQP_URL not set, catalog events disabled")
		return
	}
	p, err := NewPublisher(amqpURL, commons.GetEnv("AMQP_EXCHANGE", "catalog.events"))
	if err != nil {
		commons.Logger.Error("Failed to connect catalog event publisher:", err)
		return
	}
	publisher = p
	commons.Logger.Info("Catalog event publisher connected")
}

func NewPublisher(amqpURL, exchange string) (*Publisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("exchange declare: %w", err)
	}
	return &Publisher{conn: conn, channel: ch, exchange: exchange}, nil
}

func (p *Publisher) Publish(eventType string, payload any) error {
	if p == nil {
		return nil
	}
	event := CatalogEvent{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.channel.PublishWithContext(ctx, p.exchange, eventType, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Publish emits a catalog event through the process-wide publisher.
// Failures are logged and swallowed.
func Publish(eventType string, payload any) {
	if err := publisher.Publish(eventType, payload); err != nil {
		commons.Logger.Errorf("Failed to publish %s event: %v", eventType, err)
	}
}

// Close shuts down the process-wide publisher.
func Close() {
	publisher.Close()
}
