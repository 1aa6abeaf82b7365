// SPDX-License-Identifier: GPL-3.0-only

package events

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Catalog change event types.
const (
	PricingUpdated = "pricing.updated"
	PricingReset   = "pricing.reset"
	LabCreated     = "lab.created"
	LabUpdated     = "lab.updated"
	LabDeleted     = "lab.deleted"
	LabsReplaced   = "labs.replaced"
	LabsReset      = "labs.reset"
)

type CatalogEvent struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

type Publisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}
