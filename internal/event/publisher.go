package event

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"
)

// Event types published on the topic exchange.
const (
	SessionCreated       = "wellness.session.created"
	AnswerSubmitted      = "wellness.answer.submitted"
	SessionCompleted     = "wellness.session.completed"
	SessionReset         = "wellness.session.reset"
	PlanRequested        = "wellness.plan.requested"
	CounselorsRequested  = "wellness.counselors.requested"
	ChatMessageSent      = "wellness.chat.message"
	ContributionReceived = "wellness.moderation.contribution_received"
	ContributionReviewed = "wellness.moderation.contribution_reviewed"
	FeedbackReceived     = "wellness.moderation.feedback_received"
)

type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}
	err = ch.ExchangeDeclare(
		exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends one event, using the event type as the routing key.
func (p *EventPublisher) Publish(eventType string, payload interface{}) error {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	log.Printf("[EVENT] %s", eventType)

	return p.channel.Publish(
		p.exchange,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
