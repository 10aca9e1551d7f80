package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"resume-screener/domain"
)

const screeningQueue = "screening_jobs"

// RabbitMQ wraps the connection, channel and the declared screening queue.
type RabbitMQ struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func NewRabbitMQ(url string) *RabbitMQ {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("failed to open channel: %v", err)
	}

	q, err := ch.QueueDeclare(
		screeningQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("failed to declare queue: %v", err)
	}

	fmt.Println("✅ Connected to RabbitMQ and declared queue")

	return &RabbitMQ{conn: conn, channel: ch, queue: q}
}

// PublishJob enqueues one screening job.
func (r *RabbitMQ) PublishJob(job domain.ScreeningJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.channel.PublishWithContext(
		ctx,
		"",           // exchange
		r.queue.Name, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// ConsumeJobs delivers jobs to the handler. Concurrency bounds the number of
// unacked deliveries in flight; each delivery is settled exactly once after
// the handler returns (ack on nil, nack without requeue on error — retry
// policy belongs to the broker configuration, not the worker).
func (r *RabbitMQ) ConsumeJobs(concurrency int, handler func(domain.ScreeningJob) error) {
	if concurrency < 1 {
		concurrency = 1
	}
	if err := r.channel.Qos(concurrency, 0, false); err != nil {
		log.Fatalf("failed to set QoS: %v", err)
	}

	msgs, err := r.channel.Consume(
		r.queue.Name,
		"",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		log.Fatalf("failed to register consumer: %v", err)
	}

	go func() {
		for d := range msgs {
			var job domain.ScreeningJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("invalid job format: %v", err)
				_ = d.Nack(false, false)
				continue
			}
			go func(d amqp.Delivery, job domain.ScreeningJob) {
				if err := handler(job); err != nil {
					_ = d.Nack(false, false)
					return
				}
				_ = d.Ack(false)
			}(d, job)
		}
	}()
}

// Close tears down the channel and connection.
func (r *RabbitMQ) Close() {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		_ = r.conn.Close()
	}
}
