package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"stockwatch/internal/lib/sl"
	"stockwatch/internal/model"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
)

var _ MessageBroker = &RabbitMQ{}

type RabbitMQ struct {
	wg       sync.WaitGroup
	conn     *amqp.Connection
	ch       *amqp.Channel
	jobsQ    amqp.Queue
	reportsQ amqp.Queue
	closed   chan struct{}
}

func NewRabbitMQ(url string) (*RabbitMQ, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to create channel: %w", err)
	}

	err = ch.Qos(
		1,     // prefetch count
		0,     // prefetch size
		false, // global
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	jobsQ, err := declareQueue(ch, "analysis_jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to declare a jobs queue: %w", err)
	}

	reportsQ, err := declareQueue(ch, "reports")
	if err != nil {
		return nil, fmt.Errorf("failed to declare a reports queue: %w", err)
	}

	return &RabbitMQ{
		conn:     conn,
		ch:       ch,
		jobsQ:    jobsQ,
		reportsQ: reportsQ,
		closed:   make(chan struct{}),
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	return ch.QueueDeclare(
		name,  // name
		false, // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
}

func (r *RabbitMQ) ConsumeJobs(ctx context.Context) (<-chan model.AnalysisJob, error) {
	return consumeRoutine[model.AnalysisJob](r, ctx, r.jobsQ.Name)
}

func (r *RabbitMQ) ConsumeReports(ctx context.Context) (<-chan model.Report, error) {
	return consumeRoutine[model.Report](r, ctx, r.reportsQ.Name)
}

func consumeRoutine[T any](r *RabbitMQ, ctx context.Context, queue string) (<-chan T, error) {
	msgs, err := r.consumeMessages(ctx, queue)
	if err != nil {
		return nil, err
	}

	objects := make(chan T)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		defer close(objects)
		for msg := range msgs {
			var object T
			if err := json.Unmarshal(msg.Body, &object); err != nil {
				slog.Error("failed to parse message body", sl.Error(err))
				continue
			}
			select {
			case <-r.closed:
				return
			case objects <- object:
			}
		}
	}()

	return objects, nil
}

func (r *RabbitMQ) consumeMessages(
	ctx context.Context,
	queue string,
) (<-chan amqp.Delivery, error) {
	return r.ch.ConsumeWithContext(
		ctx,
		queue, // queue
		"",    // consumer
		true,  // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
}

func (r *RabbitMQ) PublishJob(ctx context.Context, job model.AnalysisJob) error {
	return r.publish(ctx, r.jobsQ.Name, job)
}

func (r *RabbitMQ) PublishReport(ctx context.Context, report model.Report) error {
	return r.publish(ctx, r.reportsQ.Name, report)
}

func (r *RabbitMQ) publish(ctx context.Context, queue string, v any) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	msg := amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	}
	return r.ch.PublishWithContext(ctx, "", queue, false, false, msg)
}

func (r *RabbitMQ) Close() {
	defer r.conn.Close()
	defer r.ch.Close()

	close(r.closed)
	r.wg.Wait()
}
