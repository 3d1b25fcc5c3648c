package messaging

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"order_core/internal/domain/entities"
	"order_core/internal/infrastructure/metrics"
	"order_core/internal/usecase/interfaces"

	"github.com/go-faster/errors"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

const (
	RoutingKeySampleRequestCreated = "sample_request.created"
	RoutingKeyOrderConverted       = "order.converted"

	kindSampleRequest  = "sample_request"
	kindOrderConverted = "order_converted"
)

var ErrNotifierDisabled = errors.New("notifier disabled: RABBITMQ_URL not set")

// publisher is the slice of *amqp.Channel the notifier needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQNotifier publishes post-commit events to a topic exchange. A mail
// worker consumes sample_request.created to send the confirmation.
type RabbitMQNotifier struct {
	conn     *amqp.Connection
	ch       publisher
	exchange string
	now      func() time.Time
	mu       sync.Mutex
	log      *logrus.Entry
}

var _ interfaces.INotifier = (*RabbitMQNotifier)(nil)

func NewRabbitMQNotifier(url, exchange string, log *logrus.Entry) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(
		exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, errors.Wrapf(err, "declare exchange %s", exchange)
	}

	n := newNotifier(ch, exchange, log)
	n.conn = conn
	return n, nil
}

func newNotifier(ch publisher, exchange string, log *logrus.Entry) *RabbitMQNotifier {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &RabbitMQNotifier{
		ch:       ch,
		exchange: exchange,
		now:      func() time.Time { return time.Now().UTC() },
		log:      log.WithFields(logrus.Fields{"component": "notifier", "layer": "gateway"}),
	}
}

type sampleItemEvent struct {
	ProductName    string                  `json:"productName"`
	Category       string                  `json:"category"`
	Quantity       int64                   `json:"quantity"`
	Specifications entities.Specifications `json:"specifications,omitempty"`
}

type SampleRequestCreatedEvent struct {
	RequestID     string            `json:"requestId"`
	RequestNumber string            `json:"requestNumber"`
	UserID        string            `json:"userId,omitempty"`
	ContactPerson string            `json:"contactPerson,omitempty"`
	Email         string            `json:"email,omitempty"`
	DeliveryType  string            `json:"deliveryType"`
	Urgency       string            `json:"urgency,omitempty"`
	Items         []sampleItemEvent `json:"items"`
	CreatedAt     time.Time         `json:"createdAt"`
}

type orderItemEvent struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	LineTotal string `json:"lineTotal"`
}

type OrderConvertedEvent struct {
	OrderID     string           `json:"orderId"`
	OrderNumber string           `json:"orderNumber"`
	QuotationID string           `json:"quotationId"`
	CustomerID  string           `json:"customerId"`
	TotalAmount string           `json:"totalAmount"`
	Items       []orderItemEvent `json:"items"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (n *RabbitMQNotifier) NotifySampleRequest(ctx context.Context, r entities.SampleRequest) error {
	ev := SampleRequestCreatedEvent{
		RequestID:     r.ID,
		RequestNumber: r.RequestNumber,
		UserID:        r.UserID,
		ContactPerson: r.Customer.ContactPerson,
		Email:         r.Customer.Email,
		DeliveryType:  string(r.DeliveryType),
		Urgency:       r.Urgency,
		CreatedAt:     r.CreatedAt,
	}
	for _, it := range r.Items {
		ev.Items = append(ev.Items, sampleItemEvent{
			ProductName:    it.ProductName,
			Category:       it.Category,
			Quantity:       it.Quantity,
			Specifications: it.Specifications,
		})
	}
	return n.publish(ctx, kindSampleRequest, RoutingKeySampleRequestCreated, r.RequestNumber, ev)
}

func (n *RabbitMQNotifier) NotifyOrderConverted(ctx context.Context, o entities.Order) error {
	ev := OrderConvertedEvent{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		QuotationID: o.QuotationID,
		CustomerID:  o.CustomerID,
		TotalAmount: o.TotalAmount.String(),
		CreatedAt:   o.CreatedAt,
	}
	for _, it := range o.Items {
		ev.Items = append(ev.Items, orderItemEvent{ProductID: it.ProductID, Quantity: it.Quantity, LineTotal: it.LineTotal.String()})
	}
	return n.publish(ctx, kindOrderConverted, RoutingKeyOrderConverted, o.ID, ev)
}

func (n *RabbitMQNotifier) publish(ctx context.Context, kind, routingKey, messageID string, payload any) (err error) {
	defer func() { metrics.RecordNotification(kind, err) }()

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrapf(err, "encode %s event", kind)
	}
	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    n.now(),
		ContentType:  "application/json",
		MessageId:    messageID,
		Type:         routingKey,
		Body:         body,
	}

	// amqp channels are not safe for concurrent publishes.
	n.mu.Lock()
	err = n.ch.PublishWithContext(ctx, n.exchange, routingKey, false, false, msg)
	n.mu.Unlock()
	if err != nil {
		return errors.Wrapf(err, "publish %s", routingKey)
	}
	n.log.WithFields(logrus.Fields{"routing_key": routingKey, "message_id": messageID}).Debug("event published")
	return nil
}

func (n *RabbitMQNotifier) Close() error {
	if c, ok := n.ch.(*amqp.Channel); ok && c != nil {
		_ = c.Close()
	}
	if n.conn != nil {
		return n.conn.Close()
	}
	return nil
}

// DisabledNotifier stands in when no broker is configured. Every call fails,
// which the use cases report as emailSent=false.
type DisabledNotifier struct{}

var _ interfaces.INotifier = DisabledNotifier{}

func (DisabledNotifier) NotifySampleRequest(context.Context, entities.SampleRequest) error {
	metrics.RecordNotification(kindSampleRequest, ErrNotifierDisabled)
	return ErrNotifierDisabled
}

func (DisabledNotifier) NotifyOrderConverted(context.Context, entities.Order) error {
	metrics.RecordNotification(kindOrderConverted, ErrNotifierDisabled)
	return ErrNotifierDisabled
}
