package dal

import (
	"log"

	"github.com/streadway/amqp"

	"virtual-payment-api/internal/config"
)

var RabbitConn *amqp.Connection
var RabbitCh *amqp.Channel

// InitRabbitMQ 连接 MQ 并声明订单事件交换机。未配置 URL 时跳过，
// 事件发布退化为 no-op。
func InitRabbitMQ() {
	url := config.C.RabbitMQ.URL
	if url == "" {
		log.Printf("rabbitmq url empty, order events disabled")
		return
	}
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Fatalf("rabbitmq dial failed: %v", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("rabbitmq channel failed: %v", err)
	}

	if err := ch.ExchangeDeclare("order_events", "topic", true, false, false, false, nil); err != nil {
		log.Fatalf("exchange declare failed: %v", err)
	}
	if _, err := ch.QueueDeclare("order_created", true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare order_created failed: %v", err)
	}
	if err := ch.QueueBind("order_created", "order.*", "order_events", false, nil); err != nil {
		log.Fatalf("queue bind order_created failed: %v", err)
	}

	RabbitConn = conn
	RabbitCh = ch
}
