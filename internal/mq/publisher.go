package mq

import (
	"encoding/json"
	"log"

	"github.com/streadway/amqp"

	"virtual-payment-api/internal/dal"
)

// OrderEvent 订单生命周期事件，发布到 order_events 交换机
type OrderEvent struct {
	OrderID         string `json:"order_id"`
	MerchantID      string `json:"merchant_id"`
	MerchantOrderID string `json:"merchant_order_id"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Status          int8   `json:"status"`
	OccurredAt      int64  `json:"occurred_at"`
}

// PublishOrderEvent 尽力而为，MQ 未配置或失败都不影响请求主路径
func PublishOrderEvent(routingKey string, evt OrderEvent) {
	if dal.RabbitCh == nil {
		return
	}
	b, _ := json.Marshal(evt)
	err := dal.RabbitCh.Publish(
		"order_events",
		routingKey,
		false, false,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         b,
		},
	)
	if err != nil {
		log.Printf("publish %s failed: %v", routingKey, err)
	}
}
