package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

type Config struct {
	Addrs []string `envconfig:"KAFKA_ADDRS"`
}

const BookingEventsTopic = "booking-events"

// BookingEvent is published on every booking status change.
type BookingEvent struct {
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	BookerID  int64     `json:"bookerId"`
	Status    string    `json:"status"`
	At        time.Time `json:"at"`
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}
