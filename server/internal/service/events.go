package service

import (
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/practicum/shareit/pkg/kafka"
	"github.com/practicum/shareit/server/internal/model"
)

// publishBookingEvent emits a lifecycle record for downstream consumers.
// Publishing is best effort and never fails the request.
func (s *Service) publishBookingEvent(info model.BookingInfo) {
	if s.producer == nil {
		return
	}
	data, err := json.Marshal(kafka.BookingEvent{
		BookingID: info.ID,
		ItemID:    info.Item.ID,
		BookerID:  info.Booker.ID,
		Status:    string(info.Status),
		At:        time.Now(),
	})
	if err != nil {
		s.log.Error("marshal booking event", zap.Error(err))
		return
	}
	msg := &sarama.ProducerMessage{Topic: kafka.BookingEventsTopic, Value: sarama.StringEncoder(data)}
	if _, _, err := s.producer.SendMessage(msg); err != nil {
		s.log.Warn("publish booking event", zap.Error(err))
	}
}
