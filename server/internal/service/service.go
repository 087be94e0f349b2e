package service

import (
	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/practicum/shareit/server/internal/repository"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
}

// NewService wires the business layer. producer may be nil, in which case
// booking events are not published.
func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log.Named("service"),
		repo:     repo,
		producer: producer,
	}
}
