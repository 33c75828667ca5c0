package service

import (
	"context"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/retry"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	LoanPeriod       = 7 * 24 * time.Hour
	FinePerDay int64 = 10

	maxTxAttempts   = 3
	defaultPageSize = 20
	maxPageSize     = 100
	defaultTopN     = 5
	maxTopN         = 50
	reminderWorkers = 8
)

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

type Service struct {
	log       *zap.Logger
	repo      repository.Repository
	notifier  notify.Gateway
	clock     Clock
	retryOpts []retry.Option
}

type Option func(*Service)

func WithClock(c Clock) Option {
	return func(s *Service) {
		s.clock = c
	}
}

// WithRetry tunes the backoff of transaction retries.
func WithRetry(opts ...retry.Option) Option {
	return func(s *Service) {
		s.retryOpts = append(s.retryOpts, opts...)
	}
}

func NewService(repo repository.Repository, notifier notify.Gateway, log *zap.Logger, opts ...Option) *Service {
	s := &Service{
		log:      log.Named("service"),
		repo:     repo,
		notifier: notifier,
		clock:    systemClock{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) now() time.Time {
	return s.clock.Now().UTC()
}

// runTx retries fn on serialization conflicts; fn must not leak state between attempts.
func (s *Service) runTx(ctx context.Context, fn func(ctx context.Context, tx repository.Tx) error) error {
	opts := append([]retry.Option{
		retry.WithMaxAttempts(maxTxAttempts),
		retry.WithRetryIf(func(err error) bool { return errors.Is(err, errs.ErrConflict) }),
	}, s.retryOpts...)
	return retry.Do(ctx, func(ctx context.Context) error {
		return s.repo.InTx(ctx, fn)
	}, opts...)
}

func checkPrincipal(p auth.Principal) error {
	if !p.Valid() {
		return errs.ErrForbidden
	}
	return nil
}

func checkStaff(p auth.Principal) error {
	if !p.Valid() || !p.IsStaff() {
		return errs.ErrForbidden
	}
	return nil
}

// notifyReader sends the message built for the reader's address. Failures are only logged.
func (s *Service) notifyReader(ctx context.Context, readerID int64, build func(email string) notify.Message) {
	reader, err := s.repo.GetReader(ctx, readerID)
	if err != nil {
		s.log.Warn("notify: get reader", zap.Int64("reader_id", readerID), zap.Error(err))
		return
	}
	if reader.Email == "" {
		s.log.Debug("notify: reader has no email", zap.Int64("reader_id", readerID))
		return
	}
	msg := build(reader.Email)
	if err = s.notifier.Send(ctx, msg); err != nil {
		s.log.Warn("notify: send", zap.String("subject", msg.Subject), zap.Error(err))
	}
}
