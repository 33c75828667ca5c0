package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/config"
	"github.com/Astemirdum/library-circulation/circulation/internal/handler"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/notify"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository/memory"
	"github.com/Astemirdum/library-circulation/circulation/internal/server"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/circulation/migrations"
	"github.com/Astemirdum/library-circulation/pkg/auth"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/Astemirdum/library-circulation/pkg/logger"
	"github.com/Astemirdum/library-circulation/pkg/postgres"
	"github.com/Astemirdum/library-circulation/pkg/validate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type closer func()

func newRepository(ctx context.Context, cfg config.Config, log *zap.Logger) (repository.Repository, closer, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		log.Warn("in-memory storage, data is lost on exit")
		return memory.NewStore(), func() {}, nil
	case config.StoragePostgres:
		db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
		if err != nil {
			return nil, nil, errors.Wrap(err, "db init")
		}
		repo, err := repository.NewRepository(db, log)
		if err != nil {
			db.Close()
			return nil, nil, errors.Wrap(err, "repo")
		}
		return repo, db.Close, nil
	default:
		return nil, nil, errors.Errorf("unknown storage %q", cfg.Storage)
	}
}

func newNotifier(cfg config.Config, log *zap.Logger) (notify.Gateway, closer, error) {
	switch cfg.Notify.Backend {
	case config.NotifierLog:
		return notify.NewLogNotifier(log), func() {}, nil
	case config.NotifierKafka:
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return nil, nil, errors.Wrap(err, "kafka.NewProducer")
		}
		cb := circuit_breaker.New(cfg.Notify.Breaker)
		return notify.NewKafkaNotifier(producer, kafka.NotificationTopic, cb, log), func() {
			if err := producer.Close(); err != nil {
				log.Warn("producer close", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, errors.Errorf("unknown notify backend %q", cfg.Notify.Backend)
	}
}

func newService(ctx context.Context, cfg config.Config, log *zap.Logger) (*service.Service, closer, error) {
	repo, closeRepo, err := newRepository(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	notifier, closeNotifier, err := newNotifier(cfg, log)
	if err != nil {
		closeRepo()
		return nil, nil, err
	}
	return service.NewService(repo, notifier, log), func() {
		closeNotifier()
		closeRepo()
	}, nil
}

func Run(cfg config.Config) {
	log := logger.NewLogger(cfg.Log, "circulation")
	svc, cleanup, err := newService(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("init", zap.Error(err))
	}

	h := handler.New(handler.Services{
		Circulation: svc,
		Catalog:     svc,
		Reader:      svc,
	}, cfg.Auth, cfg.Server.RPS, log)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cleanup()
	log.Info("Graceful shutdown finished")
}

// RunReminders performs one overdue reminder sweep; meant for an external scheduler.
func RunReminders(ctx context.Context, cfg config.Config) (model.ReminderReport, error) {
	log := logger.NewLogger(cfg.Log, "remind")
	svc, cleanup, err := newService(ctx, cfg, log)
	if err != nil {
		return model.ReminderReport{}, err
	}
	defer cleanup()
	return svc.SendOverdueReminders(ctx, time.Now().UTC())
}

func newMailer(cfg config.Mailer, log *zap.Logger) (notify.Mailer, error) {
	switch cfg.Backend {
	case config.MailerLog:
		return notify.NewLogMailer(log), nil
	case config.MailerSMTP:
		return notify.NewSMTPMailer(notify.SMTPConfig{
			Host:     cfg.Host,
			Port:     cfg.Port,
			Username: cfg.Username,
			Password: cfg.Password,
			From:     cfg.From,
		}), nil
	default:
		return nil, errors.Errorf("unknown mailer backend %q", cfg.Backend)
	}
}

// RunNotifyWorker delivers published notifications until SIGINT or SIGTERM.
func RunNotifyWorker(cfg config.Config) error {
	log := logger.NewLogger(cfg.Log, "notify-worker")
	mailer, err := newMailer(cfg.Mailer, log)
	if err != nil {
		return err
	}
	group, err := kafka.NewConsumer(cfg.Kafka, kafka.NotificationConsumerGroup)
	if err != nil {
		return errors.Wrap(err, "kafka.NewConsumer")
	}
	defer func() {
		if err := group.Close(); err != nil {
			log.Warn("consumer close", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("notify worker start", zap.Strings("brokers", cfg.Kafka.Addrs), zap.String("topic", kafka.NotificationTopic))
	if err = kafka.Consume(ctx, group, notify.NewConsumer(mailer, log), log, kafka.NotificationTopic); err != nil {
		return errors.Wrap(err, "consume")
	}
	log.Info("notify worker stopped")
	return nil
}

// RegisterRequest is the create-staff input, exported for cmd/circulation.
type RegisterRequest = model.RegisterRequest

// CreateStaff registers a staff account.
func CreateStaff(ctx context.Context, cfg config.Config, req model.RegisterRequest) (model.Reader, error) {
	if err := validate.NewCustomValidator().Validate(req); err != nil {
		return model.Reader{}, err
	}
	log := logger.NewLogger(cfg.Log, "create-staff")
	svc, cleanup, err := newService(ctx, cfg, log)
	if err != nil {
		return model.Reader{}, err
	}
	defer cleanup()
	return svc.Register(ctx, req, auth.RoleStaff)
}
