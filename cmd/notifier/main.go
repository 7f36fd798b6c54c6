package main

import (
	"context"
	"errors"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	assignhdl "github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/assignment"
	bookinghdl "github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/booking"
	notifhdl "github.com/rufomartins/talent-nexus-notifier/internal/api/handlers/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/router"
	"github.com/rufomartins/talent-nexus-notifier/internal/api/server"
	"github.com/rufomartins/talent-nexus-notifier/internal/broker"
	"github.com/rufomartins/talent-nexus-notifier/internal/config"
	"github.com/rufomartins/talent-nexus-notifier/internal/deadline"
	notifmsg "github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/handlers/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/rabbitmq/queue"
	assignrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/assignment"
	bookingrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/booking"
	notifrepo "github.com/rufomartins/talent-nexus-notifier/internal/repository/notification"
	assignsvc "github.com/rufomartins/talent-nexus-notifier/internal/service/assignment"
	bookingsvc "github.com/rufomartins/talent-nexus-notifier/internal/service/booking"
	notifsvc "github.com/rufomartins/talent-nexus-notifier/internal/service/notification"
	"github.com/rufomartins/talent-nexus-notifier/internal/worker"
	"github.com/rufomartins/talent-nexus-notifier/pkg/email"
	"github.com/rufomartins/talent-nexus-notifier/pkg/sms"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
	}

	delivery, err := queue.NewDeliveryQueue(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create delivery queue")
	}

	changes, err := queue.NewChangesFeed(ch)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to create changes feed")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	notificationRepo := notifrepo.NewRepository(db)
	bookingRepo := bookingrepo.NewRepository(db)
	assignmentRepo := assignrepo.NewRepository(db)

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	smtpPort, err := strconv.Atoi(cfg.Email.SMTPPort)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email smtp port")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		smtpPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	smsClient := sms.NewClient(cfg.SMS.URL, cfg.SMS.APIKey, cfg.SMS.From)

	notifiers := map[string]notifsvc.Notifier{
		"email": emailClient,
		"sms":   smsClient,
	}

	notificationService := notifsvc.NewService(notificationRepo, delivery, changes, notifiers, rdb)
	bookingService := bookingsvc.NewService(bookingRepo)
	assignmentService := assignsvc.NewService(assignmentRepo, notificationService)

	changeBroker := broker.New(changes, cfg.Broker)
	go changeBroker.Run(ctx)

	classifier := deadline.NewClassifier(cfg.Sweep.WarningThresholdDays)
	sweeper := worker.NewSweeper(
		assignmentRepo,
		notificationService,
		classifier,
		cfg.Sweep.Interval,
		cfg.Sweep.StaleAfter,
		cfg.Retry,
	)
	go sweeper.Run(ctx)

	messageHandler := notifmsg.NewHandler(notificationService)
	notifier := worker.NewNotifier(delivery, messageHandler, notificationService)
	go notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)

	notifHandler := notifhdl.NewHandler(notificationService, changeBroker, cfg)
	bookingHandler := bookinghdl.NewHandler(bookingService, val)
	assignHandler := assignhdl.NewHandler(assignmentService, val, cfg)

	r := router.New(notifHandler, bookingHandler, assignHandler)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		if err := s.ListenAndServe(); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Printf("failed to close master DB: %v", err)
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Printf("failed to close slave DB %d: %v", i, err)
		}
	}

	if err := ch.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
	}

	if err := conn.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
	}
}
