package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"hallohallo/internal/config"
	"hallohallo/internal/pkg"
	"hallohallo/internal/repository/mysql"
	"hallohallo/internal/repository/redis"
	"hallohallo/internal/router"
	"hallohallo/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log.Level, cfg.Log.Format)
	slog.SetDefault(logger)

	db, err := mysql.InitDB(cfg.MySQL.DSN)
	if err != nil {
		slog.Error("mysql init failed", "err", err)
		os.Exit(1)
	}
	if err := mysql.AutoMigrate(db); err != nil {
		slog.Error("automigrate failed", "err", err)
		os.Exit(1)
	}

	if err := redis.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		slog.Error("redis init failed", "err", err)
		os.Exit(1)
	}
	defer redis.Close()

	sender := service.LogSender
	if cfg.Kafka.Enabled {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,
		})
		if err != nil {
			slog.Error("kafka init failed", "err", err)
			os.Exit(1)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	var mailer *pkg.Mailer
	if cfg.SMTP.Enabled {
		mailer = pkg.NewMailer(pkg.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	relayer := service.NewOutboxRelayer(db, sender)
	go relayer.Run(ctx)

	r := router.InitRouter(router.Deps{
		DB:     db,
		TM:     pkg.NewTokenManager(cfg.Auth.AccessSecret, cfg.Auth.RefreshSecret),
		Tokens: &redis.TokenRepository{},
		Cache:  redis.NewLikeCache(),
		Mailer: mailer,
	})

	slog.Info("listening", "addr", cfg.Server.Addr)
	if err := r.Run(cfg.Server.Addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func setupLogger(level, format string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "text":
		handler = slog.NewTextHandler(os.Stdout, opts)
	default:
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return slog.New(handler).With("service", "hallohallo")
}
