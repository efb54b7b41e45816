package main

import (
	"context"

	"campusconnect/internal/config"
	"campusconnect/internal/model"
	"campusconnect/internal/pkg"
	"campusconnect/internal/repository/mysql"
	"campusconnect/internal/repository/redis"
	"campusconnect/internal/router"
	"campusconnect/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	pkg.InitJWT(cfg.JWTSecret)

	if err := mysql.InitDB(cfg.DatabaseDSN); err != nil {
		logrus.WithError(err).Fatal("mysql init failed")
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB); err != nil {
		logrus.WithError(err).Fatal("redis init failed")
	}
	defer redis.Close()

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Event{},
		&model.EventAttendee{},
		&model.Club{},
		&model.ClubMember{},
		&model.Notification{},
		&model.NotificationOutbox{},
		&model.ClubMessage{},
	); err != nil {
		logrus.WithError(err).Fatal("automigrate failed")
	}

	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer := pkg.NewNotificationProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	r := router.InitRouter(mysql.DB)
	logrus.WithField("addr", cfg.Addr).Info("server starting")
	if err := r.Run(cfg.Addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
