package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"

	"brasserie/config"
	httpapi "brasserie/internal/api/http"
	"brasserie/internal/service"
	"brasserie/internal/storage"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	seed := flag.Bool("seed", false, "Load the reference dataset and exit")
	flag.Parse()

	cfg := config.MustLoad()

	db := config.MustInitPostgres(cfg)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.WithError(err).Fatal("Failed to ensure schema")
	}

	if *seed {
		if err := repo.Seed(); err != nil {
			log.WithError(err).Fatal("Failed to seed reference data")
		}
		log.Info("Reference data loaded")
		return
	}

	rdb := config.MustInitRedis(cfg)
	sessions := storage.NewSessionStore(rdb, cfg.SessionTTL)
	stats := storage.NewStatsCache(rdb)

	writer := config.NewKafkaWriter(cfg)
	defer writer.Close()
	publisher := storage.NewKafkaPublisher(writer)

	reader := config.NewKafkaReader(cfg, "brasserie-stats")
	defer reader.Close()
	consumer := service.NewConsumer(reader, stats)
	go consumer.Start(context.Background())

	qr := service.DefaultQRGenerator{BaseURL: cfg.BaseURL}

	handler := httpapi.NewHandler(
		service.NewCatalogService(repo),
		service.NewTableService(repo),
		service.NewReservationService(repo),
		service.NewOrderService(repo, publisher),
		service.NewInvoiceService(repo, qr, publisher),
		service.NewAuthService(repo, sessions),
		service.NewStatsService(repo, stats),
	)

	httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler))
}
