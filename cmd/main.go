package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"resume-screener/domain"
	"resume-screener/infrastructure"
	"resume-screener/interfaces"
	"resume-screener/pipeline"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := infrastructure.LoadConfig()

	db := infrastructure.NewMySQLConnection(cfg.DBDSN)
	rmq := infrastructure.NewRabbitMQ(cfg.RabbitMQURL)
	defer rmq.Close()

	completion, err := infrastructure.NewCompletion(context.Background(), cfg.Completion)
	if err != nil {
		log.Fatalf("completion backend: %v", err)
	}

	docs := infrastructure.NewDocumentStorage(db)
	repo := infrastructure.NewRepository(db)
	tracker := pipeline.NewJobTracker()

	worker := pipeline.NewWorker(
		docs,
		repo,
		pipeline.NewStructuredParser(completion),
		pipeline.NewQualitativeScorer(completion, log),
		tracker,
		log,
	)

	rmq.ConsumeJobs(cfg.WorkerConcurrency, func(job domain.ScreeningJob) error {
		return worker.Process(context.Background(), job)
	})

	router := gin.Default()
	interfaces.NewHTTPHandler(router, db, rmq, docs, tracker)

	log.Infof("🚀 Server running on %s", cfg.HTTPAddr)
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
