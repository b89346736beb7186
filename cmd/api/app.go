package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/helpers"
	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/repository"
	"github.com/GustavoMartinsDev/TechChallenge-Fiap-API/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
)

type config struct {
	port            string
	env             string
	shutdownTimeout time.Duration
	db              struct {
		uri  string
		name string
	}
}

type application struct {
	config       config
	logger       *slog.Logger
	mongo        *mongo.Client
	accounts     *service.AccountService
	transactions *service.TransactionService
}

func newApplication() (*application, error) {
	cfg := config{}

	cfg.port = helpers.GetEnvAsStr("PORT", "4000")
	cfg.env = helpers.GetEnvAsStr("ENV", "development")
	cfg.shutdownTimeout = helpers.GetEnvAsDuration("SHUTDOWN_TIMEOUT", 30*time.Second)
	cfg.db.uri = helpers.GetEnvAsStr("MONGODB_URI", "mongodb://localhost:27017")
	cfg.db.name = helpers.GetEnvAsStr("DB_NAME", "test")

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client, db, err := helpers.OpenMongo(cfg.db.uri, cfg.db.name, logger)
	if err != nil {
		return nil, err
	}

	sequences := repository.NewSequenceRepository(db)
	accounts := repository.NewAccountRepository(db)
	transactions := repository.NewTransactionRepository(db)

	return &application{
		config:       cfg,
		logger:       logger,
		mongo:        client,
		accounts:     service.NewAccountService(accounts, sequences),
		transactions: service.NewTransactionService(transactions, accounts, sequences),
	}, nil
}
