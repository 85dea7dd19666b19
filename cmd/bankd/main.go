package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/awesomegic/bankledger/internal/application/usecase"
	"github.com/awesomegic/bankledger/internal/domain/model"
	"github.com/awesomegic/bankledger/internal/domain/service"
	"github.com/awesomegic/bankledger/internal/infrastructure/config"
	"github.com/awesomegic/bankledger/internal/infrastructure/memory"
	"github.com/awesomegic/bankledger/internal/observability"
	"github.com/awesomegic/bankledger/internal/presentation/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()

	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	logger.Debug("starting banking session", "bank", cfg.BankName)

	// Wire dependencies (DI via constructors)
	registry := memory.NewAccountRegistry()
	ruleTable := model.NewRuleTable()
	publisher := memory.NewLogPublisher(logger)
	accrualEngine := service.NewAccrualEngine()

	// Use cases
	recordTxnUC := usecase.NewRecordTransaction(registry, publisher)
	defineRuleUC := usecase.NewDefineInterestRule(ruleTable, publisher)
	listRulesUC := usecase.NewListInterestRules(ruleTable)
	accrueUC := usecase.NewAccrueInterest(registry, ruleTable, publisher, accrualEngine)
	statementUC := usecase.NewGetStatement(registry)

	session := cli.NewSession(
		os.Stdin, os.Stdout, logger, cfg.BankName,
		recordTxnUC, defineRuleUC, listRulesUC, accrueUC, statementUC,
	)

	if err := session.Run(ctx); err != nil {
		logger.Error("session ended abnormally", "error", err)
		os.Exit(1)
	}
	logger.Debug("banking session ended")
}
