package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/raywall/users-function/dyndb"
	"github.com/raywall/users-function/pkg/cloud"
	"github.com/raywall/users-function/pkg/config"
	"github.com/raywall/users-function/pkg/config/injector"
	"github.com/raywall/users-function/pkg/logger"
	"github.com/raywall/users-function/pkg/metrics"
	"github.com/raywall/users-function/pkg/observability"
	"github.com/raywall/users-function/pkg/router"
	"github.com/raywall/users-function/pkg/transport"
	"github.com/raywall/users-function/pkg/users/repository"
	"github.com/rs/zerolog/log"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	newDynamoDB   = func(ctx context.Context, region, endpoint string) (dyndb.DynamoDBClient, error) {
		return cloud.NewDynamoDBClient(ctx, region, endpoint)
	}
	newSSM     = cloud.NewSSMClient
	newSecrets = cloud.NewSecretsClient
)

func main() {
	// .env só existe em desenvolvimento local
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal().Err(err).Msg("falha ao ler .env")
	}

	// CONFIG_FILE_PATH é opcional: sem ele tudo vem do ambiente
	if err := run(context.Background(), os.Getenv("CONFIG_FILE_PATH")); err != nil {
		log.Fatal().Err(err).Msg("falha ao iniciar a função")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	inj := injector.New(
		injector.WithSSM(newSSM("")),
		injector.WithSecrets(newSecrets("")),
	)
	cfg, err := config.Load(ctx, cfgPath, inj)
	if err != nil {
		return err
	}

	logger.Configure(cfg.Logging, cfg.Service.Name)

	provider, err := observability.SetupMetrics(cfg.Metrics, cfg.Service.Name)
	if err != nil {
		return err
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}

	// Client criado uma única vez e compartilhado entre invocações
	client, err := newDynamoDB(ctx, cfg.AWS.Region, cfg.AWS.Endpoint)
	if err != nil {
		return err
	}

	tableName, err := cloud.ResolveTableName(ctx, newSSM(cfg.AWS.Region), cfg.Table.NameParameter, cfg.Table.Name)
	if err != nil {
		return err
	}

	repo := repository.NewUserRepository(client, tableName)
	rt := router.New(repo, router.WithUniformErrorStatus(cfg.Errors.UniformStatus))
	handler := transport.NewLambdaHandler(rt, metrics.NewRecorder(provider))

	log.Info().
		Str("runtime", cfg.Service.Runtime).
		Str("table", tableName).
		Bool("uniform_error_status", cfg.Errors.UniformStatus).
		Msg("função de usuários iniciada")

	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(handler, router.Routes(), cfg.Service)
	case "lambda":
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
