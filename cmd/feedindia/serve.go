package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedindia/internal/db"
	"feedindia/internal/payment"
	"feedindia/internal/seed"
	"feedindia/internal/server"
	"feedindia/internal/storage"
	"feedindia/internal/store"
	"feedindia/pkg/types"

	"github.com/aws/aws-sdk-go-v2/service/cognitoidentityprovider"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lestrrat-go/httprc/v3"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const sessionSweepInterval = 5 * time.Minute

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	config, err := loadConfig(cCtx.String("env-prefix"))
	if err != nil {
		return err
	}

	policy := store.TransitionPolicyFor(config.StrictStatusTransitions)

	var (
		donations store.DonationStore
		accounts  store.AccountDirectory
		intake    store.DonationStore
	)

	if config.DatabaseURL != "" {
		pool, err := db.Connect(ctx, config)
		if err != nil {
			return err
		}
		defer pool.Close()

		donations, accounts = postgresStores(pool, policy)
		intake = donations
		logger.Info("using postgres donation store")
	} else {
		donations = store.NewMemoryDonationStore(seed.Donations(), store.WithTransitionPolicy(policy))
		accounts = store.NewMemoryAccountDirectory(seed.Accounts(), seed.DonationsByUser(), store.WithTransitionPolicy(policy))
		logger.Info("DATABASE_URL not set, serving in-memory fixture data")
	}

	sessions := store.NewSessionRegistry(
		time.Duration(config.SessionMaxAgeSec)*time.Second,
		store.WithTransitionPolicy(policy),
	)
	go sessions.Run(ctx, sessionSweepInterval, logger)

	var gateway payment.Gateway
	if config.StripeSecretKey != "" {
		gateway = payment.NewStripeGateway(config.StripeSecretKey)
		logger.Info("stripe payments enabled")
	}

	var (
		uploader      server.Uploader
		cognitoClient server.CognitoClient
		jwkCache      *jwk.Cache
		jwksURL       string
	)

	if config.ExportBucket != "" || config.AuthEnabled {
		awsConfig, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		if config.ExportBucket != "" {
			uploader = storage.NewS3Storage(s3.NewFromConfig(awsConfig), config.ExportBucket)
			logger.WithField("bucket", config.ExportBucket).Info("s3 exports enabled")
		}

		if config.AuthEnabled {
			cognitoClient = cognitoidentityprovider.NewFromConfig(awsConfig)

			jwkCache, jwksURL, err = newJWKCache(ctx, config)
			if err != nil {
				return err
			}
		}
	}

	srv, err := server.New(
		config,
		logger,
		donations,
		accounts,
		sessions,
		intake,
		gateway,
		uploader,
		cognitoClient,
		jwkCache,
		jwksURL,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}

func postgresStores(pool *pgxpool.Pool, policy store.TransitionPolicy) (*store.DonationRepository, *store.AccountRepository) {
	donations := store.NewDonationRepository(pool, policy)
	return donations, store.NewAccountRepository(pool, donations)
}

func newJWKCache(ctx context.Context, config *types.Config) (*jwk.Cache, string, error) {
	jwkCache, err := jwk.NewCache(ctx, httprc.NewClient())
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize jwk cache: %w", err)
	}

	jwksURL := fmt.Sprintf("%s/.well-known/jwks.json", config.CognitoIssuer())

	if err := jwkCache.Register(ctx, jwksURL); err != nil {
		return nil, "", fmt.Errorf("failed to register cognito jwks with cache: %w", err)
	}

	return jwkCache, jwksURL, nil
}
