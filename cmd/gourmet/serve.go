package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	grpchealth "google.golang.org/grpc/health"

	grpcrouter "github.com/dtroode/gourmet-server/internal/api/grpc/router"
	grpcserver "github.com/dtroode/gourmet-server/internal/api/grpc/server"
	httpcontext "github.com/dtroode/gourmet-server/internal/api/http/context"
	httprouter "github.com/dtroode/gourmet-server/internal/api/http/router"
	httpserver "github.com/dtroode/gourmet-server/internal/api/http/server"
	"github.com/dtroode/gourmet-server/internal/gemini"
	"github.com/dtroode/gourmet-server/internal/health"
	"github.com/dtroode/gourmet-server/internal/model"
	"github.com/dtroode/gourmet-server/internal/places"
	"github.com/dtroode/gourmet-server/internal/repository/postgres"
	"github.com/dtroode/gourmet-server/internal/server"
	"github.com/dtroode/gourmet-server/internal/service"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(cc *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the gRPC health server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cc)
		},
	}
}

func runServe(ctx context.Context, cc *commandContext) error {
	cfg, log := cc.cfg, cc.log
	logAppVersion(cc)

	d, err := openDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.close(); err != nil {
			log.Error("failed to release resources", "error", err)
		}
	}()

	ingest, status, err := d.newIngest(cfg, log)
	if err != nil {
		return err
	}

	finder, err := places.New(cfg.Maps.APIKey, cfg.Maps.Radius, cfg.Maps.Language)
	if err != nil {
		return fmt.Errorf("failed to create places client: %w", err)
	}

	describer, err := gemini.New(ctx, cfg.Gemini.Project, cfg.Gemini.Location, cfg.Gemini.Model)
	if err != nil {
		return fmt.Errorf("failed to create gemini client: %w", err)
	}
	d.closers = append(d.closers, describer.Close)

	photoRepo := postgres.NewPhotoRepository(d.db)
	venue := service.NewVenue(finder, postgres.NewVenueRepository(d.db), photoRepo, status, log)
	food := service.NewFoodCategorizer(describer, d.photoStorage, photoRepo, cfg.Storage.PhotoPrefix, log)

	healthSrv := grpchealth.NewServer()
	checker := health.NewChecker(healthSrv, cfg.GRPC.HealthInterval, log,
		health.PingCheck("postgres", d.db.DB()),
		health.Check{Name: "model", Check: func(ctx context.Context) error {
			ok, err := d.modelStorage.Exists(ctx, cfg.Storage.ModelObject)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("object %s not found", cfg.Storage.ModelObject)
			}
			return nil
		}},
	)

	handler := httprouter.New(ingest, status, venue, food, checker, httpcontext.NewManager(), log).Register()
	httpSrv := httpserver.NewHTTPServer(handler, fmt.Sprintf(":%s", cfg.HTTP.Port))

	grpcSrv := grpcserver.NewGRPCServer(grpcrouter.New(healthSrv, log).Register(), healthSrv, fmt.Sprintf(":%s", cfg.GRPC.Port))

	g, gctx := errgroup.WithContext(ctx)

	start := func(s model.Server, sl model.SecurityLayer) func() error {
		return func() error {
			log.Info("starting server", "address", s.Address())
			if err := s.Start(sl); err != nil {
				return fmt.Errorf("server on %s: %w", s.Address(), err)
			}
			return nil
		}
	}
	g.Go(start(httpSrv, server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)))
	g.Go(start(grpcSrv, server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)))

	g.Go(func() error {
		checker.Run(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down servers")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		for _, s := range []model.Server{httpSrv, grpcSrv} {
			if err := s.Stop(shutdownCtx); err != nil {
				log.Error("error during server shutdown", "error", err, "address", s.Address())
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
