package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/gourmet-server/internal/classifier"
	"github.com/dtroode/gourmet-server/internal/config"
	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/photos"
	"github.com/dtroode/gourmet-server/internal/repository/postgres"
	"github.com/dtroode/gourmet-server/internal/service"
	storage "github.com/dtroode/gourmet-server/internal/storage/minio"
)

// deps holds the clients shared by the serve and ingest commands.
type deps struct {
	db           *postgres.Connection
	photoStorage *storage.Client
	modelStorage *storage.Client
	closers      []func() error
}

func openDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	d := &deps{}
	opened := false
	defer func() {
		if !opened {
			_ = d.close()
		}
	}()

	var err error
	d.db, err = postgres.NewConection(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	d.closers = append(d.closers, func() error {
		d.db.Close()
		return nil
	})

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	d.photoStorage, err = storage.NewClient(ctx, minioClient, storage.Options{
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
		Public:        true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo storage: %w", err)
	}

	d.modelStorage, err = storage.NewClient(ctx, minioClient, storage.Options{
		Bucket:        cfg.Storage.ModelBucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize model storage: %w", err)
	}

	opened = true
	return d, nil
}

// close releases resources in reverse order of acquisition.
func (d *deps) close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		errs = append(errs, d.closers[i]())
	}
	d.closers = nil
	return errors.Join(errs...)
}

func (d *deps) newIngest(cfg *config.Config, log *logger.Logger) (*service.Ingest, *service.Status, error) {
	if err := classifier.InitRuntime(cfg.Classifier.RuntimeLibrary); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize onnx runtime: %w", err)
	}
	d.closers = append(d.closers, classifier.ShutdownRuntime)

	library, err := photos.New(cfg.Photos.BaseURL, photos.WithTimeout(cfg.Photos.Timeout))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create photo library client: %w", err)
	}

	loader := classifier.NewLoader(d.modelStorage, cfg.Storage.ModelObject,
		classifier.NewONNXFactory(cfg.Classifier.InputName, cfg.Classifier.OutputName))

	photoRepo := postgres.NewPhotoRepository(d.db)
	status := service.NewStatus(postgres.NewUserRepository(d.db), log)
	ingest := service.NewIngest(
		service.NewWatermark(photoRepo, log),
		status,
		library,
		loader,
		d.photoStorage,
		photoRepo,
		postgres.NewIngestRunRepository(d.db),
		service.IngestConfig{
			PageSize:       cfg.Photos.PageSize,
			MaxPages:       cfg.Photos.MaxPages,
			ReadyThreshold: cfg.Ingest.ReadyThreshold,
			PhotoPrefix:    cfg.Storage.PhotoPrefix,
		},
		log,
	)

	return ingest, status, nil
}
