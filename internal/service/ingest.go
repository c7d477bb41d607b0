package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/gourmet-server/internal/logger"
	"github.com/dtroode/gourmet-server/internal/model"
	"github.com/dtroode/gourmet-server/internal/photos"
)

const photoContentType = "image/jpeg"

// IngestConfig bounds one ingestion invocation.
type IngestConfig struct {
	PageSize       int
	MaxPages       int
	ReadyThreshold int
	PhotoPrefix    string
}

// Ingest runs the incremental sync of a user's photo library: it fetches
// pages newest first, classifies new photos and stops at the watermark.
type Ingest struct {
	watermark  *Watermark
	status     *Status
	library    model.PhotoLibrary
	loader     model.ClassifierLoader
	storage    model.Storage
	photoStore model.PhotoStore
	runStore   model.IngestRunStore
	cfg        IngestConfig
	logger     *logger.Logger
	now        func() time.Time
}

func NewIngest(
	watermark *Watermark,
	status *Status,
	library model.PhotoLibrary,
	loader model.ClassifierLoader,
	storage model.Storage,
	photoStore model.PhotoStore,
	runStore model.IngestRunStore,
	cfg IngestConfig,
	logger *logger.Logger,
) *Ingest {
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	if cfg.PageSize < 1 {
		cfg.PageSize = 50
	}
	if cfg.ReadyThreshold < 1 {
		cfg.ReadyThreshold = 8
	}
	return &Ingest{
		watermark:  watermark,
		status:     status,
		library:    library,
		loader:     loader,
		storage:    storage,
		photoStore: photoStore,
		runStore:   runStore,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
	}
}

// ingestRun carries the mutable state of one invocation.
type ingestRun struct {
	userID      string
	accessToken string
	watermark   time.Time
	hasHistory  bool
	classifier  model.Classifier
	result      model.IngestResult
	log         *logger.Logger
}

// Run performs one ingestion for the user. The returned result is valid
// even when an error aborts the run part way.
func (s *Ingest) Run(ctx context.Context, userID, accessToken string) (model.IngestResult, error) {
	if strings.TrimSpace(accessToken) == "" {
		return model.IngestResult{}, model.ErrMissingAccessToken
	}
	if strings.TrimSpace(userID) == "" {
		return model.IngestResult{}, model.ErrMissingUserID
	}

	run := &ingestRun{
		userID:      userID,
		accessToken: accessToken,
		log:         s.logger.With("user_id", userID),
	}

	wm, ok, err := s.watermark.Get(ctx, userID)
	if err != nil {
		return run.result, err
	}
	run.watermark, run.hasHistory = wm, ok
	if ok {
		run.log.Info("resuming from watermark", "watermark", model.PhotoIDFromTime(wm))
	} else {
		run.log.Info("no ingested photos, treating library as new")
	}

	clf, err := s.loader.Load(ctx)
	if err != nil {
		return run.result, fmt.Errorf("failed to load classifier: %w", err)
	}
	defer func() {
		if err := clf.Close(); err != nil {
			run.log.Warn("failed to close classifier", "error", err)
		}
	}()
	run.classifier = clf

	journal := s.startJournal(ctx, userID)

	err = s.loop(ctx, run)
	s.finishJournal(ctx, journal, run.result, err)
	if err != nil {
		run.log.Error("ingestion aborted", "error", err, "accepted", run.result.Accepted)
		return run.result, err
	}

	run.log.Info("ingestion finished",
		"outcome", run.result.Outcome,
		"accepted", run.result.Accepted,
		"rejected", run.result.Rejected,
		"skipped", run.result.Skipped,
		"pages", run.result.Pages,
	)
	return run.result, nil
}

// loop walks the pages. It sets result.Outcome on every successful return.
func (s *Ingest) loop(ctx context.Context, run *ingestRun) error {
	pageToken := ""
	for page := 0; page < s.cfg.MaxPages; page++ {
		mp, err := s.library.Search(ctx, run.accessToken, s.cfg.PageSize, pageToken)
		if err != nil {
			var upErr *model.UpstreamError
			if !errors.As(err, &upErr) {
				err = &model.UpstreamError{Service: "photos", Err: err}
			}
			return err
		}
		run.result.Pages++

		if len(mp.Items) == 0 {
			run.log.Info("no media items found", "page", page)
			run.result.Outcome = model.IngestOutcomeNoMedia
			return nil
		}

		candidates := photos.Filter(mp.Items)
		run.result.Skipped += len(mp.Items) - len(candidates)
		if !sortNewestFirst(candidates) {
			run.log.Warn("photo library page was not ordered newest first", "page", page)
		}

		for _, c := range candidates {
			if run.hasHistory && !c.ShotAt.After(run.watermark) {
				run.log.Info("reached watermark", "photo_id", model.PhotoIDFromTime(c.ShotAt))
				if err := s.markReady(ctx, run); err != nil {
					return err
				}
				run.result.Outcome = model.IngestOutcomeReachedWatermark
				return nil
			}

			if err := s.process(ctx, run, c); err != nil {
				return err
			}
		}

		if mp.NextPageToken == "" {
			break
		}
		pageToken = mp.NextPageToken
	}

	run.result.Outcome = model.IngestOutcomeProcessed
	return nil
}

// process classifies one candidate and persists it when accepted. Only
// persistence failures are returned.
func (s *Ingest) process(ctx context.Context, run *ingestRun, c model.Candidate) error {
	data, category, err := s.classify(ctx, run, c.Item)
	if err != nil {
		run.log.Warn("skipping photo", "media_item_id", c.Item.ID, "error", err)
		run.result.Skipped++
		return nil
	}

	if !category.Accepted() {
		run.log.Debug("photo rejected", "media_item_id", c.Item.ID, "category", category)
		run.result.Rejected++
		return nil
	}

	if err := s.persist(ctx, run.userID, c, category, data); err != nil {
		return err
	}
	run.result.Accepted++

	if run.result.Accepted == s.cfg.ReadyThreshold {
		return s.markReady(ctx, run)
	}
	return nil
}

func (s *Ingest) classify(ctx context.Context, run *ingestRun, item model.MediaItem) ([]byte, model.Category, error) {
	data, err := s.library.Download(ctx, run.accessToken, item)
	if err != nil {
		return nil, 0, &model.ClassificationError{MediaItemID: item.ID, Err: fmt.Errorf("failed to download: %w", err)}
	}

	category, err := run.classifier.Classify(ctx, data)
	if err != nil {
		return nil, 0, &model.ClassificationError{MediaItemID: item.ID, Err: err}
	}

	return data, category, nil
}

func (s *Ingest) persist(ctx context.Context, userID string, c model.Candidate, category model.Category, data []byte) error {
	key := fmt.Sprintf("%s/%s/%s.jpg", s.cfg.PhotoPrefix, userID, uuid.NewString())

	err := s.storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), photoContentType)
	if err != nil {
		return &model.PersistenceError{Op: "failed to upload photo", Err: err}
	}

	photo := model.Photo{
		UserID:   userID,
		ID:       model.PhotoIDFromTime(c.ShotAt),
		URL:      s.storage.PublicURL(key),
		Category: category.String(),
		Source:   model.PhotoSourceIngest,
		ShotAt:   c.ShotAt,
	}
	if err := s.photoStore.Upsert(ctx, photo); err != nil {
		return &model.PersistenceError{Op: "failed to save photo", Err: err}
	}

	return nil
}

// markReady sets the status flag at most once per invocation.
func (s *Ingest) markReady(ctx context.Context, run *ingestRun) error {
	if run.result.StatusReady {
		return nil
	}
	if err := s.status.MarkReady(ctx, run.userID); err != nil {
		return err
	}
	run.result.StatusReady = true
	return nil
}

// sortNewestFirst orders candidates by capture time descending, keeping
// the API order among equal times. It reports whether the input was
// already in that order.
func sortNewestFirst(candidates []model.Candidate) bool {
	cmp := func(a, b model.Candidate) int {
		return b.ShotAt.Compare(a.ShotAt)
	}
	if slices.IsSortedFunc(candidates, cmp) {
		return true
	}
	slices.SortStableFunc(candidates, cmp)
	return false
}

func (s *Ingest) startJournal(ctx context.Context, userID string) *model.IngestRun {
	if s.runStore == nil {
		return nil
	}
	entry := &model.IngestRun{
		ID:        uuid.New(),
		UserID:    userID,
		State:     model.IngestRunRunning,
		StartedAt: s.now().UTC(),
	}
	if err := s.runStore.Start(ctx, *entry); err != nil {
		s.logger.Warn("failed to journal ingest run", "user_id", userID, "error", err)
		return nil
	}
	return entry
}

func (s *Ingest) finishJournal(ctx context.Context, entry *model.IngestRun, result model.IngestResult, runErr error) {
	if entry == nil {
		return
	}
	finished := s.now().UTC()
	entry.FinishedAt = &finished
	entry.Accepted = result.Accepted
	entry.Outcome = result.Outcome
	entry.State = model.IngestRunCompleted
	if runErr != nil {
		entry.State = model.IngestRunFailed
		entry.Error = runErr.Error()
	}
	if err := s.runStore.Finish(context.WithoutCancel(ctx), *entry); err != nil {
		s.logger.Warn("failed to journal ingest run", "user_id", entry.UserID, "error", err)
	}
}
