package application

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/lifeosapp/backend/internal/domain/entity"
	"github.com/lifeosapp/backend/pkg/helpers"
)

// ExportService writes a full JSON snapshot of a user's records to GCS.
// Offered before a purge, since purge is unrecoverable.
type ExportService struct {
	Stores    Stores
	GCS       *storage.Client
	GCSBucket string
}

func NewExportService(st Stores, gcs *storage.Client, bucket string) *ExportService {
	return &ExportService{Stores: st, GCS: gcs, GCSBucket: bucket}
}

type exportDocument struct {
	UserID        string                `json:"user_id"`
	ExportedAt    time.Time             `json:"exported_at"`
	Events        []entity.LifeEvent    `json:"events"`
	HealthLogs    []entity.HealthLog    `json:"health_logs"`
	Transactions  []entity.Transaction  `json:"transactions"`
	Habits        []entity.Habit        `json:"habits"`
	Goals         []entity.Goal         `json:"goals"`
	Tasks         []entity.Task         `json:"tasks"`
	Relationships []entity.Relationship `json:"relationships"`
}

// ExportUserData gathers everything the user owns into one JSON object and
// uploads it, returning the object URL.
func (s *ExportService) ExportUserData(ctx context.Context, userID string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}

	doc := exportDocument{UserID: userID, ExportedAt: time.Now().UTC()}
	var err error
	if doc.Events, err = s.Stores.Events.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.HealthLogs, err = s.Stores.HealthLogs.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.Transactions, err = s.Stores.Transactions.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.Habits, err = s.Stores.Habits.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.Goals, err = s.Stores.Goals.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.Tasks, err = s.Stores.Tasks.ListByUser(ctx, userID); err != nil {
		return "", err
	}
	if doc.Relationships, err = s.Stores.Relationships.ListByUser(ctx, userID); err != nil {
		return "", err
	}

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", err
	}

	objectPath := filepath.ToSlash(filepath.Join("exports", userID, uuid.NewString()+".json"))
	return helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, "application/json", bytes.NewReader(b))
}
