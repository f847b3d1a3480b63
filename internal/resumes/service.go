package resumes

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/hanwat12/Ats-Slrd/internal/extract"
	"github.com/hanwat12/Ats-Slrd/internal/shared/storage/object"
	"github.com/hanwat12/Ats-Slrd/internal/shared/telemetry"
)

var ErrInvalidInput = errors.New("invalid input")

// Service stores uploaded resumes and extracts their text.
type Service struct {
	Store object.ObjectStore
	Repo  Repo
}

// Upload saves the file body, records the resume, and extracts text best-effort.
// Extraction failure is logged but does not fail the upload.
func (s *Service) Upload(ctx context.Context, userID, fileName string, body io.Reader) (Resume, error) {
	if userID == "" || fileName == "" || body == nil {
		return Resume{}, ErrInvalidInput
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, body)
	if err != nil {
		return Resume{}, err
	}

	res := Resume{
		ID:         uuid.NewString(),
		UserID:     userID,
		FileName:   fileName,
		MimeType:   mimeType,
		SizeBytes:  size,
		StorageKey: storageKey,
		CreatedAt:  time.Now().UTC(),
	}

	text, err := extract.Text(ctx, s.Store, storageKey, mimeType, fileName)
	if err != nil {
		telemetry.Error("resumes.extract_failed", map[string]any{
			"resume_id": res.ID,
			"user_id":   userID,
			"error":     err.Error(),
		})
	} else {
		res.TextContent = text
	}

	if err := s.Repo.Create(ctx, res); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Get returns a resume by ID.
func (s *Service) Get(ctx context.Context, resumeID string) (Resume, error) {
	return s.Repo.GetByID(ctx, resumeID)
}

// ListForUser returns a user's resumes, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// OpenContent opens the stored resume body for download.
func (s *Service) OpenContent(ctx context.Context, resumeID string) (Resume, io.ReadCloser, error) {
	res, err := s.Repo.GetByID(ctx, resumeID)
	if err != nil {
		return Resume{}, nil, err
	}
	rc, err := s.Store.Open(ctx, res.StorageKey)
	if err != nil {
		return Resume{}, nil, err
	}
	return res, rc, nil
}
