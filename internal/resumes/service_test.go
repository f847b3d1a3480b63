package resumes

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	localstore "github.com/hanwat12/Ats-Slrd/internal/shared/storage/object/local"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return &Service{
		Store: localstore.New(t.TempDir()),
		Repo:  NewMemoryRepo(),
	}
}

func TestUploadStoresFileAndExtractsText(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	body := strings.NewReader("Senior Go engineer. Five years of backend experience.")
	res, err := svc.Upload(ctx, "u1", "resume.txt", body)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.ID == "" {
		t.Fatalf("expected generated resume ID")
	}
	if res.SizeBytes == 0 {
		t.Fatalf("expected non-zero size")
	}
	if !strings.Contains(res.TextContent, "Senior Go engineer") {
		t.Fatalf("expected extracted text, got %q", res.TextContent)
	}

	got, rc, err := svc.OpenContent(ctx, res.ID)
	if err != nil {
		t.Fatalf("OpenContent: %v", err)
	}
	defer rc.Close()
	if got.FileName != "resume.txt" {
		t.Fatalf("expected file name resume.txt, got %q", got.FileName)
	}
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read content: %v", err)
	}
	if !strings.Contains(string(data), "backend experience") {
		t.Fatalf("stored content mismatch: %q", string(data))
	}
}

func TestUploadSurvivesExtractionFailure(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// A .docx with a zip signature but no real archive behind it cannot
	// be parsed, but the upload itself should still succeed with empty text.
	body := strings.NewReader("PK\x03\x04 not actually a docx")
	res, err := svc.Upload(ctx, "u1", "resume.docx", body)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if res.TextContent != "" {
		t.Fatalf("expected empty text after failed extraction, got %q", res.TextContent)
	}

	list, err := svc.ListForUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(list))
	}
}

func TestUploadRejectsMissingFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Upload(ctx, "", "resume.txt", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing user, got %v", err)
	}
	if _, err := svc.Upload(ctx, "u1", "", strings.NewReader("x")); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing file name, got %v", err)
	}
	if _, err := svc.Upload(ctx, "u1", "resume.txt", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for nil body, got %v", err)
	}
}

func TestGetMissingResume(t *testing.T) {
	svc := newTestService(t)

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
