package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"jobportal/api/internal/config"
	"jobportal/api/internal/ids"
	"jobportal/api/internal/models"
	"jobportal/api/internal/security"
	"jobportal/api/internal/storage"
)

var ErrUnsupportedResumeType = errors.New("unsupported resume type")

var pdfMagic = []byte("%PDF-")

// ResumeKeyUpdater persists the uploaded object key onto the user record.
type ResumeKeyUpdater interface {
	UpdateResumeKey(ctx context.Context, id string, resumeKey string) error
}

type ResumeService struct {
	users ResumeKeyUpdater
	store *storage.ObjectStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewResumeService(users ResumeKeyUpdater, store *storage.ObjectStore, cfg *config.AppConfig, log zerolog.Logger) *ResumeService {
	return &ResumeService{
		users: users,
		store: store,
		cfg:   cfg,
		log:   log,
	}
}

type UploadResult struct {
	Key       string
	SignedURL string
	ExpiresAt time.Time
}

// Upload sniffs the file head rather than trusting the declared content
// type, stores the object, and records the key on the profile.
func (s *ResumeService) Upload(ctx context.Context, user models.User, r io.Reader, size int64) (UploadResult, error) {
	head := make([]byte, len(pdfMagic))
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return UploadResult{}, fmt.Errorf("read head: %w", err)
	}
	head = head[:n]

	if !bytes.HasPrefix(head, pdfMagic) {
		return UploadResult{}, ErrUnsupportedResumeType
	}

	key := fmt.Sprintf("resumes/%s/%s.pdf", user.ID, ids.New())
	body := io.MultiReader(bytes.NewReader(head), r)

	if err := s.store.PutResume(ctx, key, body, size, "application/pdf"); err != nil {
		return UploadResult{}, err
	}

	if err := s.users.UpdateResumeKey(ctx, user.ID, key); err != nil {
		return UploadResult{}, err
	}

	s.log.Info().Str("user_id", user.ID).Str("key", key).Msg("resume uploaded")

	expiresAt := time.Now().Add(s.cfg.Security.ResumeURLTTL)
	return UploadResult{
		Key:       key,
		SignedURL: s.SignedURL(key, expiresAt),
		ExpiresAt: expiresAt,
	}, nil
}

// SignedURL builds a time-limited download path for an object key. The
// signature is checked again by the download handler.
func (s *ResumeService) SignedURL(key string, expiresAt time.Time) string {
	sig := security.SignResumeURL(s.cfg.Security.ResumeURLSecret, key, expiresAt)
	return fmt.Sprintf("/api/v1/resumes/download?key=%s&expires=%d&sig=%s",
		url.QueryEscape(key), expiresAt.Unix(), sig)
}

func (s *ResumeService) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	return s.store.GetResume(ctx, key)
}
