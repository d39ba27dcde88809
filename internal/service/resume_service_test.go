package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/api/internal/models"
	"jobportal/api/internal/security"
)

func TestResumeUploadRejectsNonPDF(t *testing.T) {
	svc := NewResumeService(nil, nil, testConfig(), zerolog.Nop())

	// Rejected on the magic-byte sniff, before any storage call.
	_, err := svc.Upload(context.Background(), models.User{ID: "u1"},
		strings.NewReader("<html>not a resume</html>"), 25)
	assert.ErrorIs(t, err, ErrUnsupportedResumeType)

	_, err = svc.Upload(context.Background(), models.User{ID: "u1"},
		strings.NewReader(""), 0)
	assert.ErrorIs(t, err, ErrUnsupportedResumeType)
}

func TestResumeSignedURLVerifies(t *testing.T) {
	cfg := testConfig()
	cfg.Security.ResumeURLSecret = "resume-secret"
	cfg.Security.ResumeURLTTL = 15 * time.Minute
	svc := NewResumeService(nil, nil, cfg, zerolog.Nop())

	key := "resumes/u1/abc.pdf"
	expiresAt := time.Now().Add(cfg.Security.ResumeURLTTL)
	url := svc.SignedURL(key, expiresAt)

	require.Contains(t, url, "key=resumes%2Fu1%2Fabc.pdf")
	require.Contains(t, url, "expires=")
	require.Contains(t, url, "sig=")

	sig := url[strings.LastIndex(url, "sig=")+len("sig="):]
	assert.True(t, security.VerifyResumeURL("resume-secret", key,
		extractParam(url, "expires"), sig))
}

func extractParam(url string, name string) string {
	idx := strings.Index(url, name+"=")
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(name)+1:]
	if amp := strings.Index(rest, "&"); amp >= 0 {
		return rest[:amp]
	}
	return rest
}
