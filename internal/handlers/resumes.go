package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/api/internal/security"
)

// DownloadResume streams a stored resume. The request authenticates itself:
// the key, expiry and HMAC signature come from a link minted by
// ResumeService.SignedURL, so no bearer token is needed here.
func (h HandlerSet) DownloadResume(c *gin.Context) {
	key := c.Query("key")
	expires := c.Query("expires")
	sig := c.Query("sig")

	if key == "" || expires == "" || sig == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing download parameters"})
		return
	}

	if !security.VerifyResumeURL(h.cfg.Security.ResumeURLSecret, key, expires, sig) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired link"})
		return
	}

	obj, err := h.resumeService.Open(c.Request.Context(), key)
	if err != nil {
		h.serverError(c, err, "open resume failed")
		return
	}
	defer obj.Close()

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", "inline; filename=resume.pdf")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, obj); err != nil {
		h.log.Error().Err(err).Str("key", key).Msg("stream resume failed")
	}
}
