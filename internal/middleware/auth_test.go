package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobportal/api/internal/config"
	"jobportal/api/internal/models"
	"jobportal/api/internal/repository"
	"jobportal/api/internal/security"
)

type fakeUserFinder struct {
	users map[string]models.User
}

func (f *fakeUserFinder) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

const mwTestSecret = "middleware-test-secret"

func mwTestConfig() *config.AppConfig {
	return &config.AppConfig{
		Security: config.SecurityConfig{
			JWTSecret: mwTestSecret,
			JWTTTL:    time.Hour,
		},
	}
}

func newAuthRouter(users *fakeUserFinder, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	chain := append([]gin.HandlerFunc{Auth(mwTestConfig(), users)}, extra...)
	chain = append(chain, func(c *gin.Context) {
		user, _ := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID, "role": string(user.Role)})
	})
	r.GET("/protected", chain...)
	return r
}

func doGet(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingToken(t *testing.T) {
	r := newAuthRouter(&fakeUserFinder{})

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "Basic abc").Code, "non-bearer scheme rejected")
}

func TestAuthCollapsesTokenFailures(t *testing.T) {
	user := models.User{ID: "u1", Role: models.UserRoleJobseeker}
	r := newAuthRouter(&fakeUserFinder{users: map[string]models.User{"u1": user}})

	expired, err := security.IssueToken(mwTestSecret, "u1", "jobseeker", -time.Minute)
	require.NoError(t, err)
	badSecret, err := security.IssueToken("other-secret", "u1", "jobseeker", time.Hour)
	require.NoError(t, err)

	cases := map[string]string{
		"malformed":  "Bearer not.a.jwt",
		"expired":    "Bearer " + expired,
		"bad_secret": "Bearer " + badSecret,
	}
	for name, header := range cases {
		w := doGet(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
		// All verification failures produce the identical body.
		assert.JSONEq(t, `{"message":"Invalid token"}`, w.Body.String(), name)
	}
}

func TestAuthUnknownSubject(t *testing.T) {
	r := newAuthRouter(&fakeUserFinder{users: map[string]models.User{}})

	token, err := security.IssueToken(mwTestSecret, "deleted-user", "jobseeker", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type brokenUserFinder struct{}

func (brokenUserFinder) GetByID(context.Context, string) (models.User, error) {
	return models.User{}, errors.New("connection refused")
}

func TestAuthStorageFailureIsNotInvalidToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(mwTestConfig(), brokenUserFinder{}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	token, err := security.IssueToken(mwTestSecret, "u1", "jobseeker", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Server error"}`, w.Body.String())
}

func TestAuthAttachesUser(t *testing.T) {
	user := models.User{ID: "u1", Role: models.UserRoleEmployer}
	r := newAuthRouter(&fakeUserFinder{users: map[string]models.User{"u1": user}})

	token, err := security.IssueToken(mwTestSecret, "u1", "employer", time.Hour)
	require.NoError(t, err)

	w := doGet(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1","role":"employer"}`, w.Body.String())
}

func TestRequireRoles(t *testing.T) {
	jobseeker := models.User{ID: "js", Role: models.UserRoleJobseeker}
	employer := models.User{ID: "emp", Role: models.UserRoleEmployer}
	admin := models.User{ID: "adm", Role: models.UserRoleAdmin}
	finder := &fakeUserFinder{users: map[string]models.User{
		"js": jobseeker, "emp": employer, "adm": admin,
	}}

	r := newAuthRouter(finder, RequireRoles(models.UserRoleEmployer, models.UserRoleAdmin))

	tokenFor := func(u models.User) string {
		token, err := security.IssueToken(mwTestSecret, u.ID, string(u.Role), time.Hour)
		require.NoError(t, err)
		return "Bearer " + token
	}

	w := doGet(r, tokenFor(jobseeker))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"message":"Forbidden"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, doGet(r, tokenFor(employer)).Code)
	assert.Equal(t, http.StatusOK, doGet(r, tokenFor(admin)).Code)
}

func TestRequireRolesWithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/orphan", RequireRoles(models.UserRoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/orphan", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
