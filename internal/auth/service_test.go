package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testService(ttl time.Duration) *Service {
	return &Service{secret: []byte("test-secret"), tokenTTL: ttl}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testService(time.Hour)
	user := &User{ID: uuid.New(), Email: "seller@example.com", Role: "seller"}

	resp, err := svc.issueToken(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	userID, err := svc.VerifyToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := testService(-time.Minute)
	user := &User{ID: uuid.New()}

	resp, err := svc.issueToken(user)
	assert.NoError(t, err)

	_, err = svc.VerifyToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForeignSecretRejected(t *testing.T) {
	issuer := testService(time.Hour)
	verifier := &Service{secret: []byte("other-secret"), tokenTTL: time.Hour}
	user := &User{ID: uuid.New()}

	resp, err := issuer.issueToken(user)
	assert.NoError(t, err)

	_, err = verifier.VerifyToken(resp.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMiddlewareSetsUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := testService(time.Hour)
	user := &User{ID: uuid.New()}
	resp, err := svc.issueToken(user)
	assert.NoError(t, err)

	r := gin.New()
	var got uuid.UUID
	r.GET("/protected", Middleware(svc), func(c *gin.Context) {
		got = c.MustGet("userID").(uuid.UUID)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+resp.AccessToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, user.ID, got)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Middleware(testService(time.Hour)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
