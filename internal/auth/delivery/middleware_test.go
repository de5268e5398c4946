package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "marketplace-backend/internal/auth/domain"
	"marketplace-backend/internal/auth/repository"
	"marketplace-backend/internal/auth/usecase"
	"marketplace-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "middleware-test-secret"

func signToken(t *testing.T, secret string, role authdomain.Role, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "user-1",
		"role":    string(role),
		"email":   "a@x.com",
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authUc := usecase.NewAuthUsecase(stubRepository{}, &config.Config{
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
	})

	r := gin.New()
	r.GET("/protected", AuthMiddleware(authUc), func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "claims missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": claims.UserID, "role": claims.Role})
	})
	r.GET("/admin", AuthMiddleware(authUc), AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	// Misconfigured route: role check without a preceding auth check.
	r.GET("/admin-unguarded", AdminMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	r := newTestRouter()
	if w := doRequest(r, "", "/protected"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadHeaderFormat(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, testSecret, authdomain.RoleUser, time.Hour)
	if w := doRequest(r, "Token "+token, "/protected"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for non-bearer scheme, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	r := newTestRouter()

	if w := doRequest(r, "Bearer garbage", "/protected"); w.Code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", w.Code)
	}

	wrongKey := signToken(t, "some-other-secret", authdomain.RoleUser, time.Hour)
	if w := doRequest(r, "Bearer "+wrongKey, "/protected"); w.Code != http.StatusUnauthorized {
		t.Fatalf("wrong key: expected 401, got %d", w.Code)
	}

	expired := signToken(t, testSecret, authdomain.RoleUser, -time.Minute)
	if w := doRequest(r, "Bearer "+expired, "/protected"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, testSecret, authdomain.RoleUser, time.Hour)
	if w := doRequest(r, "Bearer "+token, "/protected"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminMiddlewareRejectsNonAdmin(t *testing.T) {
	r := newTestRouter()
	for _, role := range []authdomain.Role{authdomain.RoleUser, authdomain.RoleSeller} {
		token := signToken(t, testSecret, role, time.Hour)
		if w := doRequest(r, "Bearer "+token, "/admin"); w.Code != http.StatusForbidden {
			t.Fatalf("role %s: expected 403, got %d", role, w.Code)
		}
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, testSecret, authdomain.RoleAdmin, time.Hour)
	if w := doRequest(r, "Bearer "+token, "/admin"); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

// The embedded role is authoritative: an admin-role token keeps admin access
// even though no admin exists in any store the gate could consult.
func TestAdminAccessIsClaimsOnly(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, testSecret, authdomain.RoleAdmin, time.Hour)
	if w := doRequest(r, "Bearer "+token, "/admin"); w.Code != http.StatusOK {
		t.Fatalf("expected 200 from claims alone, got %d", w.Code)
	}
}

func TestAdminMiddlewareWithoutAuthCheck(t *testing.T) {
	r := newTestRouter()
	token := signToken(t, testSecret, authdomain.RoleAdmin, time.Hour)
	if w := doRequest(r, "Bearer "+token, "/admin-unguarded"); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when claims were never attached, got %d", w.Code)
	}
}

// stubRepository satisfies the repository interface; token validation never
// touches the store.
type stubRepository struct{}

func (stubRepository) Create(*authdomain.User) error                { return nil }
func (stubRepository) FindByEmail(string) (*authdomain.User, error) { return nil, nil }
func (stubRepository) FindByID(string) (*authdomain.User, error)    { return nil, nil }
func (stubRepository) FindAll() ([]authdomain.User, error)          { return nil, nil }
func (stubRepository) Update(*authdomain.User) error                { return nil }
func (stubRepository) Delete(string) error                          { return nil }
func (stubRepository) Count() (int64, error)                        { return 0, nil }
func (stubRepository) CountByRole() ([]authdomain.RoleCount, error) { return nil, nil }

var _ repository.UserRepository = stubRepository{}
