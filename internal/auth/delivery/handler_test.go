package delivery

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authdomain "marketplace-backend/internal/auth/domain"
	"marketplace-backend/internal/auth/repository"
	"marketplace-backend/internal/auth/usecase"
	"marketplace-backend/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newAuthTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	authUc := usecase.NewAuthUsecase(newMemRepository(), &config.Config{
		JWTSecret: testSecret,
		JWTExpiry: time.Hour,
	})
	handler := NewAuthHandler(authUc, zap.NewNop().Sugar())

	r := gin.New()
	r.POST("/api/users/register", handler.Register)
	r.POST("/api/users/login", handler.Login)
	r.GET("/api/auth/me", AuthMiddleware(authUc), handler.Me)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterLoginRoundtrip(t *testing.T) {
	r := newAuthTestServer()

	w := postJSON(r, "/api/users/register", `{"email":"a@x.com","password":"secret1","name":"Alice"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = postJSON(r, "/api/users/login", `{"email":"a@x.com","password":"secret1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("login: expected token in response")
	}
	if resp.User.Email != "a@x.com" {
		t.Fatalf("login: unexpected user %+v", resp.User)
	}

	// The token authenticates follow-up requests.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	me := httptest.NewRecorder()
	r.ServeHTTP(me, req)
	if me.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", me.Code, me.Body.String())
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	r := newAuthTestServer()
	body := `{"email":"a@x.com","password":"secret1","name":"Alice"}`

	if w := postJSON(r, "/api/users/register", body); w.Code != http.StatusCreated {
		t.Fatalf("first register: expected 201, got %d", w.Code)
	}
	if w := postJSON(r, "/api/users/register", body); w.Code != http.StatusConflict {
		t.Fatalf("second register: expected 409, got %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	r := newAuthTestServer()

	// Short password and missing name both fail binding.
	if w := postJSON(r, "/api/users/register", `{"email":"a@x.com","password":"short"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if w := postJSON(r, "/api/users/register", `{"email":"not-an-email","password":"secret1","name":"A"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthTestServer()
	postJSON(r, "/api/users/register", `{"email":"a@x.com","password":"secret1","name":"Alice"}`)

	if w := postJSON(r, "/api/users/login", `{"email":"a@x.com","password":"nope22"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

// memRepository is an in-memory UserRepository for handler tests.
type memRepository struct {
	usersByID    map[string]*authdomain.User
	usersByEmail map[string]*authdomain.User
	nextID       int
}

func newMemRepository() *memRepository {
	return &memRepository{
		usersByID:    make(map[string]*authdomain.User),
		usersByEmail: make(map[string]*authdomain.User),
		nextID:       1,
	}
}

func (m *memRepository) Create(user *authdomain.User) error {
	if _, exists := m.usersByEmail[user.Email]; exists {
		return repository.ErrDuplicateKey
	}
	user.ID = fmt.Sprintf("user-%d", m.nextID)
	m.nextID++
	stored := *user
	m.usersByID[user.ID] = &stored
	m.usersByEmail[user.Email] = &stored
	return nil
}

func (m *memRepository) FindByEmail(email string) (*authdomain.User, error) {
	user, ok := m.usersByEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memRepository) FindByID(id string) (*authdomain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (m *memRepository) FindAll() ([]authdomain.User, error) {
	users := make([]authdomain.User, 0, len(m.usersByID))
	for _, u := range m.usersByID {
		users = append(users, *u)
	}
	return users, nil
}

func (m *memRepository) Update(user *authdomain.User) error {
	stored := *user
	m.usersByID[user.ID] = &stored
	m.usersByEmail[user.Email] = &stored
	return nil
}

func (m *memRepository) Delete(id string) error {
	if user, ok := m.usersByID[id]; ok {
		delete(m.usersByEmail, user.Email)
		delete(m.usersByID, id)
	}
	return nil
}

func (m *memRepository) Count() (int64, error) {
	return int64(len(m.usersByID)), nil
}

func (m *memRepository) CountByRole() ([]authdomain.RoleCount, error) {
	return nil, nil
}
