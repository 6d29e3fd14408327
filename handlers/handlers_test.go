package handlers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"studyshare-backend/auth"
	"studyshare-backend/common"
	"studyshare-backend/config"
	"studyshare-backend/models"
	"studyshare-backend/repository"
	"studyshare-backend/service"
)

var testSecret = []byte("test-secret")

func init() {
	gin.SetMode(gin.TestMode)
}

// Mock repositories for testing

type mockResourceRepository struct {
	resources []*models.Resource
	names     map[uuid.UUID]string
}

func newMockResourceRepository() *mockResourceRepository {
	return &mockResourceRepository{names: make(map[uuid.UUID]string)}
}

func (m *mockResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	resource.ID = uuid.New()
	resource.CreatedAt = time.Now().Add(time.Duration(len(m.resources)) * time.Second)
	m.resources = append(m.resources, resource)
	return nil
}

func (m *mockResourceRepository) ListAll(ctx context.Context) ([]*models.ResourceView, error) {
	var views []*models.ResourceView
	for i := len(m.resources) - 1; i >= 0; i-- {
		r := m.resources[i]
		name, ok := m.names[r.OwnerID]
		if !ok {
			name = "Unknown"
		}
		views = append(views, &models.ResourceView{Resource: *r, UploaderName: name})
	}
	return views, nil
}

func (m *mockResourceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Resource, error) {
	for _, r := range m.resources {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, common.ErrNotFound
}

func (m *mockResourceRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	for i, r := range m.resources {
		if r.ID == id {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			return nil
		}
	}
	return common.ErrNotFound
}

type mockUserRepository struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepository(users ...*models.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uuid.UUID]*models.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepository) UpsertByEmail(ctx context.Context, email, name string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	u := &models.User{ID: uuid.New(), Name: name, Email: email, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	m.users[u.ID] = u
	return u, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, update repository.ProfileUpdate) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	u.Name = update.Name
	u.College = update.College
	u.Phone = update.Phone
	u.DegreeYear = update.DegreeYear
	u.About = update.About
	u.UpdatedAt = time.Now()
	return u, nil
}

type mockStorage struct {
	uploads int
	failErr error
}

func (m *mockStorage) Upload(ctx context.Context, fileID uuid.UUID, filename string, data io.Reader) (string, error) {
	if m.failErr != nil {
		return "", m.failErr
	}
	m.uploads++
	return fmt.Sprintf("https://files.example.com/%s/%s", fileID, filename), nil
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	return nil
}

type fixture struct {
	router    *gin.Engine
	resources *mockResourceRepository
	users     *mockUserRepository
	storage   *mockStorage
	cfg       *config.Config
}

func newFixture(t *testing.T, users ...*models.User) *fixture {
	t.Helper()

	f := &fixture{
		resources: newMockResourceRepository(),
		users:     newMockUserRepository(users...),
		storage:   &mockStorage{},
		cfg: &config.Config{
			JWTSecret:   string(testSecret),
			TokenTTL:    time.Hour,
			FrontendURL: "http://localhost:5173",
		},
	}

	accountService := service.NewAccountService(
		service.WithUserRepository(f.users),
	)
	resourceService := service.NewResourceService(
		service.WithResourceRepository(f.resources),
		service.WithUserLookup(f.users),
	)

	authHandler := NewAuthHandler(accountService, nil, f.cfg)
	resourceHandler := NewResourceHandler(resourceService)
	fileHandler := NewFileHandler(f.storage)

	requireAuth := auth.RequireAuth(testSecret)

	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/me", requireAuth, authHandler.Me)
		api.POST("/update-profile", requireAuth, authHandler.UpdateProfile)
		api.POST("/logout", authHandler.Logout)
		api.GET("/user/:id", authHandler.PublicUser)
		api.POST("/resources", requireAuth, resourceHandler.Create)
		api.GET("/resources", resourceHandler.List)
		api.DELETE("/resources/:id", requireAuth, resourceHandler.Delete)
		api.POST("/upload", requireAuth, fileHandler.Upload)
	}
	f.router = r
	return f
}

// tokenFor signs a credential for the given user.
func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := auth.SignToken(user.ID.String(), user.Email, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("SignToken error: %v", err)
	}
	return token
}

// perform runs a request against the fixture router, optionally with a
// bearer credential.
func (f *fixture) perform(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}
