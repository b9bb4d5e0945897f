package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/kmwhite/dinner-recipes/backend/internal/api"
	"github.com/kmwhite/dinner-recipes/backend/internal/router"
	"github.com/kmwhite/dinner-recipes/backend/internal/service"
	"github.com/kmwhite/dinner-recipes/backend/internal/testhelpers"
)

// fakeObjectStore records puts and deletes in memory.
type fakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newFakeObjectStore() *fakeObjectStore {
	return &fakeObjectStore{objects: make(map[string][]byte)}
}

func (f *fakeObjectStore) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	buf := new(bytes.Buffer)
	if params.Body != nil {
		if _, err := buf.ReadFrom(params.Body); err != nil {
			return nil, err
		}
	}
	f.objects[*params.Key] = buf.Bytes()
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeObjectStore) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeObjectStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

type testServer struct {
	engine *gin.Engine
	db     *gorm.DB
	store  *fakeObjectStore
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDatabase(t)
	store := newFakeObjectStore()

	authService := service.NewAuthService(db, "test-secret", testhelpers.NewMemoryTokenStore())
	recipeService := service.NewRecipeService(db)
	photoService := service.NewPhotoRecipeService(db)
	storageService := service.NewStorageService(store, "test-bucket")

	engine := router.SetupRouter(
		api.NewAuthHandler(authService),
		api.NewRecipeHandler(recipeService),
		api.NewPhotoHandler(photoService, storageService),
		authService,
		nil,
		nil,
	)

	return &testServer{engine: engine, db: db, store: store}
}

// registerAndLogin creates an account and returns its token pair.
func (ts *testServer) registerAndLogin(t *testing.T, email, password string) service.TokenPair {
	t.Helper()

	w := ts.doJSON(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = ts.doJSON(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair service.TokenPair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

// doJSON performs a request with an optional bearer token and JSON body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}
