package httpHandler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"recipe-server/entities"
	"recipe-server/repositories"
	"recipe-server/sessions"
	"recipe-server/usecases"
)

// fakeUserRepo is an in-memory UserRepository enforcing the username
// uniqueness constraint the way the real store does.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*entities.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepo) Create(user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repositories.ErrDuplicate
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(username string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type fakeRecipeRepo struct {
	mu      sync.Mutex
	recipes []entities.Recipe
}

func newFakeRecipeRepo() *fakeRecipeRepo {
	return &fakeRecipeRepo{}
}

func (f *fakeRecipeRepo) Create(recipe *entities.Recipe) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	f.recipes = append(f.recipes, *recipe)
	return nil
}

func (f *fakeRecipeRepo) GetByUserID(userID string) ([]entities.Recipe, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owned := []entities.Recipe{}
	for _, recipe := range f.recipes {
		if recipe.UserID == userID {
			owned = append(owned, recipe)
		}
	}
	return owned, nil
}

func (f *fakeRecipeRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.recipes)
}

// userRepoStub lets tests inject repository failures per call.
type userRepoStub struct {
	createFunc        func(*entities.User) error
	getByIDFunc       func(string) (*entities.User, error)
	getByUsernameFunc func(string) (*entities.User, error)
}

func (s *userRepoStub) Create(user *entities.User) error {
	if s.createFunc != nil {
		return s.createFunc(user)
	}
	return nil
}

func (s *userRepoStub) GetByID(id string) (*entities.User, error) {
	if s.getByIDFunc != nil {
		return s.getByIDFunc(id)
	}
	return nil, repositories.ErrNotFound
}

func (s *userRepoStub) GetByUsername(username string) (*entities.User, error) {
	if s.getByUsernameFunc != nil {
		return s.getByUsernameFunc(username)
	}
	return nil, repositories.ErrNotFound
}

type recipeRepoStub struct {
	createFunc      func(*entities.Recipe) error
	getByUserIDFunc func(string) ([]entities.Recipe, error)
}

func (s *recipeRepoStub) Create(recipe *entities.Recipe) error {
	if s.createFunc != nil {
		return s.createFunc(recipe)
	}
	return nil
}

func (s *recipeRepoStub) GetByUserID(userID string) ([]entities.Recipe, error) {
	if s.getByUserIDFunc != nil {
		return s.getByUserIDFunc(userID)
	}
	return []entities.Recipe{}, nil
}

// newTestRouter wires the handlers exactly as server.Start does, minus the
// network listener.
func newTestRouter(userRepo repositories.UserRepository, recipeRepo repositories.RecipeRepository, store *sessions.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ResolveSession(store))

	authHandler := NewAuthHandler(usecases.NewAuthUseCase(userRepo), store)
	recipeHandler := NewRecipeHandler(usecases.NewRecipeUseCase(recipeRepo))

	r.POST("/signup", authHandler.Signup)
	r.GET("/check_session", authHandler.CheckSession)
	r.POST("/login", authHandler.Login)
	r.DELETE("/logout", authHandler.Logout)
	r.GET("/recipes", recipeHandler.GetRecipes)
	r.POST("/recipes", recipeHandler.CreateRecipe)
	return r
}

func performRequest(r http.Handler, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var buf io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		buf = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			return c
		}
	}
	t.Fatalf("expected a session cookie in the response")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var parsed map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
		t.Fatalf("unparseable response body %q: %v", w.Body.String(), err)
	}
	return parsed
}

func defaultStore() *sessions.Store {
	return sessions.NewStore(time.Hour)
}
