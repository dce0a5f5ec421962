package session

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/api"
	"github.com/mahendrakumawat2208/medium-blog-platform/internal/client/models"
)

// ---- fakes ----

// memRepo is an in-memory metadata.Repository standing in for the local
// state database.
type memRepo struct {
	data   map[string]string
	getErr error
	setErr error
	delErr error
}

func newMemRepo() *memRepo {
	return &memRepo{data: map[string]string{}}
}

func (m *memRepo) Get(ctx context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.data[key], nil
}

func (m *memRepo) Set(ctx context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

func (m *memRepo) Delete(ctx context.Context, key string) error {
	if m.delErr != nil {
		return m.delErr
	}
	delete(m.data, key)
	return nil
}

func (m *memRepo) Clear(ctx context.Context) error {
	m.data = map[string]string{}
	return nil
}

// fakeAPI implements api.Client for session manager tests.
type fakeAPI struct {
	loginResp *api.TokenResponse
	loginErr  error
	lastLogin api.LoginRequest

	registerResp *api.TokenResponse
	registerErr  error
	lastRegister api.RegisterRequest

	meResp  *models.User
	meErr   error
	meCalls int
}

func (f *fakeAPI) Register(ctx context.Context, req api.RegisterRequest) (*api.TokenResponse, error) {
	f.lastRegister = req
	return f.registerResp, f.registerErr
}

func (f *fakeAPI) Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error) {
	f.lastLogin = req
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Me(ctx context.Context) (*models.User, error) {
	f.meCalls++
	return f.meResp, f.meErr
}

func (f *fakeAPI) UserByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, nil
}

func (f *fakeAPI) UserPosts(ctx context.Context, userID uuid.UUID, page api.Page) ([]models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) Follow(ctx context.Context, userID uuid.UUID) error   { return nil }
func (f *fakeAPI) Unfollow(ctx context.Context, userID uuid.UUID) error { return nil }

func (f *fakeAPI) UpdateMe(ctx context.Context, req api.UserUpdate) (*models.User, error) {
	return nil, nil
}

func (f *fakeAPI) ListPosts(ctx context.Context, filter api.PostFilter) ([]models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) PostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) Post(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) CreatePost(ctx context.Context, req api.PostCreate) (*models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) UpdatePost(ctx context.Context, id uuid.UUID, req api.PostUpdate) (*models.Post, error) {
	return nil, nil
}

func (f *fakeAPI) DeletePost(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeAPI) Feed(ctx context.Context, page api.Page) ([]models.Post, error) {
	return nil, nil
}

// ---- helpers ----

func testUser(username string) *models.User {
	return &models.User{ID: uuid.New(), Email: username + "@example.com", Username: username}
}

func newManager(t *testing.T, f *fakeAPI, repo *memRepo) (*Manager, *[]string) {
	t.Helper()
	var routes []string
	m := NewManager(f, NewTokenStore(repo), WithNavigator(func(route string) {
		routes = append(routes, route)
	}))
	return m, &routes
}

// ---- TESTS ----

func TestManager_StartsInitializing(t *testing.T) {
	m, _ := newManager(t, &fakeAPI{}, newMemRepo())
	require.Equal(t, StateInitializing, m.State())
}

func TestManager_ResolveWithoutTokenIsAnonymous(t *testing.T) {
	f := &fakeAPI{}
	m, _ := newManager(t, f, newMemRepo())

	require.NoError(t, m.Resolve(context.Background()))

	state, user := m.Current()
	require.Equal(t, StateAnonymous, state)
	require.Nil(t, user)
	require.Zero(t, f.meCalls, "identity endpoint must not be called without a token")
}

func TestManager_ResolveWithValidTokenAuthenticates(t *testing.T) {
	alice := testUser("alice")
	f := &fakeAPI{meResp: alice}
	repo := newMemRepo()
	repo.data[tokenKey] = "t1"
	m, _ := newManager(t, f, repo)

	require.NoError(t, m.Resolve(context.Background()))

	state, user := m.Current()
	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, alice, user)
	require.Equal(t, "t1", repo.data[tokenKey])
}

func TestManager_ResolveWithRejectedTokenPurgesSilently(t *testing.T) {
	f := &fakeAPI{meErr: &api.Error{StatusCode: 401, Message: "Could not validate credentials"}}
	repo := newMemRepo()
	repo.data[tokenKey] = "stale"
	m, _ := newManager(t, f, repo)

	require.NoError(t, m.Resolve(context.Background()), "rejection must not surface as an error")

	state, user := m.Current()
	require.Equal(t, StateAnonymous, state)
	require.Nil(t, user)
	require.NotContains(t, repo.data, tokenKey, "stale token must be purged")
}

func TestManager_ResolveStorageFailureIsReturned(t *testing.T) {
	repo := newMemRepo()
	repo.getErr = errors.New("disk gone")
	m, _ := newManager(t, &fakeAPI{}, repo)

	require.Error(t, m.Resolve(context.Background()))
	require.Equal(t, StateInitializing, m.State())
}

func TestManager_LoginPersistsTokenAndAuthenticates(t *testing.T) {
	alice := testUser("alice")
	f := &fakeAPI{loginResp: &api.TokenResponse{AccessToken: "t1", TokenType: "bearer", User: *alice}}
	repo := newMemRepo()
	m, routes := newManager(t, f, repo)

	require.NoError(t, m.Login(context.Background(), "a@b.com", "pw"))

	require.Equal(t, api.LoginRequest{Email: "a@b.com", Password: "pw"}, f.lastLogin)
	require.Equal(t, "t1", repo.data[tokenKey])

	state, user := m.Current()
	require.Equal(t, StateAuthenticated, state)
	require.Equal(t, alice.Username, user.Username)
	require.Equal(t, []string{RouteLanding}, *routes)
}

func TestManager_LoginFailurePropagatesUnchanged(t *testing.T) {
	rejection := &api.Error{StatusCode: 401, Message: "Incorrect email or password"}
	f := &fakeAPI{loginErr: rejection}
	repo := newMemRepo()
	m, routes := newManager(t, f, repo)

	err := m.Login(context.Background(), "a@b.com", "wrong")

	require.ErrorIs(t, err, rejection)
	require.NotContains(t, repo.data, tokenKey)
	require.Empty(t, *routes)
}

func TestManager_RegisterEstablishesSession(t *testing.T) {
	bob := testUser("bob")
	f := &fakeAPI{registerResp: &api.TokenResponse{AccessToken: "t2", TokenType: "bearer", User: *bob}}
	repo := newMemRepo()
	m, routes := newManager(t, f, repo)

	require.NoError(t, m.Register(context.Background(), "b@c.com", "pw", "bob"))

	require.Equal(t, api.RegisterRequest{Email: "b@c.com", Password: "pw", Username: "bob"}, f.lastRegister)
	require.Equal(t, "t2", repo.data[tokenKey])
	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, []string{RouteLanding}, *routes)
}

func TestManager_LogoutClearsTokenAndNavigates(t *testing.T) {
	alice := testUser("alice")
	f := &fakeAPI{loginResp: &api.TokenResponse{AccessToken: "t1", User: *alice}}
	repo := newMemRepo()
	m, routes := newManager(t, f, repo)
	require.NoError(t, m.Login(context.Background(), "a@b.com", "pw"))

	require.NoError(t, m.Logout(context.Background()))

	state, user := m.Current()
	require.Equal(t, StateAnonymous, state)
	require.Nil(t, user)
	require.NotContains(t, repo.data, tokenKey)
	require.Equal(t, []string{RouteLanding, RouteLanding}, *routes)
}

func TestManager_LogoutEndsAnonymousEvenOnStorageFailure(t *testing.T) {
	repo := newMemRepo()
	repo.delErr = errors.New("disk gone")
	m, routes := newManager(t, &fakeAPI{}, repo)

	require.Error(t, m.Logout(context.Background()))
	require.Equal(t, StateAnonymous, m.State())
	require.Equal(t, []string{RouteLanding}, *routes)
}

func TestManager_SubscribersObserveTransitions(t *testing.T) {
	alice := testUser("alice")
	f := &fakeAPI{loginResp: &api.TokenResponse{AccessToken: "t1", User: *alice}}
	m, _ := newManager(t, f, newMemRepo())

	var seen []State
	m.Subscribe(func(state State, user *models.User) {
		seen = append(seen, state)
	})

	require.NoError(t, m.Resolve(context.Background()))
	require.NoError(t, m.Login(context.Background(), "a@b.com", "pw"))
	require.NoError(t, m.Logout(context.Background()))

	require.Equal(t, []State{StateAnonymous, StateAuthenticated, StateAnonymous}, seen)
}

func TestState_String(t *testing.T) {
	require.Equal(t, "initializing", StateInitializing.String())
	require.Equal(t, "anonymous", StateAnonymous.String())
	require.Equal(t, "authenticated", StateAuthenticated.String())
}
