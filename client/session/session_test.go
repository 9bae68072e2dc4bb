package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanjeevika-shop/client/storage"
	"sanjeevika-shop/models"
)

type fakeAuthAPI struct {
	loginResp    *models.AuthResponse
	loginErr     error
	registerResp *models.AuthResponse
	registerErr  error
	logoutErr    error
	logoutCalls  int
}

func (f *fakeAuthAPI) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return f.registerResp, f.registerErr
}

func (f *fakeAuthAPI) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

var testUser = models.User{ID: "u1", Name: "Priya", Email: "priya@example.com", Mobile: "9999999999"}

func TestLoginSuccessPersistsUserAndToken(t *testing.T) {
	mem := storage.NewMemoryStore()
	api := &fakeAuthAPI{loginResp: &models.AuthResponse{
		Success: true,
		Message: "Login successful",
		User:    &testUser,
		Token:   "jwt-token",
	}}
	store := New(mem, api)

	result := store.Login(context.Background(), "priya@example.com", "secret")
	require.True(t, result.Success)

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "jwt-token", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "Priya", store.User().Name)

	var persistedUser models.User
	require.True(t, mem.Get(storage.UserKey, &persistedUser))
	assert.Equal(t, "u1", persistedUser.ID)

	var persistedToken string
	require.True(t, mem.Get(storage.TokenKey, &persistedToken))
	assert.Equal(t, "jwt-token", persistedToken)
}

func TestLoginRejectionLeavesStoreAnonymous(t *testing.T) {
	mem := storage.NewMemoryStore()
	api := &fakeAuthAPI{loginResp: &models.AuthResponse{
		Success: false,
		Message: "invalid email or password",
	}}
	store := New(mem, api)

	result := store.Login(context.Background(), "priya@example.com", "wrong")
	assert.False(t, result.Success)
	assert.Equal(t, "invalid email or password", result.Message)

	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	var anything string
	assert.False(t, mem.Get(storage.TokenKey, &anything))
}

func TestLoginTransportErrorUsesGenericMessage(t *testing.T) {
	store := New(storage.NewMemoryStore(), &fakeAuthAPI{loginErr: errors.New("connection refused")})

	result := store.Login(context.Background(), "priya@example.com", "secret")
	assert.False(t, result.Success)
	assert.Equal(t, "Login failed. Please try again.", result.Message)
	assert.False(t, store.IsAuthenticated())
}

func TestLoginSuccessWithoutTokenIsRejected(t *testing.T) {
	// A malformed success response without a token must not sign the user in.
	store := New(storage.NewMemoryStore(), &fakeAuthAPI{loginResp: &models.AuthResponse{
		Success: true,
		User:    &testUser,
	}})

	result := store.Login(context.Background(), "priya@example.com", "secret")
	assert.False(t, result.Success)
	assert.False(t, store.IsAuthenticated())
}

func TestRegisterSuccessSignsIn(t *testing.T) {
	mem := storage.NewMemoryStore()
	api := &fakeAuthAPI{registerResp: &models.AuthResponse{
		Success: true,
		User:    &testUser,
		Token:   "fresh-token",
	}}
	store := New(mem, api)

	result := store.Register(context.Background(), models.RegisterRequest{
		Name: "Priya", Email: "priya@example.com", Password: "secret", Mobile: "9999999999",
	})
	require.True(t, result.Success)
	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "fresh-token", store.Token())
}

func TestRegisterDuplicateEmailSurfacesMessage(t *testing.T) {
	store := New(storage.NewMemoryStore(), &fakeAuthAPI{registerResp: &models.AuthResponse{
		Success: false,
		Message: "user with this email already exists",
	}})

	result := store.Register(context.Background(), models.RegisterRequest{})
	assert.False(t, result.Success)
	assert.Equal(t, "user with this email already exists", result.Message)
}

func TestLogoutClearsEvenWhenBackendFails(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.UserKey, testUser)
	mem.Set(storage.TokenKey, "stale-token")

	api := &fakeAuthAPI{logoutErr: errors.New("backend down")}
	store := New(mem, api)
	require.True(t, store.IsAuthenticated())

	store.Logout(context.Background())

	assert.Equal(t, 1, api.logoutCalls)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	var anything string
	assert.False(t, mem.Get(storage.TokenKey, &anything))
	var user models.User
	assert.False(t, mem.Get(storage.UserKey, &user))
}

func TestRestoreOnConstruct(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.UserKey, testUser)
	mem.Set(storage.TokenKey, "persisted-token")

	store := New(mem, &fakeAuthAPI{})

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "persisted-token", store.Token())
	require.NotNil(t, store.User())
	assert.Equal(t, "priya@example.com", store.User().Email)
}

func TestRestoreRequiresBothUserAndToken(t *testing.T) {
	userOnly := storage.NewMemoryStore()
	userOnly.Set(storage.UserKey, testUser)
	assert.False(t, New(userOnly, &fakeAuthAPI{}).IsAuthenticated())

	tokenOnly := storage.NewMemoryStore()
	tokenOnly.Set(storage.TokenKey, "orphan-token")
	assert.False(t, New(tokenOnly, &fakeAuthAPI{}).IsAuthenticated())

	emptyToken := storage.NewMemoryStore()
	emptyToken.Set(storage.UserKey, testUser)
	emptyToken.Set(storage.TokenKey, "")
	assert.False(t, New(emptyToken, &fakeAuthAPI{}).IsAuthenticated())
}

func TestUpdateUserMergesAndRepersists(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.UserKey, testUser)
	mem.Set(storage.TokenKey, "token")
	store := New(mem, &fakeAuthAPI{})

	name := "Priya Sharma"
	state := "Kerala"
	store.UpdateUser(models.UserUpdate{Name: &name, State: &state})

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "Priya Sharma", user.Name)
	assert.Equal(t, "Kerala", user.State)
	assert.Equal(t, "priya@example.com", user.Email, "untouched fields must survive the merge")

	var persisted models.User
	require.True(t, mem.Get(storage.UserKey, &persisted))
	assert.Equal(t, "Priya Sharma", persisted.Name)
}

func TestUpdateUserIgnoredWhenAnonymous(t *testing.T) {
	mem := storage.NewMemoryStore()
	store := New(mem, &fakeAuthAPI{})

	name := "Nobody"
	store.UpdateUser(models.UserUpdate{Name: &name})

	assert.False(t, store.IsAuthenticated())
	var user models.User
	assert.False(t, mem.Get(storage.UserKey, &user))
}

func TestUserReturnsCopy(t *testing.T) {
	mem := storage.NewMemoryStore()
	mem.Set(storage.UserKey, testUser)
	mem.Set(storage.TokenKey, "token")
	store := New(mem, &fakeAuthAPI{})

	user := store.User()
	user.Name = "Mutated"

	assert.Equal(t, "Priya", store.User().Name)
}
