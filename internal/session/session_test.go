package session_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/session"
	"srinu_foods_client/internal/stub"
)

type env struct {
	server  *stub.Server
	client  *api.Client
	store   *session.TokenStore
	session *session.Manager
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := stub.New("test-secret", nil)
	server.Seed()
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL)
	store := session.NewTokenStore(t.TempDir())
	return &env{
		server:  server,
		client:  client,
		store:   store,
		session: session.NewManager(client, store),
	}
}

func TestLoginStoresTokenAndUser(t *testing.T) {
	e := newEnv(t)

	sess, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	require.True(t, sess.LoggedIn())
	assert.Equal(t, "customer", sess.User.Username)
	assert.False(t, sess.User.IsStaff)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, sess.Token, e.store.Load(), "token must survive a restart")
}

func TestLoginBadCredentials(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "customer", "wrong")
	require.Error(t, err)
	assert.True(t, api.IsBusiness(err))
	assert.Equal(t, "Invalid credentials", err.Error())
	assert.False(t, e.session.LoggedIn())
}

func TestLoginMissingFieldsIsLocal(t *testing.T) {
	e := newEnv(t)
	before := e.server.Hits()

	_, err := e.session.Login(context.Background(), "customer", "")
	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
	assert.Equal(t, before, e.server.Hits(), "validation errors must not reach the network")
}

func TestRegisterPasswordMismatchIsLocal(t *testing.T) {
	e := newEnv(t)
	before := e.server.Hits()

	_, err := e.session.Register(context.Background(), session.RegisterInput{
		FirstName:       "New",
		Username:        "newuser",
		Email:           "new@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret2",
	})
	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
	assert.Equal(t, before, e.server.Hits())
}

func TestRegisterLogsStraightIn(t *testing.T) {
	e := newEnv(t)

	sess, err := e.session.Register(context.Background(), session.RegisterInput{
		FirstName:       "New",
		Username:        "newuser",
		Email:           "new@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)
	assert.True(t, sess.LoggedIn())
	assert.Equal(t, "newuser", sess.User.Username)
}

func TestRestoreValidToken(t *testing.T) {
	e := newEnv(t)

	first, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	// A fresh manager sharing the same token file, as after a restart.
	fresh := session.NewManager(e.client, e.store)
	restored, err := fresh.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.Token, restored.Token)
	assert.Equal(t, "customer", restored.User.Username)
}

func TestRestoreRejectedTokenTearsDown(t *testing.T) {
	e := newEnv(t)
	require.NoError(t, e.store.Save("garbage-token"))

	_, err := e.session.Restore(context.Background())
	require.Error(t, err)
	assert.False(t, e.session.LoggedIn())
	assert.Empty(t, e.store.Load(), "a rejected token must be cleared")
}

func TestRestoreTransportFailureTearsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ts := httptest.NewServer(stub.New("test-secret", nil).Router())
	ts.Close() // unreachable backend

	client := api.New(ts.URL)
	store := session.NewTokenStore(t.TempDir())
	require.NoError(t, store.Save("whatever"))

	mgr := session.NewManager(client, store)
	_, err := mgr.Restore(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsTransport(err))
	assert.Empty(t, store.Load(), "network failure on profile fetch logs the user out")
}

func TestRequireAdminRejectsCustomer(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	_, err = e.session.RequireAdmin(context.Background())
	require.Error(t, err)
	assert.True(t, api.IsAuth(err))
	assert.False(t, e.session.LoggedIn(), "failed admin gate forces logout")
	assert.Empty(t, e.store.Load())
}

func TestRequireAdminAcceptsStaff(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "admin", "admin123")
	require.NoError(t, err)

	sess, err := e.session.RequireAdmin(context.Background())
	require.NoError(t, err)
	assert.True(t, sess.IsAdmin())
}

func TestUpdateProfileRefreshesUser(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	phone := "+91-1112223334"
	sess, err := e.session.UpdateProfile(context.Background(), session.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, phone, sess.User.Phone)
	assert.Equal(t, "Regular", sess.User.FirstName, "untouched fields keep their value")
}

func TestUpdateProfileWithoutSessionIsLocal(t *testing.T) {
	e := newEnv(t)
	before := e.server.Hits()

	_, err := e.session.UpdateProfile(context.Background(), session.ProfileUpdate{})
	require.ErrorIs(t, err, session.ErrNoSession)
	assert.Equal(t, before, e.server.Hits())
}

func TestTerminateIsClientSideOnly(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	before := e.server.Hits()
	e.session.Terminate()

	assert.False(t, e.session.LoggedIn())
	assert.Empty(t, e.store.Load())
	assert.Equal(t, before, e.server.Hits(), "logout never calls the server")
}

func TestTokenExpiryPeek(t *testing.T) {
	e := newEnv(t)

	_, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)

	expiry := e.session.TokenExpiry()
	assert.True(t, expiry.After(time.Now().Add(23*time.Hour)))
	assert.True(t, expiry.Before(time.Now().Add(25*time.Hour)))
}
