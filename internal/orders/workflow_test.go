package orders_test

import (
	"context"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srinu_foods_client/internal/api"
	"srinu_foods_client/internal/cart"
	"srinu_foods_client/internal/models"
	"srinu_foods_client/internal/orders"
	"srinu_foods_client/internal/session"
	"srinu_foods_client/internal/stub"
)

type env struct {
	server  *stub.Server
	session *session.Manager
	cart    *cart.Synchronizer
	orders  *orders.Workflow
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := stub.New("test-secret", nil)
	server.Seed()
	ts := httptest.NewServer(server.Router())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL)
	sess := session.NewManager(client, session.NewTokenStore(t.TempDir()))
	basket := cart.NewSynchronizer(client, sess)
	return &env{
		server:  server,
		session: sess,
		cart:    basket,
		orders:  orders.NewWorkflow(client, sess, basket),
	}
}

func (e *env) login(t *testing.T) {
	t.Helper()
	_, err := e.session.Login(context.Background(), "customer", "customer123")
	require.NoError(t, err)
}

var delivery = orders.DeliveryInfo{
	Address: "456 Customer Lane, Food City",
	Phone:   "+91-9876543211",
}

func TestCheckoutValidatesBeforeNetwork(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.cart.Add(ctx, "paneer-tikka", 1))

	before := e.server.Hits()
	_, err := e.orders.Checkout(ctx, orders.DeliveryInfo{Phone: "+91-9876543211"})

	require.Error(t, err)
	assert.True(t, api.IsValidation(err))
	assert.Equal(t, before, e.server.Hits())
	assert.Equal(t, 1, e.cart.State().TotalItems, "failed checkout leaves the cart display unchanged")
}

func TestCheckoutEmptyCartRejectedByServer(t *testing.T) {
	e := newEnv(t)
	e.login(t)

	_, err := e.orders.Checkout(context.Background(), delivery)
	require.Error(t, err)
	assert.True(t, api.IsBusiness(err))
	assert.Equal(t, "Cart is empty", err.Error())
}

func TestCheckoutSuccess(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.cart.Add(ctx, "chicken-biryani", 2))

	confirmation, err := e.orders.Checkout(ctx, delivery)
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^SF\d{6}$`), confirmation.OrderNumber)
	assert.Equal(t, models.StatusPending, confirmation.Status)
	assert.Equal(t, 700.0, confirmation.TotalAmount)
	assert.NotEmpty(t, confirmation.EstimatedDeliveryTime)

	// Local display cleared, and the server-side cart really is empty.
	assert.Empty(t, e.cart.State().Items)
	require.NoError(t, e.cart.Reload(ctx))
	assert.Empty(t, e.cart.State().Items)
}

func TestListMine(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.cart.Add(ctx, "masala-dosa", 1))

	confirmation, err := e.orders.Checkout(ctx, delivery)
	require.NoError(t, err)

	list, err := e.orders.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, confirmation.OrderNumber, list[0].OrderNumber)
	assert.Equal(t, models.StatusPending, list[0].Status)
	require.Len(t, list[0].Items, 1)
	assert.Equal(t, "masala-dosa", list[0].Items[0].ItemID)
}

func TestGetEnforcesOwnershipServerSide(t *testing.T) {
	e := newEnv(t)
	e.login(t)
	ctx := context.Background()
	require.NoError(t, e.cart.Add(ctx, "masala-dosa", 1))
	confirmation, err := e.orders.Checkout(ctx, delivery)
	require.NoError(t, err)

	order, err := e.orders.Get(ctx, confirmation.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.OrderNumber, order.OrderNumber)

	// Another customer cannot read it.
	other := newEnvSharingServer(t, e)
	_, err = other.orders.Get(ctx, confirmation.ID)
	require.Error(t, err)
	assert.True(t, api.IsBusiness(err))
}

// newEnvSharingServer registers a second customer against the same
// stub instance.
func newEnvSharingServer(t *testing.T, base *env) *env {
	t.Helper()

	ts := httptest.NewServer(base.server.Router())
	t.Cleanup(ts.Close)

	client := api.New(ts.URL)
	sess := session.NewManager(client, session.NewTokenStore(t.TempDir()))
	basket := cart.NewSynchronizer(client, sess)

	_, err := sess.Register(context.Background(), session.RegisterInput{
		FirstName:       "Other",
		Username:        "other",
		Email:           "other@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	})
	require.NoError(t, err)

	return &env{
		server:  base.server,
		session: sess,
		cart:    basket,
		orders:  orders.NewWorkflow(client, sess, basket),
	}
}

func TestWorkflowRequiresSession(t *testing.T) {
	e := newEnv(t)
	before := e.server.Hits()

	_, err := e.orders.Checkout(context.Background(), delivery)
	require.ErrorIs(t, err, session.ErrNoSession)

	_, err = e.orders.ListMine(context.Background())
	require.ErrorIs(t, err, session.ErrNoSession)

	assert.Equal(t, before, e.server.Hits())
}
