package cartrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// CartRepositoryIntegrationTestSuite provides integration tests for CartRepository
// using PostgreSQL containers to verify database persistence behavior.
type CartRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cartrepo.GormCartRepository
	tracker    *MockAggregateTracker
}

func (suite *CartRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&cartrepo.CartDTO{}, &cartrepo.CartLineDTO{}))
}

func (suite *CartRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE carts, cart_lines").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = cartrepo.NewGormCartRepository(suite.db, suite.tracker)
}

func (suite *CartRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CartRepositoryIntegrationTestSuite) TestAddAndGetByCustomer() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	aggregate := suite.cartWithLines(customerID)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Once()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	retrieved, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(aggregate.ID()))
	suite.True(retrieved.CustomerID().IsEqual(customerID))
	suite.Require().Len(retrieved.Lines(), 2)
	suite.Equal("Idli Batter", retrieved.Lines()[0].Name())
	suite.Equal(int64(80), retrieved.Lines()[0].Price())
}

func (suite *CartRepositoryIntegrationTestSuite) TestGetByCustomer_NoCart() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetByCustomer(ctx, kernel.NewUUID())
	suite.Nil(retrieved)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_RewritesLines() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	aggregate := suite.cartWithLines(customerID)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	lines := aggregate.Lines()
	suite.Require().NoError(aggregate.SetQuantity(lines[0].ProductID(), lines[0].VariantName(), 5))
	aggregate.Remove(lines[1].ProductID(), lines[1].VariantName())

	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.Lines(), 1)
	suite.Equal(5, retrieved.Lines()[0].Quantity())
}

func (suite *CartRepositoryIntegrationTestSuite) TestUpdate_ClearedCartKeepsRow() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	aggregate := suite.cartWithLines(customerID)

	suite.tracker.On("TrackAggregate", aggregate.ID(), aggregate).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, aggregate))

	aggregate.Clear()
	suite.Require().NoError(suite.repository.Update(ctx, aggregate))

	retrieved, err := suite.repository.GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(retrieved.IsEmpty())
}

func (suite *CartRepositoryIntegrationTestSuite) cartWithLines(customerID kernel.UUID) *cart.Cart {
	aggregate, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)

	first, err := cart.NewLine(kernel.NewUUID(), "Idli Batter", 80, 2, "1kg")
	suite.Require().NoError(err)
	second, err := cart.NewLine(kernel.NewUUID(), "Ghee", 150, 1, "")
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.AddLine(first))
	suite.Require().NoError(aggregate.AddLine(second))
	return aggregate
}

func TestCartRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CartRepositoryIntegrationTestSuite))
}
