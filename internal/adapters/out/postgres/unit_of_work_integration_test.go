package postgres_test

import (
	"context"
	"testing"
	"time"

	adapter "marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/cartrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across the
// order and cart repositories, mirroring how checkout uses them.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   *adapter.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(adapter.Migrate(db))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_lines, carts, cart_lines").Error)
	suite.factory = adapter.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrderAndClearsCart() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	existingCart := suite.seedCart(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.buildOrder("ORDER1001", &customerID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	existingCart.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, existingCart))

	suite.Require().NoError(uow.Commit(ctx))

	suite.Equal(int64(1), suite.count(&orderrepo.OrderDTO{}))
	suite.Equal(int64(0), suite.count(&cartrepo.CartLineDTO{}))
	suite.Equal(int64(1), suite.count(&cartrepo.CartDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllChanges() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	existingCart := suite.seedCart(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.buildOrder("ORDER1002", &customerID)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	existingCart.Clear()
	suite.Require().NoError(uow.CartRepository().Update(ctx, existingCart))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.Equal(int64(0), suite.count(&orderrepo.OrderDTO{}))
	suite.Equal(int64(1), suite.count(&cartrepo.CartLineDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) seedCart(customerID kernel.UUID) *cart.Cart {
	aggregate, err := cart.NewCart(kernel.NewUUID(), customerID)
	suite.Require().NoError(err)

	line, err := cart.NewLine(kernel.NewUUID(), "Ghee", 150, 1, "")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddLine(line))

	uow := suite.factory.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) buildOrder(code string, customerID *kernel.UUID) *order.Order {
	contact, err := order.NewContact(customerID, "Asha", "9876543210", "12 MG Road", "", nil)
	suite.Require().NoError(err)

	line, err := order.NewLine(kernel.NewUUID(), "Ghee", 150, 1, "")
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		code,
		contact,
		[]order.Line{line},
		order.Totals{Subtotal: 150, DeliveryFee: 20, Total: 170},
		order.PaymentMethodCOD,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) count(model interface{}) int64 {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	return count
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
