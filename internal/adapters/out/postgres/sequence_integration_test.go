package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	adapter "marketplace/internal/adapters/out/postgres"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderSequenceIntegrationTestSuite verifies code allocation against a real
// PostgreSQL instance, including behavior under concurrent checkouts.
type OrderSequenceIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	sequence  *adapter.GormOrderSequence
}

func (suite *OrderSequenceIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&adapter.OrderCounterDTO{}))
}

func (suite *OrderSequenceIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_counters").Error)
	suite.sequence = adapter.NewGormOrderSequence(suite.db)
}

func (suite *OrderSequenceIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderSequenceIntegrationTestSuite) TestNextCode_StartsAt1001() {
	ctx := context.Background()

	code, err := suite.sequence.NextCode(ctx)
	suite.Require().NoError(err)
	suite.Equal("ORDER1001", code)

	code, err = suite.sequence.NextCode(ctx)
	suite.Require().NoError(err)
	suite.Equal("ORDER1002", code)
}

func (suite *OrderSequenceIntegrationTestSuite) TestNextCode_ConcurrentAllocationsAreUnique() {
	ctx := context.Background()
	const workers = 20

	var wg sync.WaitGroup
	codes := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := suite.sequence.NextCode(ctx)
			suite.NoError(err)
			codes <- code
		}()
	}

	wg.Wait()
	close(codes)

	seen := make(map[string]bool, workers)
	for code := range codes {
		suite.False(seen[code], "code %s allocated twice", code)
		seen[code] = true
	}
	suite.Len(seen, workers)
}

func TestOrderSequenceIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderSequenceIntegrationTestSuite))
}
