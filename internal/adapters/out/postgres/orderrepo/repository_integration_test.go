package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	seq        int64
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_status_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	suite.seq++
	mobile := gofakeit.Phone()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		order.FormatOrderNumber("ORD", suite.seq, mobile),
		gofakeit.Name(),
		mobile,
		gofakeit.Address().Address,
		"TS-BLK",
		"Black Tee",
		"M",
		2,
		decimal.NewFromInt(450),
		"cod",
		"",
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	var orderCount, historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&orderCount).Error)
	suite.Require().NoError(suite.db.Model(&orderrepo.HistoryDTO{}).Count(&historyCount).Error)
	suite.Equal(int64(1), orderCount)
	suite.Equal(int64(1), historyCount)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateOrderNumber_Fails() {
	ctx := context.Background()
	first := suite.createTestOrder()

	second, err := order.NewOrder(
		kernel.NewUUID(), first.OrderNumber(), "Other Customer", "01700000000",
		"9 Oak Road", "TS-BLK", "Black Tee", "", 1, decimal.NewFromInt(450), "cod", "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err = suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.OrderNumber(), restored.OrderNumber())
	suite.Equal(testOrder.CustomerName(), restored.CustomerName())
	suite.Equal(testOrder.Mobile(), restored.Mobile())
	suite.Equal(testOrder.SKU(), restored.SKU())
	suite.Equal(testOrder.Qty(), restored.Qty())
	suite.True(testOrder.UnitPrice().Equal(restored.UnitPrice()))
	suite.True(testOrder.Total().Equal(restored.Total()))
	suite.Equal(order.Processing, restored.Status())
	suite.False(restored.Read())
	suite.Require().Len(restored.History(), 1)
	suite.Equal(order.Processing, restored.History()[0].Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsTransition() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.TransitionTo(order.Confirmed, "called customer")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, restored.Status())
	suite.True(restored.Read())
	suite.Equal(testOrder.Version()+1, restored.Version())
	suite.Require().Len(restored.History(), 2)
	suite.Equal(order.Confirmed, restored.History()[1].Status())
	suite.Equal("called customer", restored.History()[1].Note())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_HistoryIsAppendOnly() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	_, err := testOrder.TransitionTo(order.Confirmed, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// A second save re-sends the existing entries; none may be duplicated.
	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	_, err = reloaded.TransitionTo(order.Shipped, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, reloaded))

	var historyCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.HistoryDTO{}).Count(&historyCount).Error)
	suite.Equal(int64(3), historyCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ConcurrentUpdate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Two loads of the same order; the second save loses the race.
	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = first.TransitionTo(order.Confirmed, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	_, err = second.TransitionTo(order.Cancelled, "")
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentUpdate)

	restored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, restored.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_MissingOrder_NotFound() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()

	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
