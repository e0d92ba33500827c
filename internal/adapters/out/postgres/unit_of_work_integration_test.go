package postgres_test

import (
	"context"
	"testing"

	postgresadapter "printshop/internal/adapters/out/postgres"
	"printshop/internal/adapters/out/postgres/batchrepo"
	"printshop/internal/adapters/out/postgres/orderrepo"
	"printshop/internal/core/domain/model/batch"
	"printshop/internal/core/domain/model/kernel"
	"printshop/internal/core/domain/model/order"
	"printshop/internal/core/ports"
	"printshop/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{}, &batchrepo.BatchDTO{})
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, batches").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.BatchRepository())
	suite.NotNil(uow2.OrderRepository())
	suite.NotNil(uow2.BatchRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitWithoutBegin_Fails() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersistsAcrossRepositories() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder(1)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testBatch := suite.createTestBatch(1)
	suite.Require().NoError(uow.BatchRepository().Add(ctx, testBatch))

	suite.Require().NoError(uow.Commit(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&batchrepo.BatchDTO{}, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))

	testOrder := suite.createTestOrder(2)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	testBatch := suite.createTestBatch(2)
	suite.Require().NoError(uow.BatchRepository().Add(ctx, testBatch))

	suite.Require().NoError(uow.Rollback(ctx))

	suite.assertCount(&orderrepo.OrderDTO{}, 0)
	suite.assertCount(&batchrepo.BatchDTO{}, 0)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBatchRepository_AddAndGet() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testBatch := suite.createTestBatch(3)
	suite.Require().NoError(uow.BatchRepository().Add(ctx, testBatch))

	retrieved, err := uow.BatchRepository().Get(ctx, testBatch.ID())
	suite.Require().NoError(err)
	suite.Equal(testBatch.ID(), retrieved.ID())
	suite.Equal("BATCH-0003", retrieved.Code().String())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBatchRepository_DuplicateCode_ReturnsCodeConflict() {
	ctx := context.Background()
	uow := suite.factory.Create()

	first := suite.createTestBatch(4)
	second := suite.createTestBatch(4)

	suite.Require().NoError(uow.BatchRepository().Add(ctx, first))

	err := uow.BatchRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrCodeConflict)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBatchRepository_NextSequence_Increments() {
	ctx := context.Background()
	uow := suite.factory.Create()

	seq, err := uow.BatchRepository().NextSequence(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(1), seq)

	suite.Require().NoError(uow.BatchRepository().Add(ctx, suite.createTestBatch(seq)))

	seq, err = uow.BatchRepository().NextSequence(ctx)
	suite.Require().NoError(err)
	suite.Equal(int64(2), seq)
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(seq int64) *order.Order {
	code, err := order.NewCode(seq)
	suite.Require().NoError(err)

	customer, err := order.NewCustomer("Amina", "0661234567", "12 Rue des Fleurs", "Casablanca")
	suite.Require().NoError(err)

	fee, err := kernel.NewMoney(500)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.NewUUID(), code, "NorthPrint", "retail", customer, fee)
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(1500)
	suite.Require().NoError(err)
	_, err = testOrder.AddItem(kernel.NewUUID(), "Front print", "XL", 2, price)
	suite.Require().NoError(err)

	return testOrder
}

func (suite *UnitOfWorkIntegrationTestSuite) createTestBatch(seq int64) *batch.Batch {
	code, err := batch.NewCode(seq)
	suite.Require().NoError(err)

	testBatch, err := batch.NewBatch(kernel.NewUUID(), code, "")
	suite.Require().NoError(err)

	return testBatch
}

func (suite *UnitOfWorkIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	err := suite.db.Model(model).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(expected, count)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
