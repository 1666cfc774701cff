package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "serviceops/internal/adapters/out/postgres"
	"serviceops/internal/adapters/out/postgres/evidencerepo"
	"serviceops/internal/adapters/out/postgres/inventory"
	"serviceops/internal/adapters/out/postgres/serviceorderrepo"
	"serviceops/internal/adapters/out/postgres/surveyrepo"
	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
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

// SetupSuite initializes the PostgreSQL container and database connection,
// then runs migrations to prepare the schema.
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&serviceorderrepo.ServiceOrderDTO{},
		&evidencerepo.EvidenceDTO{},
		&surveyrepo.SurveyDTO{},
		&inventory.PartDTO{},
		&inventory.OrderPartDTO{},
	)
	suite.Require().NoError(err)
	suite.Require().NoError(db.Exec("CREATE SEQUENCE IF NOT EXISTS service_order_sequence START 1").Error)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE service_orders, evidence, surveys, inventory_parts, order_parts").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory creates isolated unit of
// work instances that expose all repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ServiceOrderRepository())
	suite.NotNil(uow1.EvidenceRepository())
	suite.NotNil(uow1.SurveyRepository())
	suite.NotNil(uow1.InventoryService())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
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

// TestUnitOfWork_TransactionErrors verifies error handling for invalid
// transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_TransitionWithSideEffects walks an order into
// service_in_progress with the inventory reservation in the same transaction,
// the way the advance command does it.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransitionWithSideEffects() {
	ctx := context.Background()

	// Seed a part and an order with one part line outside any transaction.
	partID := kernel.NewUUID().Bytes()
	suite.Require().NoError(suite.db.Create(&inventory.PartDTO{
		ID: partID, SKU: "RET-300", Name: "Retarder 300kW", Stock: 4, Reserved: 0,
	}).Error)

	testOrder := createTestOrder(suite.T(), serviceorder.TechnicianInContact)
	setupUow := suite.factory.Create()
	suite.Require().NoError(setupUow.ServiceOrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(suite.db.Create(&inventory.OrderPartDTO{
		ID: kernel.NewUUID().Bytes(), OrderID: testOrder.ID().Bytes(),
		PartID: partID, Quantity: 2, State: "pending",
	}).Error)

	// Reserve and advance in one transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.ServiceOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.InventoryService().Reserve(ctx, loaded.ID()))
	suite.Require().NoError(loaded.AdvanceTo(serviceorder.ServiceInProgress))
	suite.Require().NoError(uow.ServiceOrderRepository().Update(ctx, loaded))
	suite.Require().NoError(uow.Commit(ctx))

	// Both the status and the reservation are visible after commit.
	verifyUow := suite.factory.Create()
	reloaded, err := verifyUow.ServiceOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(serviceorder.ServiceInProgress, reloaded.Status())

	var part inventory.PartDTO
	suite.Require().NoError(suite.db.First(&part, "id = ?", partID).Error)
	suite.Equal(2, part.Reserved)
	suite.Equal(4, part.Stock)

	// Reserving again is a no-op: the line is no longer pending.
	suite.Require().NoError(verifyUow.InventoryService().Reserve(ctx, testOrder.ID()))
	suite.Require().NoError(suite.db.First(&part, "id = ?", partID).Error)
	suite.Equal(2, part.Reserved)

	// Deduct converts the reservation into a stock deduction, idempotently.
	suite.Require().NoError(verifyUow.InventoryService().Deduct(ctx, testOrder.ID()))
	suite.Require().NoError(verifyUow.InventoryService().Deduct(ctx, testOrder.ID()))
	suite.Require().NoError(suite.db.First(&part, "id = ?", partID).Error)
	suite.Equal(2, part.Stock)
	suite.Equal(0, part.Reserved)
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes
// across repositories and the inventory adapter.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T(), serviceorder.RequestReceived)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ServiceOrderRepository().Add(ctx, testOrder))

	record, err := evidence.NewEvidence(
		kernel.NewUUID(), testOrder.ID(), evidence.PhotoBefore, "before.jpg", time.Now().UTC(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(uow.EvidenceRepository().Add(ctx, record))

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ServiceOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	records, err := newUow.EvidenceRepository().ListByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Empty(records, "Evidence should not exist after rollback")
}

// TestUnitOfWork_SurveyIdempotency verifies GetOrCreate converges on a single
// survey row per order.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SurveyIdempotency() {
	ctx := context.Background()
	uow := suite.factory.Create()

	orderID := kernel.NewUUID()

	first, err := uow.SurveyRepository().GetOrCreate(ctx, orderID)
	suite.Require().NoError(err)

	second, err := uow.SurveyRepository().GetOrCreate(ctx, orderID)
	suite.Require().NoError(err)

	suite.True(first.ID().IsEqual(second.ID()), "Repeated dispatch should return the same survey")

	pending, err := uow.SurveyRepository().ListAwaitingCompletion(ctx)
	suite.Require().NoError(err)
	suite.Len(pending, 1)
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained from
// different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := createTestOrder(suite.T(), serviceorder.RequestReceived)
	order2 := createTestOrder(suite.T(), serviceorder.RequestReceived)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.ServiceOrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.ServiceOrderRepository().Add(ctx, order2))

	_, err := uow1.ServiceOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "UOW1 should see order1")

	_, err = uow1.ServiceOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "UOW1 should not see order2")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.ServiceOrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Order1 should persist after commit")

	_, err = newUow.ServiceOrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Order2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work without
// explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder(suite.T(), serviceorder.RequestReceived)

	err := uow.ServiceOrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrievedOrder, err := uow.ServiceOrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrievedOrder.ID())
}

var testSequence int64 = 5000

// createTestOrder creates a valid order restored at the given status.
func createTestOrder(t *testing.T, status serviceorder.Status) *serviceorder.ServiceOrder {
	t.Helper()
	testSequence++
	number, err := kernel.NewOrderNumber(testSequence)
	if err != nil {
		t.Fatal(err)
	}

	technician, physicalOrderNumber := "", ""
	if status.Phase() != serviceorder.PhaseCommercial {
		technician, physicalOrderNumber = "Laura Vega", "F-1204"
	}

	testOrder, err := serviceorder.RestoreServiceOrder(
		kernel.NewUUID(), number, "Autobuses Rivera", "sale", "normal", "Two retarders",
		technician, physicalOrderNumber, nil, status, 0,
	)
	if err != nil {
		t.Fatal(err)
	}
	return testOrder
}
