package commands_test

import (
	"context"

	"serviceops/internal/core/application/usecases/commands"
	"serviceops/internal/core/domain/model/evidence"
	"serviceops/internal/core/domain/model/kernel"
	"serviceops/internal/core/domain/model/serviceorder"
	"serviceops/internal/core/domain/model/survey"
	"serviceops/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

// Shared testify mocks for the unit of work interfaces the handlers consume.

type MockServiceOrderRepository struct{ mock.Mock }

func (m *MockServiceOrderRepository) Add(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Update(ctx context.Context, aggregate *serviceorder.ServiceOrder) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockServiceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*serviceorder.ServiceOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serviceorder.ServiceOrder), args.Error(1)
}

func (m *MockServiceOrderRepository) NextSequence(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockEvidenceRepository struct{ mock.Mock }

func (m *MockEvidenceRepository) Add(ctx context.Context, record *evidence.Evidence) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockEvidenceRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*evidence.Evidence, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*evidence.Evidence), args.Error(1)
}

type MockSurveyRepository struct{ mock.Mock }

func (m *MockSurveyRepository) GetOrCreate(ctx context.Context, orderID kernel.UUID) (*survey.Survey, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) ListAwaitingCompletion(ctx context.Context) ([]*survey.Survey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) Update(ctx context.Context, record *survey.Survey) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockInventoryService struct{ mock.Mock }

func (m *MockInventoryService) Reserve(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *MockInventoryService) Deduct(ctx context.Context, orderID kernel.UUID) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockEvidenceUoW struct{ mock.Mock }

func (m *MockEvidenceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEvidenceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEvidenceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockEvidenceUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockEvidenceUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

type MockEvidenceUoWFactory struct{ mock.Mock }

func (m *MockEvidenceUoWFactory) Create() commands.EvidenceUoW {
	args := m.Called()
	return args.Get(0).(commands.EvidenceUoW)
}

type MockSurveyUoW struct{ mock.Mock }

func (m *MockSurveyUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSurveyUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSurveyUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSurveyUoW) SurveyRepository() ports.SurveyRepository {
	args := m.Called()
	return args.Get(0).(ports.SurveyRepository)
}

type MockSurveyUoWFactory struct{ mock.Mock }

func (m *MockSurveyUoWFactory) Create() commands.SurveyUoW {
	args := m.Called()
	return args.Get(0).(commands.SurveyUoW)
}

type MockAdvanceUoW struct{ mock.Mock }

func (m *MockAdvanceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAdvanceUoW) ServiceOrderRepository() ports.ServiceOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.ServiceOrderRepository)
}

func (m *MockAdvanceUoW) EvidenceRepository() ports.EvidenceRepository {
	args := m.Called()
	return args.Get(0).(ports.EvidenceRepository)
}

func (m *MockAdvanceUoW) SurveyRepository() ports.SurveyRepository {
	args := m.Called()
	return args.Get(0).(ports.SurveyRepository)
}

func (m *MockAdvanceUoW) InventoryService() ports.InventoryService {
	args := m.Called()
	return args.Get(0).(ports.InventoryService)
}

type MockAdvanceUoWFactory struct{ mock.Mock }

func (m *MockAdvanceUoWFactory) Create() commands.AdvanceUoW {
	args := m.Called()
	return args.Get(0).(commands.AdvanceUoW)
}
