package cmd

import (
	"serviceops/internal/adapters/out/postgres"
	"serviceops/internal/core/application/usecases/commands"
	"serviceops/internal/core/application/usecases/queries"
	"serviceops/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateTransitionGuard() services.TransitionGuard {
	return services.NewTransitionGuard(services.GuardPolicy{
		RequirePurchaseOrderDocument: c.config.RequirePurchaseOrderDocument,
	})
}

func (c *CompositionRoot) CreateCreateServiceOrderCommandHandler() commands.CreateServiceOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateServiceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	var f commands.AdvanceUoWFactory = FuncAdvanceUoWFactory(func() commands.AdvanceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderCommandHandler(f, c.CreateTransitionGuard(), c.config.SideEffectTimeout)
}

func (c *CompositionRoot) CreateAssignTechnicianCommandHandler() commands.AssignTechnicianCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignTechnicianCommandHandler(f)
}

func (c *CompositionRoot) CreateSetPhysicalOrderNumberCommandHandler() commands.SetPhysicalOrderNumberCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetPhysicalOrderNumberCommandHandler(f)
}

func (c *CompositionRoot) CreateAddEvidenceCommandHandler() commands.AddEvidenceCommandHandler {
	var f commands.EvidenceUoWFactory = FuncEvidenceUoWFactory(func() commands.EvidenceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddEvidenceCommandHandler(f)
}

func (c *CompositionRoot) CreateSendSurveyRemindersCommandHandler() commands.SendSurveyRemindersCommandHandler {
	var f commands.SurveyUoWFactory = FuncSurveyUoWFactory(func() commands.SurveyUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendSurveyRemindersCommandHandler(f)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncEvidenceUoWFactory func() commands.EvidenceUoW

func (f FuncEvidenceUoWFactory) Create() commands.EvidenceUoW {
	return f()
}

type FuncSurveyUoWFactory func() commands.SurveyUoW

func (f FuncSurveyUoWFactory) Create() commands.SurveyUoW {
	return f()
}

type FuncAdvanceUoWFactory func() commands.AdvanceUoW

func (f FuncAdvanceUoWFactory) Create() commands.AdvanceUoW {
	return f()
}
