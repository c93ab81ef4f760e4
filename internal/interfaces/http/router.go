package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tenaxis/tenaxis-api/internal/application/auth"
	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/application/usecase"
	"github.com/tenaxis/tenaxis-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	CompanyUC     *usecase.CompanyUseCase
	ClientUC      *usecase.ClientUseCase
	MembershipUC  *usecase.MembershipUseCase
	ZoneUC        *usecase.ZoneUseCase
	RestrictionUC *usecase.RestrictionUseCase
	ConsignmentUC *usecase.ConsignmentUseCase
	CreateOrder   *orders.CreateOrderUseCase
	ManageOrder   *orders.ManageOrderUseCase
	OrderPDF      *orders.OrderPDFUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Tenant y companies (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/tenant", companyHandler.GetTenant)
	companies := protected.Group("/companies")
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), companyHandler.Update)

	// Clients y direcciones (protegido)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", clientHandler.Update)
	clients.Post("/:id/addresses", clientHandler.AddAddress)
	clients.Get("/:id/addresses", clientHandler.ListAddresses)
	clients.Put("/:id/addresses/:addressID", clientHandler.UpdateAddress)
	clients.Delete("/:id/addresses/:addressID", clientHandler.RemoveAddress)

	// Memberships (protegido; alta y vínculos solo admin/supervisor)
	memberships := protected.Group("/memberships")
	membershipHandler := NewMembershipHandler(deps.MembershipUC)
	memberships.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), membershipHandler.Create)
	memberships.Get("/", membershipHandler.List)
	memberships.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), membershipHandler.Update)
	memberships.Get("/:id/companies", membershipHandler.ListCompanyLinks)
	memberships.Post("/:id/companies", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), membershipHandler.LinkCompany)
	memberships.Delete("/:id/companies/:linkID", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), membershipHandler.UnlinkCompany)

	// Zonas y municipios (protegido)
	zones := protected.Group("/zones")
	zoneHandler := NewZoneHandler(deps.ZoneUC)
	zones.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), zoneHandler.Create)
	zones.Get("/", zoneHandler.List)
	protected.Get("/municipalities", zoneHandler.ListMunicipalities)

	// Pico y placa (protegido; escritura solo admin/supervisor)
	restrictions := protected.Group("/restrictions")
	restrictionHandler := NewRestrictionHandler(deps.RestrictionUC)
	restrictions.Post("/", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), restrictionHandler.Create)
	restrictions.Get("/", restrictionHandler.List)
	restrictions.Put("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), restrictionHandler.Update)
	restrictions.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), restrictionHandler.Delete)

	// Órdenes de servicio (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.CreateOrder, deps.ManageOrder, deps.OrderPDF)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Get("/:id", orderHandler.GetByID)
	ordersGroup.Put("/:id", orderHandler.Update)
	ordersGroup.Patch("/:id/status", orderHandler.ChangeStatus)
	ordersGroup.Get("/:id/pdf", orderHandler.PDF)

	// Consignaciones (protegido; confirmación solo admin/supervisor)
	consignments := protected.Group("/consignments")
	consignmentHandler := NewConsignmentHandler(deps.ConsignmentUC)
	consignments.Post("/", consignmentHandler.Create)
	consignments.Get("/", consignmentHandler.List)
	consignments.Patch("/:id/confirm", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), consignmentHandler.Confirm)
}
