package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tenaxis/tenaxis-api/internal/application/dto"
	"github.com/tenaxis/tenaxis-api/internal/application/orders"
	"github.com/tenaxis/tenaxis-api/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de órdenes de servicio, incluida la
// creación con asignación automática de técnico.
type OrderHandler struct {
	createUC *orders.CreateOrderUseCase
	manageUC *orders.ManageOrderUseCase
	pdfUC    *orders.OrderPDFUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(createUC *orders.CreateOrderUseCase, manageUC *orders.ManageOrderUseCase, pdfUC *orders.OrderPDFUseCase) *OrderHandler {
	return &OrderHandler{createUC: createUC, manageUC: manageUC, pdfUC: pdfUC}
}

// Create POST /api/orders
// Sin technician_id en el cuerpo, el motor de asignación intenta elegir uno;
// que no encuentre candidato no es error: la orden se crea sin asignar.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	tenantID, companyID := GetTenantID(c), GetCompanyID(c)
	if tenantID == "" || companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.createUC.Create(c.UserContext(), tenantID, companyID, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client_id y service_type son requeridos"})
		}
		if err == domain.ErrInvalidWindow {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "start_time debe ser anterior a end_time"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// List GET /api/orders?technician_id=&limit=20&offset=0
// Con technician_id lista solo las órdenes de ese técnico.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	var (
		list []*dto.OrderResponse
		err  error
	)
	if techID := c.Query("technician_id"); techID != "" {
		list, err = h.manageUC.ListByTechnician(companyID, techID, limit, offset)
	} else {
		list, err = h.manageUC.ListByCompany(companyID, limit, offset)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// GetByID GET /api/orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	order, err := h.manageUC.GetByID(companyID, c.Params("id"))
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(order)
}

// Update PUT /api/orders/:id
func (h *OrderHandler) Update(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.manageUC.Update(c.UserContext(), companyID, c.Params("id"), in)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(order)
}

// ChangeStatus PATCH /api/orders/:id/status
func (h *OrderHandler) ChangeStatus(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ChangeOrderStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.manageUC.ChangeStatus(c.UserContext(), companyID, c.Params("id"), in.Status)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(order)
}

// PDF GET /api/orders/:id/pdf
func (h *OrderHandler) PDF(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	pdfBytes, err := h.pdfUC.Generate(c.UserContext(), companyID, c.Params("id"))
	if err != nil {
		return h.mapOrderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="orden-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

func (h *OrderHandler) mapOrderError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden no encontrada"})
	case domain.ErrInvalidWindow:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_WINDOW", Message: "start_time debe ser anterior a end_time"})
	case domain.ErrInvalidStatus:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "estado de orden inválido"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
