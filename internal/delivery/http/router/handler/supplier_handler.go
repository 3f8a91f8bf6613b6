package handler

import (
	"log/slog"
	"net/http"

	"shopapi/internal/delivery/http/response"
	"shopapi/internal/domain/entity"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupplierHandler holds dependencies for supplier-related handlers.
type SupplierHandler struct {
	uc     usecase.SupplierUsecase
	logger *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler, injected by Fx.
func NewSupplierHandler(uc usecase.SupplierUsecase, logger *slog.Logger) *SupplierHandler {
	return &SupplierHandler{
		uc:     uc,
		logger: logger,
	}
}

type createSupplierRequest struct {
	Name        string          `json:"name" validate:"required"`
	PhoneNumber string          `json:"phone_number" validate:"required,e164"`
	Address     *addressRequest `json:"address" validate:"omitempty"`
}

type updateSupplierRequest struct {
	Name        *string         `json:"name" validate:"omitempty,min=1"`
	PhoneNumber *string         `json:"phone_number" validate:"omitempty,e164"`
	Address     *addressRequest `json:"address" validate:"omitempty"`
}

type supplierResponse struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	PhoneNumber string           `json:"phone_number"`
	Address     *addressResponse `json:"address,omitempty"`
}

// CreateSupplier handles the supplier registration request.
func (h *SupplierHandler) CreateSupplier(c echo.Context) error {
	var req createSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.CreateSupplierInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     toAddressInput(req.Address),
	}

	supplier, err := h.uc.CreateSupplier(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toSupplierResponse(supplier), "Supplier created successfully")
}

// GetSupplier handles the single-supplier read request.
func (h *SupplierHandler) GetSupplier(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	supplier, err := h.uc.GetSupplier(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierResponse(supplier), "")
}

// ListSuppliers handles the paginated supplier listing request.
func (h *SupplierHandler) ListSuppliers(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return errors.WithStack(err)
	}

	suppliers, err := h.uc.ListSuppliers(c.Request().Context(), usecase.ListSuppliersQuery{
		Name:   c.QueryParam("name"),
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*supplierResponse, 0, len(suppliers))
	for _, supplier := range suppliers {
		items = append(items, toSupplierResponse(supplier))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateSupplier handles the partial supplier update request.
func (h *SupplierHandler) UpdateSupplier(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateSupplierRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid supplier input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateSupplierInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Address:     toAddressInput(req.Address),
	}

	supplier, err := h.uc.UpdateSupplier(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSupplierResponse(supplier), "Supplier updated successfully")
}

// DeleteSupplier handles the supplier deletion request.
func (h *SupplierHandler) DeleteSupplier(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteSupplier(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Supplier deleted successfully")
}

func toSupplierResponse(supplier *entity.Supplier) *supplierResponse {
	if supplier == nil {
		return nil
	}

	return &supplierResponse{
		ID:          supplier.ID,
		Name:        supplier.Name,
		PhoneNumber: supplier.PhoneNumber,
		Address:     toAddressResponse(supplier.Address),
	}
}
