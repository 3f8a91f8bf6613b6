package handler

import (
	"log/slog"
	"net/http"
	"time"

	"shopapi/internal/delivery/http/response"
	"shopapi/internal/domain/entity"
	"shopapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ClientHandler holds dependencies for client-related handlers.
type ClientHandler struct {
	uc     usecase.ClientUsecase
	logger *slog.Logger
}

// NewClientHandler is the constructor for ClientHandler, injected by Fx.
func NewClientHandler(uc usecase.ClientUsecase, logger *slog.Logger) *ClientHandler {
	return &ClientHandler{
		uc:     uc,
		logger: logger,
	}
}

type addressRequest struct {
	Country string `json:"country" validate:"required"`
	City    string `json:"city" validate:"required"`
	Street  string `json:"street" validate:"required"`
}

type createClientRequest struct {
	Name     string          `json:"client_name" validate:"required"`
	Surname  string          `json:"client_surname" validate:"required"`
	Birthday string          `json:"birthday" validate:"required,datetime=2006-01-02"`
	Gender   string          `json:"gender" validate:"required,oneof=female male other not_given"`
	Address  *addressRequest `json:"address" validate:"omitempty"`
}

type updateClientRequest struct {
	Name     *string         `json:"client_name" validate:"omitempty,min=1"`
	Surname  *string         `json:"client_surname" validate:"omitempty,min=1"`
	Birthday *string         `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Gender   *string         `json:"gender" validate:"omitempty,oneof=female male other not_given"`
	Address  *addressRequest `json:"address" validate:"omitempty"`
}

type addressResponse struct {
	ID      uuid.UUID `json:"id"`
	Country string    `json:"country"`
	City    string    `json:"city"`
	Street  string    `json:"street"`
}

type clientResponse struct {
	ID               uuid.UUID        `json:"id"`
	Name             string           `json:"client_name"`
	Surname          string           `json:"client_surname"`
	Birthday         string           `json:"birthday"`
	Gender           string           `json:"gender"`
	RegistrationDate time.Time        `json:"registration_date"`
	Address          *addressResponse `json:"address,omitempty"`
}

// CreateClient handles the client registration request.
func (h *ClientHandler) CreateClient(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid birthday format")
	}

	input := &usecase.CreateClientInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Birthday: birthday,
		Gender:   entity.Gender(req.Gender),
		Address:  toAddressInput(req.Address),
	}

	client, err := h.uc.CreateClient(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toClientResponse(client), "Client created successfully")
}

// GetClient handles the single-client read request.
func (h *ClientHandler) GetClient(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	client, err := h.uc.GetClient(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client), "")
}

// ListClients handles the paginated client listing request.
func (h *ClientHandler) ListClients(c echo.Context) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return errors.WithStack(err)
	}

	clients, err := h.uc.ListClients(c.Request().Context(), usecase.ListClientsQuery{
		Name:    c.QueryParam("name"),
		Surname: c.QueryParam("surname"),
		Offset:  offset,
		Limit:   limit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	items := make([]*clientResponse, 0, len(clients))
	for _, client := range clients {
		items = append(items, toClientResponse(client))
	}

	return response.Success(c, http.StatusOK, items, "")
}

// UpdateClient handles the partial client update request.
func (h *ClientHandler) UpdateClient(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var req updateClientRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid client input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.UpdateClientInput{
		Name:    req.Name,
		Surname: req.Surname,
		Address: toAddressInput(req.Address),
	}
	if req.Birthday != nil {
		birthday, err := time.Parse(dateLayout, *req.Birthday)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid birthday format")
		}
		input.Birthday = &birthday
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		input.Gender = &gender
	}

	client, err := h.uc.UpdateClient(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toClientResponse(client), "Client updated successfully")
}

// DeleteClient handles the client deletion request.
func (h *ClientHandler) DeleteClient(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteClient(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Client deleted successfully")
}

func toClientResponse(client *entity.Client) *clientResponse {
	if client == nil {
		return nil
	}

	return &clientResponse{
		ID:               client.ID,
		Name:             client.Name,
		Surname:          client.Surname,
		Birthday:         client.Birthday.Format(dateLayout),
		Gender:           client.Gender.String(),
		RegistrationDate: client.RegistrationDate,
		Address:          toAddressResponse(client.Address),
	}
}

func toAddressResponse(address *entity.Address) *addressResponse {
	if address == nil {
		return nil
	}

	return &addressResponse{
		ID:      address.ID,
		Country: address.Country,
		City:    address.City,
		Street:  address.Street,
	}
}

func toAddressInput(req *addressRequest) *usecase.AddressInput {
	if req == nil {
		return nil
	}

	return &usecase.AddressInput{
		Country: req.Country,
		City:    req.City,
		Street:  req.Street,
	}
}
