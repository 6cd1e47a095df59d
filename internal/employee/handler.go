package employee

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/asset-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetActiveEmployees() ([]EmployeeResponse, error)
	AddEmployee(dto AddEmployeeDTO) (*AddEmployeeResponse, error)
	Deactivate(dto DeactivateDTO) (*DeactivateResponse, error)
	ActiveAssets(employeeID string) (*ActiveAssetsResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.Service.GetActiveEmployees()
	if err != nil {
		h.Logger.Error("GetEmployees: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, employees)
}

func (h *Handler) AddEmployee(w http.ResponseWriter, r *http.Request) {
	var dto AddEmployeeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddEmployee: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.AddEmployee(dto)
	if err != nil {
		h.Logger.Error("AddEmployee: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	var dto DeactivateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Deactivate: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Deactivate(dto)
	if err != nil {
		h.Logger.Error("Deactivate: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) ActiveAssets(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	resp, err := h.Service.ActiveAssets(employeeID)
	if err != nil {
		h.Logger.Error("ActiveAssets: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}
