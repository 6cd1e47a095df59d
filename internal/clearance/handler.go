package clearance

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/asset-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	Check(employeeID string) (*Result, error)
	Approve(dto ApproveDTO) (*ApproveResponse, error)
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

func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employee_id")
	if employeeID == "" {
		h.WriteError(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	result, err := h.Service.Check(employeeID)
	if err != nil {
		h.Logger.Error("Check: service error", "error", err, "employee_id", employeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	var dto ApproveDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Approve: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Approve(dto)
	if err != nil {
		h.Logger.Error("Approve: service error", "error", err, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}
