package asset

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/asset-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListAssets() ([]ListItem, error)
	CountAssets() (int64, error)
	GetAsset(code string) (*Detail, error)
	CreateOrUpdate(dto CreateAssetDTO) (*CreateAssetResponse, error)
	Assign(dto AssignDTO) (*TransitionResponse, error)
	Return(dto ReturnDTO) (*TransitionResponse, error)
	SendToRepair(dto RepairDTO) (*TransitionResponse, error)
	CompleteRepair(code string) (*TransitionResponse, error)
	MarkMissing(dto MissingDTO) (*TransitionResponse, error)
	RecoverMissing(code string) (*TransitionResponse, error)
	Retire(dto RetireDTO) (*TransitionResponse, error)
	ActiveRepairs() ([]RepairItem, error)
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

func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListAssets()
	if err != nil {
		h.Logger.Error("ListAssets: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) CountAssets(w http.ResponseWriter, r *http.Request) {
	count, err := h.Service.CountAssets()
	if err != nil {
		h.Logger.Error("CountAssets: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, CountResponse{Count: count})
}

func (h *Handler) GetAsset(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	if code == "" {
		h.WriteError(w, http.StatusBadRequest, "asset code is required")
		return
	}

	detail, err := h.Service.GetAsset(code)
	if err != nil {
		h.Logger.Error("GetAsset: service error", "error", err, "asset_code", code)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, detail)
}

func (h *Handler) AddAsset(w http.ResponseWriter, r *http.Request) {
	var dto CreateAssetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddAsset: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.CreateOrUpdate(dto)
	if err != nil {
		h.Logger.Error("AddAsset: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var dto AssignDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Assign: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Assign(dto)
	if err != nil {
		h.Logger.Error("Assign: service error", "error", err, "asset_code", dto.AssetCode, "employee_id", dto.EmployeeID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Return(w http.ResponseWriter, r *http.Request) {
	var dto ReturnDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Return: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Return(dto)
	if err != nil {
		h.Logger.Error("Return: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) SendToRepair(w http.ResponseWriter, r *http.Request) {
	var dto RepairDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("SendToRepair: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.SendToRepair(dto)
	if err != nil {
		h.Logger.Error("SendToRepair: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) CompleteRepair(w http.ResponseWriter, r *http.Request) {
	var dto CodeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CompleteRepair: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.CompleteRepair(dto.AssetCode)
	if err != nil {
		h.Logger.Error("CompleteRepair: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) MarkMissing(w http.ResponseWriter, r *http.Request) {
	var dto MissingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("MarkMissing: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.MarkMissing(dto)
	if err != nil {
		h.Logger.Error("MarkMissing: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) RecoverMissing(w http.ResponseWriter, r *http.Request) {
	var dto CodeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("RecoverMissing: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Service.RecoverMissing(dto.AssetCode)
	if err != nil {
		h.Logger.Error("RecoverMissing: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Retire(w http.ResponseWriter, r *http.Request) {
	var dto RetireDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Retire: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.Retire(dto)
	if err != nil {
		h.Logger.Error("Retire: service error", "error", err, "asset_code", dto.AssetCode)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) RepairList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ActiveRepairs()
	if err != nil {
		h.Logger.Error("RepairList: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, items)
}
