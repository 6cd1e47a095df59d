package category

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/asset-tracker/internal/transport"
)

type ServiceAPI interface {
	GetActiveCategories() ([]CategoryResponse, error)
	AddCategory(dto AddCategoryDTO) (*AddCategoryResponse, error)
	CheckDuplicate(dto CheckDuplicateDTO) (*MatchResult, error)
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

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetActiveCategories()
	if err != nil {
		h.Logger.Error("GetCategories: failed to get categories", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}

func (h *Handler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var dto AddCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("AddCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.Service.AddCategory(dto)
	if err != nil {
		h.Logger.Error("AddCategory: service error", "error", err, "name", dto.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, resp)
}

func (h *Handler) CheckDuplicate(w http.ResponseWriter, r *http.Request) {
	var dto CheckDuplicateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CheckDuplicate: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.CheckDuplicate(dto)
	if err != nil {
		h.Logger.Error("CheckDuplicate: service error", "error", err, "name", dto.Name)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}
