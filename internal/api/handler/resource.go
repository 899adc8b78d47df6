package handler

import (
	"encoding/json"
	"net/http"

	"github.com/drydock-dev/drydock/internal/api/apierr"
	"github.com/drydock-dev/drydock/internal/api/request"
	"github.com/drydock-dev/drydock/internal/api/response"
	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/services/registry"
)

// ResourceHandler handles the four resource registries. The kind is bound
// per-route at router construction time.
type ResourceHandler struct {
	registry *registry.Service
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(registry *registry.Service) *ResourceHandler {
	return &ResourceHandler{
		registry: registry,
	}
}

// Create returns the POST handler for a kind's registry
func (h *ResourceHandler) Create(kind model.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req request.CreateResourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apierr.WriteError(w, apierr.NewValidationError("name required"))
			return
		}

		if req.Name == "" {
			apierr.WriteError(w, apierr.NewValidationError("name required"))
			return
		}

		res, err := h.registry.Create(r.Context(), kind, req.Name)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}

		response.JSON(w, http.StatusCreated, response.ResourceFromModel(res))
	}
}

// List returns the GET handler for a kind's registry
func (h *ResourceHandler) List(kind model.ResourceKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := h.registry.List(r.Context(), kind)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}

		response.JSON(w, http.StatusOK, response.ResourcesFromModel(resources))
	}
}
