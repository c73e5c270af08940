package v1

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/stacklok/toolhive-endpoint-registry/internal/api/common"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// RegistryRequest is the body of registry create and update requests
type RegistryRequest struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Type        string `json:"type,omitempty"`
}

func (req RegistryRequest) toMetadata() (service.RegistryMetadata, error) {
	meta := service.RegistryMetadata{
		Name:        req.Name,
		DisplayName: req.DisplayName,
	}
	if req.Type != "" {
		t, err := service.ParseRegistryType(req.Type)
		if err != nil {
			return meta, err
		}
		meta.Type = t
	}
	return meta, nil
}

// createRegistry handles POST /v1/registries
func (routes *Routes) createRegistry(w http.ResponseWriter, r *http.Request) {
	meta, err := routes.decodeRegistryRequest(w, r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	registry, err := routes.service.CreateRegistry(r.Context(), meta)
	if err != nil {
		audit(r, "registry.create", err, "registry_name", meta.Name)
		common.WriteServiceError(w, r, err)
		return
	}

	audit(r, "registry.create", nil, "registry_id", registry.ID, "registry_name", registry.Name)
	w.Header().Set("Location", "/v1/registries/"+registry.ID)
	common.WriteJSONResponse(w, registry, http.StatusCreated)
}

// getRegistry handles GET /v1/registries/{registryId}
func (routes *Routes) getRegistry(w http.ResponseWriter, r *http.Request) {
	registryID, err := common.GetAndValidateURLParam(r, "registryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	registry, err := routes.service.GetRegistry(r.Context(), registryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, registry, http.StatusOK)
}

// updateRegistry handles PUT /v1/registries/{registryId}
func (routes *Routes) updateRegistry(w http.ResponseWriter, r *http.Request) {
	registryID, err := common.GetAndValidateURLParam(r, "registryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	meta, err := routes.decodeRegistryRequest(w, r)
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	registry, err := routes.service.UpdateRegistry(r.Context(), registryID, meta)
	audit(r, "registry.update", err, "registry_id", registryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, registry, http.StatusOK)
}

// deleteRegistry handles DELETE /v1/registries/{registryId}
func (routes *Routes) deleteRegistry(w http.ResponseWriter, r *http.Request) {
	registryID, err := common.GetAndValidateURLParam(r, "registryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	err = routes.service.DeleteRegistry(r.Context(), registryID)
	audit(r, "registry.delete", err, "registry_id", registryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (routes *Routes) decodeRegistryRequest(w http.ResponseWriter, r *http.Request) (service.RegistryMetadata, error) {
	var req RegistryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, routes.maxRequestSize)).Decode(&req); err != nil {
		return service.RegistryMetadata{}, fmt.Errorf("invalid request body: %v", err)
	}
	return req.toMetadata()
}
