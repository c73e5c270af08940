package v1

import (
	"net/http"
	"strings"

	"github.com/stacklok/toolhive-endpoint-registry/internal/api/common"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// EntryVersionsResponse lists the versions of an entry, newest first
type EntryVersionsResponse struct {
	Versions []*service.EntryVersion `json:"versions"`
	Count    int                     `json:"count"`
}

// createEntry handles POST /v1/registries/{registryId}/entries
func (routes *Routes) createEntry(w http.ResponseWriter, r *http.Request) {
	registryID, err := common.GetAndValidateURLParam(r, "registryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	meta, src, err := routes.parseEntryRequest(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	entry, err := routes.service.CreateEntry(r.Context(), registryID, meta, src)
	if err != nil {
		audit(r, "entry.create", err, "registry_id", registryID, "entry_name", meta.Name, "version", meta.Version)
		common.WriteServiceError(w, r, err)
		return
	}

	audit(r, "entry.create", nil,
		"registry_id", registryID, "entry_id", entry.ID, "entry_name", entry.Name, "version", entry.Version)
	w.Header().Set("Location", entryLocation(registryID, entry.ID))
	common.WriteJSONResponse(w, entry, http.StatusCreated)
}

// getEntry handles GET /v1/registries/{registryId}/entries/{entryId}
func (routes *Routes) getEntry(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	entry, err := routes.service.GetEntry(r.Context(), registryID, entryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, entry, http.StatusOK)
}

// updateEntry handles PUT /v1/registries/{registryId}/entries/{entryId}
func (routes *Routes) updateEntry(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	meta, src, err := routes.parseEntryRequest(w, r)
	if err != nil {
		writeRequestError(w, err)
		return
	}

	entry, err := routes.service.UpdateEntry(r.Context(), registryID, entryID, meta, src)
	audit(r, "entry.update", err, "registry_id", registryID, "entry_id", entryID, "version", meta.Version)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	common.WriteJSONResponse(w, entry, http.StatusOK)
}

// deleteEntry handles DELETE /v1/registries/{registryId}/entries/{entryId}
func (routes *Routes) deleteEntry(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	err := routes.service.DeleteEntry(r.Context(), registryID, entryID)
	audit(r, "entry.delete", err, "registry_id", registryID, "entry_id", entryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// createEntryVersion handles POST /v1/registries/{registryId}/entries/{entryId}/new-version?version=X
func (routes *Routes) createEntryVersion(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	version := strings.TrimSpace(r.URL.Query().Get("version"))
	if version == "" {
		common.WriteErrorResponse(w, "version query parameter is required", http.StatusBadRequest)
		return
	}

	entry, err := routes.service.CreateEntryVersion(r.Context(), registryID, entryID, version)
	if err != nil {
		audit(r, "entry.new_version", err, "registry_id", registryID, "source_entry_id", entryID, "version", version)
		common.WriteServiceError(w, r, err)
		return
	}

	audit(r, "entry.new_version", nil,
		"registry_id", registryID, "source_entry_id", entryID, "entry_id", entry.ID, "version", entry.Version)
	w.Header().Set("Location", entryLocation(registryID, entry.ID))
	common.WriteJSONResponse(w, entry, http.StatusCreated)
}

// getDefinitionFile handles GET /v1/registries/{registryId}/entries/{entryId}/definition-file
func (routes *Routes) getDefinitionFile(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	def, err := routes.service.GetDefinition(r.Context(), registryID, entryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	contentType := string(def.MediaType)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(def.Content)
}

// listEntryVersions handles GET /v1/registries/{registryId}/entries/{entryId}/versions
func (routes *Routes) listEntryVersions(w http.ResponseWriter, r *http.Request) {
	registryID, entryID, ok := entryParams(w, r)
	if !ok {
		return
	}

	entry, err := routes.service.GetEntry(r.Context(), registryID, entryID)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}

	versions, err := routes.service.ListEntryVersions(r.Context(), registryID, entry.Name)
	if err != nil {
		common.WriteServiceError(w, r, err)
		return
	}
	if versions == nil {
		versions = []*service.EntryVersion{}
	}

	common.WriteJSONResponse(w, EntryVersionsResponse{Versions: versions, Count: len(versions)}, http.StatusOK)
}

func entryParams(w http.ResponseWriter, r *http.Request) (registryID, entryID string, ok bool) {
	registryID, err := common.GetAndValidateURLParam(r, "registryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	entryID, err = common.GetAndValidateURLParam(r, "entryId")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return "", "", false
	}
	return registryID, entryID, true
}

func writeRequestError(w http.ResponseWriter, err error) {
	if isBodyTooLarge(err) {
		common.WriteErrorResponse(w, "request body too large", http.StatusRequestEntityTooLarge)
		return
	}
	common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
}
