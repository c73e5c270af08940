package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/stacklok/toolhive-endpoint-registry/internal/definition"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

const (
	// EntryPart is the multipart field holding the entry metadata as JSON
	EntryPart = "registryEntry"
	// DefinitionPart is the multipart field holding the definition file
	DefinitionPart = "definitionFile"

	multipartMemory = 4 << 20
)

// EntryRequest is the JSON metadata of entry create and update requests.
// DefinitionURL is used when no definition file is uploaded.
type EntryRequest struct {
	service.EntryMetadata
	DefinitionURL string `json:"definitionUrl,omitempty"`
}

// parseEntryRequest reads entry metadata and the optional definition from a
// multipart/form-data request, or metadata alone from a JSON request
func (routes *Routes) parseEntryRequest(
	w http.ResponseWriter, r *http.Request,
) (service.EntryMetadata, definition.Source, error) {
	r.Body = http.MaxBytesReader(w, r.Body, routes.maxRequestSize)

	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return service.EntryMetadata{}, definition.Source{}, fmt.Errorf("invalid Content-Type: %v", err)
	}

	var (
		req     EntryRequest
		content []byte
	)
	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req.EntryMetadata, definition.Source{}, fmt.Errorf("invalid %s: %w", EntryPart, err)
		}
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return req.EntryMetadata, definition.Source{}, fmt.Errorf("invalid multipart request: %w", err)
		}
		if err := decodeEntryPart(r.MultipartForm, &req); err != nil {
			return req.EntryMetadata, definition.Source{}, err
		}
		if content, err = readDefinitionPart(r.MultipartForm); err != nil {
			return req.EntryMetadata, definition.Source{}, err
		}
	default:
		return req.EntryMetadata, definition.Source{},
			fmt.Errorf("unsupported Content-Type %q, expected multipart/form-data or application/json", mediaType)
	}

	return req.EntryMetadata, definition.Source{
		Content: content,
		URL:     strings.TrimSpace(req.DefinitionURL),
	}, nil
}

// decodeEntryPart accepts the metadata either as a plain form field or as a file part
func decodeEntryPart(form *multipart.Form, req *EntryRequest) error {
	var raw []byte
	if values := form.Value[EntryPart]; len(values) > 0 {
		raw = []byte(values[0])
	} else if files := form.File[EntryPart]; len(files) > 0 {
		data, err := readFileHeader(files[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %v", EntryPart, err)
		}
		raw = data
	} else {
		return fmt.Errorf("%s part is required", EntryPart)
	}

	if err := json.Unmarshal(raw, req); err != nil {
		return fmt.Errorf("invalid %s: %v", EntryPart, err)
	}
	return nil
}

// readDefinitionPart returns the uploaded definition. A missing part yields
// nil; an empty upload yields an empty, non-nil slice.
func readDefinitionPart(form *multipart.Form) ([]byte, error) {
	files := form.File[DefinitionPart]
	if len(files) == 0 {
		return nil, nil
	}
	data, err := readFileHeader(files[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %v", DefinitionPart, err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

func readFileHeader(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// isBodyTooLarge reports whether err came from the request size limit
func isBodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr) || strings.Contains(err.Error(), "request body too large")
}
