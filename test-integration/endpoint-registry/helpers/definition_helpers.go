package helpers

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
)

// DefinitionServer serves definition documents for URL-referenced entries
type DefinitionServer struct {
	*httptest.Server
	hits atomic.Int32
}

// NewDefinitionServer serves each document at its path. Unknown paths answer 404.
func NewDefinitionServer(documents map[string]string) *DefinitionServer {
	ds := &DefinitionServer{}
	mux := http.NewServeMux()
	for path, body := range documents {
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			ds.hits.Add(1)
			_, _ = w.Write([]byte(body))
		})
	}
	ds.Server = httptest.NewServer(mux)
	return ds
}

// Hits reports how many documents were served
func (ds *DefinitionServer) Hits() int {
	return int(ds.hits.Load())
}
