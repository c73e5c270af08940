package v1

import (
	"net/http"
	"strings"

	"github.com/stacklok/toolhive-endpoint-registry/internal/api/common"
	"github.com/stacklok/toolhive-endpoint-registry/internal/service"
)

// TenantHeader names the tenant a request acts for
const TenantHeader = "X-Tenant-Domain"

// TenantMiddleware attaches the tenant from TenantHeader, or defaultTenant
// when the header is absent, to the request context
func TenantMiddleware(defaultTenant string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tenant := strings.TrimSpace(r.Header.Get(TenantHeader))
			if strings.ContainsAny(tenant, " \t\r\n") {
				common.WriteErrorResponse(w, TenantHeader+" cannot contain whitespace", http.StatusBadRequest)
				return
			}
			if tenant == "" {
				tenant = defaultTenant
			}
			next.ServeHTTP(w, r.WithContext(service.WithTenant(r.Context(), tenant)))
		})
	}
}
