package service

import "context"

// DefaultTenant is the tenant used when none is attached to the context
const DefaultTenant = "carbon.super"

type tenantKey struct{}

// WithTenant returns a copy of ctx carrying tenant
func WithTenant(ctx context.Context, tenant string) context.Context {
	return context.WithValue(ctx, tenantKey{}, tenant)
}

// TenantFromContext returns the tenant carried by ctx, or DefaultTenant
func TenantFromContext(ctx context.Context) string {
	if tenant, ok := ctx.Value(tenantKey{}).(string); ok && tenant != "" {
		return tenant
	}
	return DefaultTenant
}
