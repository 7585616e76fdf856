// Package middleware holds the Echo middleware shared by every route:
// request IDs, the request-scoped logger, New Relic tracing, rate
// limiting, the per-request database session and the error funnel.
package middleware
