// Package api exposes the study engine over HTTP: login and token refresh,
// next-card selection, answer recording and progress summaries. Handlers
// translate requests into service calls and map service errors to status
// codes without leaking internal details.
package api
