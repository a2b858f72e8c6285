// Package api handles incoming HTTP requests, request validation and
// response formatting for the task endpoints. It acts as an adapter between
// HTTP clients and internal/service.
//
// Every failure is routed through HandleAPIError, which chooses the status
// code with MapErrorToStatusCode and the client message with
// GetSafeErrorMessage. Error bodies always have the shape
// {"error": "...", "trace_id": "..."}.
package api
