// Package service contains the application use cases. It orchestrates the
// domain model and the repositories defined in internal/store without
// depending on any specific infrastructure.
//
// Error handling follows a fixed pattern:
//
//  1. Expected conditions are returned as sentinel errors (ErrTaskNotFound).
//  2. Everything else is wrapped in TaskServiceError, which keeps the
//     original error reachable through errors.Is and errors.As so domain
//     validation and store constraint errors survive to the API layer.
//  3. The API layer maps errors to HTTP status codes.
package service
