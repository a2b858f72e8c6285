// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The only entity is Task. Field-level failures are reported through the
// typed errors in errors.go so that the API layer can map them to responses
// without inspecting error strings.
package domain
