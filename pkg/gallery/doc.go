// Package gallery implements the core of the gallery gateway: a
// conflict-aware upload workflow over a remote object store, a listing
// projection of stored objects, and an append-only sign-in/out audit trail.
//
// The package owns no storage itself. Object content lives in a BlobStore,
// audit events in an AuditLog, and user registration is delegated to an
// IdentityIssuer; all three are injected at construction time so the core
// stays testable with in-memory substitutes.
package gallery
