// Package services contains HTTP clients for the HonkingVersion REST API.
//
// Two clients exist:
//
//   - [HonkingService] : the typed [Catalog] implementation the rest of the
//     application consumes. Responses are validated at the boundary via the
//     models package decoders; a malformed payload is an error, never a
//     silently wrong struct.
//   - [APIService] : an untyped passthrough for the `api get`/`api post`
//     commands, returning status, headers, and body as-is.
//
// Both take an explicit base URL and *http.Client. Failure semantics follow
// the client-wide policy: transport errors, non-2xx statuses, and decode
// failures are wrapped with shared sentinel errors and degrade to
// empty-or-stale views upstream; nothing retries automatically.
package services
