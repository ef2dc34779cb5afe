// Package models defines the externally-sourced entities consumed by the client.
//
// Every entity here is authoritative on the API side; the client only reads,
// displays, and filters them. Two categories exist:
//
// 1. Transient records: discarded when the view that fetched them goes away
//   - [SearchResult] : one query/response cycle of the search endpoint
//   - [Performance] : renditions of a song across shows
//
// 2. Session records: fetched once per page/session and held in memory
//   - [Show] : performance dates, the input to the filter pipeline
//   - [Venue] : filter control options
//   - [Song] : catalog entries
//
// The Decode* helpers validate responses at the boundary (parse, don't
// validate): a malformed record fails the whole decode instead of flowing
// into the UI with a trusted-but-wrong shape.
package models
