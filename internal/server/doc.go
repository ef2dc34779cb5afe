// Package server provides HTTP routing, middleware, and the same-origin
// catalog proxy.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first),
// following the standard Go pattern. The [BasicRouter] implementation uses
// [http.ServeMux] internally with method filtering.
//
// # Catalog Proxy
//
// [ProxyHandler] exposes /api/shows, /api/search, and /api/venues on a local
// listener, forwarding to the upstream HonkingVersion API. Local web tooling
// talks to these same-origin routes instead of the remote host directly.
// `honk serve` wires the handler, [LoggingMiddleware], and an [http.Server]
// together.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib
// handler interface and adds routes, allowing handlers to register multiple
// routes and encapsulate route definitions within the implementation.
package server
