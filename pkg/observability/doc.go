/*
Package observability turns tile lifecycle events into structured logs and
Prometheus metrics.

Metrics live on a private registry so several tiles (and tests) never collide
with the global default registry.
*/
package observability
