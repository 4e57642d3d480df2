/*
Package observability provides tools for monitoring the Turing engine.

It builds on the engine's lifecycle hooks to export run and step activity as
Prometheus metrics without coupling the core loop to any metrics library.
*/
package observability
