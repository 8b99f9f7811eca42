// Package server wires the HTTP surface: the analyze endpoint, the API
// banner, health probes, metrics and version endpoints.
package server
