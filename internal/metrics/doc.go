// Package metrics provides observability hooks for image generation runs.
//
// # Design
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so no call site needs a nil check:
//
//	driver := generate.NewDriver(renderer, generate.WithRecorder(metrics.NoopRecorder{}))
//
// # Activation
//
// sitegen has no server, so Prometheus metrics are not scraped. When
// --metrics-file is set, the CLI builds a PrometheusRecorder on a private
// registry and, after the command finishes, writes the registry in text
// exposition format with WriteTextfile. Point node_exporter's textfile
// collector at the file to pick the numbers up.
package metrics
