// Package generate turns selected posts, static pages and site assets into
// work items and drives them through render, encode and write.
//
// A run is strictly sequential. Each item's failure is captured in its own
// result and logged; later items still run and the run itself never fails
// because an item did. Only cancellation stops a run early, and every item
// not yet attempted is then reported as failed with the context error.
package generate
