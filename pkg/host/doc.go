// Package host provides Memory, an in-process plugin.Host used by the CLI
// and tests to drive the registered filters the way a content platform would.
package host
