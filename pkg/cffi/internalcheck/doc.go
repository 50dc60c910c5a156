// Package internalcheck hosts policy tests that inspect the module's own
// source. The checks keep the unsafe reinterpretation of raw addresses
// confined to the core cffi package, where it can be reviewed in one place
// instead of leaking across binding code.
package internalcheck
