// Package internalcheck hosts static policy tests for the module. It has no
// runtime code.
package internalcheck
