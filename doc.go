// Package main provides the setupver command-line interface.
//
// setupver reads and rewrites the version line of setup.py files, the
// "    version='x.y.z'," keyword argument of a setup() call. It is meant to be
// called from release automation: `setupver read` prints the current version
// and `setupver write 1.2.3` bumps it in place.
//
// The parsing itself lives in package updater and can be imported directly by
// Go release tooling.
package main
