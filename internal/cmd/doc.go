// Package cmd provides the command-line interface implementation for setupver.
//
// It uses the Cobra library for command structure; main executes the tree
// through Fang for styled help and errors.
//
// Commands:
//   - read: print the version declared in a setup.py file
//   - write: rewrite the version line of a setup.py file
//   - version: print build information
//
// Defaults for file paths, the target version and logging come from the
// environment (see package config); flags and arguments override them.
// Version line parsing is delegated to package updater, which never touches
// the filesystem. File access, including atomic replacement on write, lives
// here.
package cmd
