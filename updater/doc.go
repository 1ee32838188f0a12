// Package updater reads and rewrites the version line of a setup.py style file.
//
// A version line is any line that begins with exactly four spaces followed by
// "version=", the layout produced by the keyword argument of a setup() call:
//
//	setup(
//	    name="claims",
//	    version='0.1.11',
//	)
//
// ReadVersion returns the value of the first such line, stripped of quotes,
// commas and whitespace. WriteVersion replaces every such line with
// "    version='<version>',". Neither function touches the filesystem; callers
// own reading and persisting the contents.
//
// The functions are pure and safe for concurrent use.
package updater
