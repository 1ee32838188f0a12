// Package version reports build information for the setupver binary.
//
// Version, Commit and Date are injected at link time:
//
//	-ldflags "-X github.com/dendrascience/setupver/version.Version=v1.0.0 -X github.com/dendrascience/setupver/version.Commit=abc123"
//
// When they are left at their defaults the module build info recorded by the
// Go toolchain is used instead, so `go install` builds still report a
// meaningful version and VCS revision.
package version
