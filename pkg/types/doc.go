// Package types defines the small value types shared across t6modm:
// the FileEntry pairs collected while resolving a zone file and the
// build Target that selects which directive variants apply.
package types
