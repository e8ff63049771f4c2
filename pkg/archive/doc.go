// Package archive writes the build outputs that sit next to the linked
// fastfile: the client archive, the server-only archive and the metadata
// record.
package archive
