// Package filesystem provides filesystem implementations for t6modm.
//
// Both implementations are backed by afero: NewOS operates on the real
// disk and NewMemory keeps everything in memory for tests. Globbing is
// shared and understands doublestar patterns such as "images/**/*.png".
package filesystem
