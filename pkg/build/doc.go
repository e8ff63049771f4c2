// Package build runs one t6modm build: resolve the root zone and the root
// zones of every dependency, merge them into one linker input, run the
// linker and package the registered files.
//
// Builds are synchronous. The only blocking points are the optional editor
// pause and the linker process.
package build
