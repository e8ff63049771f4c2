// Package linker drives the external zone linker and the optional editor
// pause before it.
//
// The linker is a black box: it receives search paths, archives to load, an
// output folder and the name of the resolved root zone. Exit status 0 is
// success; any other status fails the build and becomes t6modm's own exit
// status.
package linker
