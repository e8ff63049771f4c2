// Package project holds the in-memory model of a t6modm build target.
//
// A Project is loaded once per build from project.t6modm.json. Its
// identity metadata never changes after loading; the file collections
// (client files, server-only files and filtered scripts) are filled by the
// zone passes while the zone files are resolved.
//
// The asset search path is [home/src, dep1/src, dep2/src, ...]. Earlier
// entries win: a file registered from the project's own src tree can never
// be displaced by a file from a dependency.
package project
