// Package zone resolves zone files, the line-oriented build descriptions
// handed to the linker.
//
// A Parser runs every line of one zone file through an ordered chain of
// passes. The first pass that consumes a line decides what reaches the
// output; a line no pass consumes is copied unchanged. The default chain is:
//
//	comment  lines starting with // are kept as they are
//	header   >game, and >name, lines are commented out
//	script   release builds move owned .gsc scripts to the server archive
//	include  include,<name> is resolved, parsed recursively and replaced by
//	         a reference to a scratch zone holding the resolved text
//	file     file*/serverfile* directives are globbed over the asset search
//	         path and registered in the project
//
// Passes mutate the shared project.Project; parsing is single threaded.
package zone
