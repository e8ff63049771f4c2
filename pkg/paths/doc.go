// Package paths provides centralized path handling for t6modm.
//
// A t6modm project is a directory holding a project.t6modm.json manifest
// and a src tree:
//
//	project.t6modm.json
//	.t6modm.env             (optional, OAT_HOME / GAME_HOME)
//	.t6modm.toml            (optional, tool settings)
//	src/
//	  zone_source/
//	    mod.zone            root zone file
//	    tempzones/          scratch zones written during a build
//	compiled/               default build output
//
// # Project discovery
//
// When no project directory is given, the root is determined by:
//
//  1. T6MODM_PROJECT_DIR environment variable
//  2. the nearest parent directory containing project.t6modm.json
//  3. the current working directory (fallback)
//
// # Placeholders
//
// Manifest paths may contain $HOME (the project root) and $GAME_HOME (the
// game installation directory). Expander substitutes them at use time.
package paths
