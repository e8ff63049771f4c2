package types

import "fmt"

// Target is the build flavour selecting which directive variants apply
type Target string

const (
	// TargetDebug keeps every script in the linked archive
	TargetDebug Target = "debug"

	// TargetRelease moves owned scripts to the server-only archive
	TargetRelease Target = "release"
)

// Targets lists every accepted target, in help-text order
var Targets = []Target{TargetDebug, TargetRelease}

// ParseTarget converts a user supplied value into a Target
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetDebug, TargetRelease:
		return Target(s), nil
	case "":
		return TargetDebug, nil
	}
	return "", fmt.Errorf("invalid target %q (expected debug or release)", s)
}

func (t Target) String() string {
	return string(t)
}
