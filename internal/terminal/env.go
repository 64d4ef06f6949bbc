package terminal

import (
	"os"
	"strings"
)

// colorTerminals lists TERM values (or prefixes before a '-') known to
// support basic ANSI colors.
var colorTerminals = []string{
	"xterm",
	"screen",
	"tmux",
	"rxvt",
	"vt100",
	"vt220",
	"ansi",
	"linux",
	"cygwin",
	"putty",
}

// ciEnvVars contains common CI environment variables
var ciEnvVars = []string{
	"CI",                     // Generic CI indicator
	"CONTINUOUS_INTEGRATION", // Generic CI indicator
	"GITHUB_ACTIONS",         // GitHub Actions
	"TRAVIS",                 // Travis CI
	"CIRCLECI",               // Circle CI
	"JENKINS_URL",            // Jenkins
	"BUILD_NUMBER",           // Jenkins/TeamCity/etc
	"GITLAB_CI",              // GitLab CI
	"APPVEYOR",               // AppVeyor
	"BUILDKITE",              // Buildkite
	"DRONE",                  // Drone CI
	"TF_BUILD",               // Azure DevOps
}

// termSupportsColor reports whether a TERM value names a color-capable
// terminal. Unknown terminals get no color.
func termSupportsColor(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || value == "dumb" {
		return false
	}

	for _, colorTerm := range colorTerminals {
		if value == colorTerm || strings.HasPrefix(value, colorTerm+"-") {
			return true
		}
	}
	return false
}

// isCIEnvironment checks if the process runs under a CI system.
func isCIEnvironment() bool {
	for _, envVar := range ciEnvVars {
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		// CI=false or CI=0 does not rule out the other markers
		if envVar == "CI" && isFalsy(value) {
			continue
		}
		return true
	}
	return false
}

// isTruthy accepts "1", "true" and "yes", case-insensitively.
func isTruthy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

func isFalsy(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no":
		return true
	default:
		return false
	}
}
