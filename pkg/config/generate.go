package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const generatedHeader = `# t6modm project configuration.
# Every value below is the built-in default; uncomment a line to change it.
# OAT_HOME and GAME_HOME are usually set in .t6modm.env instead.

`

// GenerateConfigContent renders the defaults as a commented TOML file
func GenerateConfigContent() (string, error) {
	data, err := toml.Marshal(Default())
	if err != nil {
		return "", err
	}
	return generatedHeader + commentOutConfigValues(string(data)), nil
}

// GenerateEnvContent renders a .t6modm.env template
func GenerateEnvContent(linkerHome, gameHome string) string {
	var b strings.Builder
	b.WriteString("# Paths used by t6modm build\n")
	b.WriteString(EnvLinkerHome + "=" + quoteEnv(linkerHome) + "\n")
	b.WriteString(EnvGameHome + "=" + quoteEnv(gameHome) + "\n")
	return b.String()
}

func quoteEnv(v string) string {
	if v == "" {
		return ""
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [linker], [build]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}
