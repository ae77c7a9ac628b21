// Package templates holds the files the installer generates: the helper
// program that turns Mermaid code into an editable mermaid.live link, and the
// SKILL.md definition handed to the agent. Both are embedded as data.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed files/mermaid_to_link.js files/SKILL.md.tmpl
var files embed.FS

var skillTemplate = template.Must(template.New("SKILL.md").
	Option("missingkey=error").
	ParseFS(files, "files/SKILL.md.tmpl"))

// SkillData is the substitution set for SKILL.md.
type SkillData struct {
	// HelperCommand is the shell line the agent runs to build a link,
	// as produced by HelperCommand.
	HelperCommand string
}

// HelperScript returns the helper program body. It is written verbatim.
func HelperScript() []byte {
	data, err := files.ReadFile("files/mermaid_to_link.js")
	if err != nil {
		// The file is embedded at build time.
		panic(fmt.Sprintf("templates: missing embedded helper script: %v", err))
	}
	return data
}

// HelperCommand builds the invocation shown in SKILL.md for the helper at scriptPath.
// Backslashes are doubled so Windows paths survive inside the markdown code span.
func HelperCommand(scriptPath string) string {
	escaped := strings.ReplaceAll(scriptPath, `\`, `\\`)
	return fmt.Sprintf(`node "%s" \"CODIGO_MERMAID\"`, escaped)
}

// RenderSkill renders SKILL.md with data.
func RenderSkill(data SkillData) ([]byte, error) {
	var buf bytes.Buffer
	if err := skillTemplate.ExecuteTemplate(&buf, "SKILL.md.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to render SKILL.md: %w", err)
	}
	return buf.Bytes(), nil
}
