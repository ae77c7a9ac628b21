package main

import (
	"skill-setup/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// skill-setup installs the workflow-analyst agent skill into the current project:
//   - Creates .agent/skills/workflow-analyst and its scripts directory
//   - Copies the Excalidraw icon libraries found in the working directory
//   - Installs the helper's npm dependencies and writes the mermaid_to_link.js helper
//   - Renders SKILL.md pointing at the helper's absolute path
//   - Registers the mcp-mermaid server in ~/.gemini/antigravity/mcp_config.json
//
// Missing icon libraries and MCP configuration problems are logged and skipped;
// a failing package manager or a malformed package.json stops the run with a
// non-zero exit status.
func main() {
	cmd.Execute()
}
