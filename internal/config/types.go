package config

// Manifest describes what the installer lays down and where.
// Every field has a built-in default (see DefaultManifest); a YAML manifest
// only needs to name the fields it overrides.
// - SkillName: directory name under .agent/skills and the skill identifier.
// - Assets: static files copied from the working directory into the skill directory.
// - AssetBundles: archives in the working directory extracted into the skill directory.
// - Dependencies: packages installed into the scripts directory.
// - PackageManager: executable used to install Dependencies (e.g., npm).
// - ServerName: key registered under mcpServers in the host configuration.
// - MCPConfig: host configuration path, relative to the home directory unless absolute.
type Manifest struct {
	SkillName      string   `yaml:"skill_name"`
	Assets         []string `yaml:"assets"`
	AssetBundles   []string `yaml:"asset_bundles"`
	Dependencies   []string `yaml:"dependencies"`
	PackageManager string   `yaml:"package_manager"`
	ServerName     string   `yaml:"server_name"`
	MCPConfig      string   `yaml:"mcp_config"`
}

// Paths holds every absolute location a run touches.
// It is derived once from a Manifest plus the working and home directories.
type Paths struct {
	WorkDir      string // Source directory for assets and bundles
	SkillDir     string // <workdir>/.agent/skills/<skill>
	ScriptsDir   string // <skilldir>/scripts
	PackageJSON  string // <scriptsdir>/package.json
	HelperScript string // <scriptsdir>/mermaid_to_link.js
	SkillFile    string // <skilldir>/SKILL.md
	MCPConfig    string // Host MCP configuration file
	Receipt      string // <skilldir>/.install.json
}
