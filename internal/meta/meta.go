// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep naming, env prefixes and boilerplate defaults in one place.
package meta

const (
	// Project Identity
	AppName     = "create-ethora-app"
	Slug        = "create-ethora-app"
	EnvPrefix   = "CREATE_ETHORA_APP"
	Description = "Create a new React Native Ethora based app."

	// Config Layout
	ConfigFileName = "config.yaml"

	// Boilerplate
	DefaultRepoURL = "https://github.com/4RGUS/ethoraboilerplate.git"
)
