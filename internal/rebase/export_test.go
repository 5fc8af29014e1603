package rebase

var (
	DisableHooks = disableHooks
	RestoreHooks = restoreHooks
)

const (
	HooksPathKey      = hooksPathKey
	DisabledHooksPath = disabledHooksPath
)
