package commands

// LifecyclePolicy configures the optional preconditions of the package
// lifecycle. The historical behavior enforces neither check: any package can
// be force-released (admin correction) and any package can be permanently
// deleted. Deployments that want the stricter rules enable them here instead
// of the engine guessing intent.
type LifecyclePolicy struct {
	// EnforceReleasePrecondition restricts release to packages in the
	// Arrived or ReleaseRequested status.
	EnforceReleasePrecondition bool

	// RequireArchiveBeforePurge restricts permanent deletion to packages
	// that are already archived.
	RequireArchiveBeforePurge bool
}

// DefaultLifecyclePolicy matches the historical loose behavior.
func DefaultLifecyclePolicy() LifecyclePolicy {
	return LifecyclePolicy{}
}
