package rotation

import "fmt"

// InvalidRoleError reports a role that is not a member of the configured
// system, e.g. a starting-P1 or manual-swap role from a different system. The
// operation that raised it leaves prior state unmodified.
type InvalidRoleError struct {
	Role   Role
	System SystemID
}

func (e *InvalidRoleError) Error() string {
	return fmt.Sprintf("role %q is not part of system %q", e.Role, e.System)
}

// ConfigurationError reports a broken team configuration: an unknown system
// identifier or a players map missing one of the system's required roles. The
// caller must prompt reconfiguration rather than guess a default.
type ConfigurationError struct {
	System SystemID
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid rotation configuration for system %q: %s", e.System, e.Reason)
}
