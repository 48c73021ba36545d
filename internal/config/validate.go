package config

import (
	"fmt"
	"net/netip"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.AccessLog.validate(); err != nil {
		return fmt.Errorf("accesslog: %w", err)
	}

	return nil
}

func (a *AccessLogConfig) validate() error {
	addr, err := netip.ParseAddr(a.DefaultRemoteOriginRaw)
	if err != nil {
		return fmt.Errorf("default_remote_origin: %w", err)
	}
	a.DefaultRemoteOrigin = addr

	if a.Retention < 0 {
		return fmt.Errorf("retention must be >= 0 (got %v)", a.Retention)
	}

	return nil
}
