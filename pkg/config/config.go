// Package config loads the flowgate configuration file: store settings,
// logging preferences and the switch/port inventory used by the sync
// pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/flowgate-net/flowgate/pkg/openflow"
	"github.com/flowgate-net/flowgate/pkg/port"
	"github.com/flowgate-net/flowgate/pkg/util"
)

// Config is the root of the YAML configuration file.
type Config struct {
	Log      LogConfig     `yaml:"log"`
	Store    StoreConfig   `yaml:"store"`
	Switches []*SwitchSpec `yaml:"switches"`
}

// LogConfig controls the global logger.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warning, error
	Format string `yaml:"format"` // text or json
}

// StoreConfig points at the Redis inventory store. When SSHHost is set,
// the store is reached through an SSH tunnel to that host.
type StoreConfig struct {
	RedisAddr string `yaml:"redis_addr"`
	RedisDB   int    `yaml:"redis_db"`
	KeyPrefix string `yaml:"key_prefix"`
	SSHHost   string `yaml:"ssh_host,omitempty"`
	SSHUser   string `yaml:"ssh_user,omitempty"`
}

// SwitchSpec describes one switch in the inventory. It implements
// port.Switch so built interfaces can be bound to it directly.
type SwitchSpec struct {
	DPID      string      `yaml:"id"`
	Connected bool        `yaml:"connected"`
	Version   uint8       `yaml:"protocol_version"` // 1 or 4
	Ports     []*PortSpec `yaml:"ports"`
}

// PortSpec describes one port of a switch.
type PortSpec struct {
	Name        string                 `yaml:"name"`
	Number      int                    `yaml:"number"`
	MAC         string                 `yaml:"mac,omitempty"`
	NNI         bool                   `yaml:"nni,omitempty"`
	Features    uint32                 `yaml:"features,omitempty"`
	State       uint32                 `yaml:"state,omitempty"`
	CustomSpeed *float64               `yaml:"custom_speed,omitempty"`
	VLANPool    string                 `yaml:"vlan_pool,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

// ID returns the switch datapath id.
func (s *SwitchSpec) ID() string {
	return s.DPID
}

// IsConnected reports the configured connectivity flag.
func (s *SwitchSpec) IsConnected() bool {
	return s.Connected
}

// ProtocolVersion returns the configured protocol generation.
func (s *SwitchSpec) ProtocolVersion() openflow.Version {
	return openflow.Version(s.Version)
}

// DefaultPath returns the default configuration file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "flowgate.yaml"
	}
	return filepath.Join(home, ".flowgate", "config.yaml")
}

// Load reads the configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads and validates a configuration file.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Store.RedisAddr == "" {
		c.Store.RedisAddr = "127.0.0.1:6379"
	}
	if c.Store.KeyPrefix == "" {
		c.Store.KeyPrefix = "flowgate"
	}
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log format %q (want text or json)", util.ErrInvalidConfig, c.Log.Format)
	}

	seen := make(map[string]bool)
	for _, sw := range c.Switches {
		if sw.DPID == "" {
			return fmt.Errorf("%w: switch with empty id", util.ErrInvalidConfig)
		}
		if seen[sw.DPID] {
			return fmt.Errorf("%w: duplicate switch id %q", util.ErrInvalidConfig, sw.DPID)
		}
		seen[sw.DPID] = true

		if v := openflow.Version(sw.Version); sw.Version != 0 && v != openflow.Version10 && v != openflow.Version13 {
			return fmt.Errorf("%w: switch %s: protocol_version %d (want 1 or 4)",
				util.ErrInvalidConfig, sw.DPID, sw.Version)
		}

		ports := make(map[int]bool)
		for _, p := range sw.Ports {
			if p.Name == "" {
				return fmt.Errorf("%w: switch %s: port with empty name", util.ErrInvalidConfig, sw.DPID)
			}
			if p.Number < 0 {
				return fmt.Errorf("%w: switch %s: port %s has negative number %d",
					util.ErrInvalidConfig, sw.DPID, p.Name, p.Number)
			}
			if ports[p.Number] {
				return fmt.Errorf("%w: switch %s: duplicate port number %d",
					util.ErrInvalidConfig, sw.DPID, p.Number)
			}
			ports[p.Number] = true

			if p.VLANPool != "" {
				if _, err := util.ExpandRange(p.VLANPool); err != nil {
					return fmt.Errorf("%w: switch %s port %s: vlan_pool: %v",
						util.ErrInvalidConfig, sw.DPID, p.Name, err)
				}
			}
		}
	}
	return nil
}

// BuildInterfaces constructs port.Interface values for every port in
// the inventory, applying configured overrides.
func (c *Config) BuildInterfaces() ([]*port.Interface, error) {
	var interfaces []*port.Interface
	for _, sw := range c.Switches {
		for _, p := range sw.Ports {
			intf := port.NewInterface(p.Name, p.Number, sw)
			intf.SetAddress(p.MAC)
			intf.SetNNI(p.NNI)
			intf.SetFeatures(openflow.PortFeatures(p.Features))
			intf.SetState(openflow.PortState(p.State))
			if p.CustomSpeed != nil {
				intf.SetCustomSpeed(*p.CustomSpeed)
			}
			if p.VLANPool != "" {
				pool, err := port.NewTagPoolFromRange(p.VLANPool)
				if err != nil {
					return nil, fmt.Errorf("switch %s port %s: %w", sw.DPID, p.Name, err)
				}
				intf.SetPool(pool)
			}
			for k, v := range p.Metadata {
				intf.UpdateMetadata(k, v)
			}
			interfaces = append(interfaces, intf)
		}
	}
	return interfaces, nil
}
