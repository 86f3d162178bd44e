package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/flowgate-net/flowgate/pkg/openflow"
	"github.com/flowgate-net/flowgate/pkg/util"
)

const sampleConfig = `
log:
  level: debug
store:
  redis_addr: 10.0.0.5:6379
  redis_db: 2
switches:
  - id: "00:00:00:00:00:00:00:01"
    connected: true
    protocol_version: 4
    ports:
      - name: eth0
        number: 1
        mac: "00:7e:04:3b:c2:a6"
        features: 0x40
        metadata:
          description: uplink
      - name: eth1
        number: 2
        nni: true
        vlan_pool: "100-199"
        custom_speed: 1250000000
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadFrom(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadFrom error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("Log.Format = %q, want default %q", cfg.Log.Format, "text")
	}
	if cfg.Store.RedisAddr != "10.0.0.5:6379" {
		t.Errorf("Store.RedisAddr = %q, want %q", cfg.Store.RedisAddr, "10.0.0.5:6379")
	}
	if cfg.Store.RedisDB != 2 {
		t.Errorf("Store.RedisDB = %d, want 2", cfg.Store.RedisDB)
	}
	if cfg.Store.KeyPrefix != "flowgate" {
		t.Errorf("Store.KeyPrefix = %q, want default %q", cfg.Store.KeyPrefix, "flowgate")
	}
	if len(cfg.Switches) != 1 {
		t.Fatalf("Switches count = %d, want 1", len(cfg.Switches))
	}

	sw := cfg.Switches[0]
	if sw.ID() != "00:00:00:00:00:00:00:01" {
		t.Errorf("ID() = %q, want dpid", sw.ID())
	}
	if !sw.IsConnected() {
		t.Error("IsConnected() should be true")
	}
	if sw.ProtocolVersion() != openflow.Version13 {
		t.Errorf("ProtocolVersion() = %v, want Version13", sw.ProtocolVersion())
	}
	if len(sw.Ports) != 2 {
		t.Fatalf("Ports count = %d, want 2", len(sw.Ports))
	}
	if sw.Ports[0].Features != uint32(openflow.Feature10GbFD) {
		t.Errorf("Features = %#x, want %#x", sw.Ports[0].Features, uint32(openflow.Feature10GbFD))
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	if _, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadFrom of a missing file should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"empty switch id", func(c *Config) { c.Switches[0].DPID = "" }, true},
		{"bad protocol version", func(c *Config) { c.Switches[0].Version = 3 }, true},
		{"negative port number", func(c *Config) { c.Switches[0].Ports[0].Number = -1 }, true},
		{"duplicate port number", func(c *Config) { c.Switches[0].Ports[1].Number = 1 }, true},
		{"empty port name", func(c *Config) { c.Switches[0].Ports[0].Name = "" }, true},
		{"bad vlan pool", func(c *Config) { c.Switches[0].Ports[0].VLANPool = "9-1" }, true},
		{"duplicate switch", func(c *Config) {
			c.Switches = append(c.Switches, &SwitchSpec{DPID: c.Switches[0].DPID})
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFrom(writeConfig(t, sampleConfig))
			if err != nil {
				t.Fatalf("LoadFrom error = %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, util.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestBuildInterfaces(t *testing.T) {
	cfg, err := LoadFrom(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadFrom error = %v", err)
	}

	interfaces, err := cfg.BuildInterfaces()
	if err != nil {
		t.Fatalf("BuildInterfaces error = %v", err)
	}
	if len(interfaces) != 2 {
		t.Fatalf("interface count = %d, want 2", len(interfaces))
	}

	eth0 := interfaces[0]
	if eth0.ID() != "00:00:00:00:00:00:00:01:1" {
		t.Errorf("eth0 ID = %q, want %q", eth0.ID(), "00:00:00:00:00:00:00:01:1")
	}
	if eth0.Address() != "00:7e:04:3b:c2:a6" {
		t.Errorf("eth0 Address = %q, want mac from config", eth0.Address())
	}
	if eth0.Pool().Size() != 4095 {
		t.Errorf("eth0 pool size = %d, want full 4095", eth0.Pool().Size())
	}
	if speed, ok := eth0.Speed(); !ok || speed != 1.25e9 {
		t.Errorf("eth0 Speed = %v, %v, want 1.25e9 from 10G feature bit", speed, ok)
	}
	if v, _ := eth0.Metadata().Get("description"); v != "uplink" {
		t.Errorf("eth0 metadata description = %v, want uplink", v)
	}

	eth1 := interfaces[1]
	if !eth1.IsNNI() {
		t.Error("eth1 should be NNI")
	}
	if eth1.Pool().Size() != 100 {
		t.Errorf("eth1 pool size = %d, want 100 from vlan_pool range", eth1.Pool().Size())
	}
	if speed, ok := eth1.Speed(); !ok || speed != 1.25e9 {
		t.Errorf("eth1 Speed = %v, %v, want custom 1.25e9", speed, ok)
	}
}
