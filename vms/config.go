// File: vms/config.go
package vms

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Command interpreters reachable on the remote host.
const (
	// InterpreterDCL targets the regular OpenVMS command shell.
	InterpreterDCL = "dcl"
	// InterpreterPML targets the PML interpreter on the v5 platform.
	InterpreterPML = "pml"
)

// defaultPMLCommand invokes the PML interpreter from DCL.
const defaultPMLCommand = "MCR PML$EXE:PML"

// Config describes a single OpenVMS host connection.
//
// The remote side is assumed to run SSH.COM's SSH2 server, which behaves
// differently from OpenSSH: public-key and agent authentication are not
// attempted, only password and keyboard-interactive.
//
// No envconfig alt names here: an alt name doubles as an unprefixed
// fallback, which would let ambient variables like $USER leak into the
// connection config. Only GOVMS_* names are honoured.
type Config struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// TempDir is the device/logical used for temporary files (scripts,
	// command output captures). The SFTP server must be able to write there.
	TempDir string `yaml:"temp_dir" split_words:"true"`

	// TerminalWidth, when non-zero, forces SET TERMINAL /WIDTH before each
	// command so wide listings are not wrapped at the default 80 columns.
	TerminalWidth int `yaml:"terminal_width" split_words:"true"`

	// Interpreter selects the remote command interpreter, InterpreterDCL
	// (default) or InterpreterPML.
	Interpreter string `yaml:"interpreter"`

	// PMLCommand is the DCL incantation that starts the PML interpreter.
	PMLCommand string `yaml:"pml_command" split_words:"true"`

	ConnectTimeoutS int `yaml:"connect_timeout_s" split_words:"true"`
	ConnectRetries  int `yaml:"connect_retries" split_words:"true"`
}

// Inventory is the on-disk host inventory: shared defaults plus per-host
// overrides keyed by a short host alias.
type Inventory struct {
	Defaults Config            `yaml:"defaults"`
	Hosts    map[string]Config `yaml:"hosts"`
}

// Default returns the configuration defaults applied underneath any
// inventory file or environment overrides.
func Default() Config {
	return Config{
		Port:            22,
		TempDir:         "TCPIP$SSH_HOME",
		Interpreter:     InterpreterDCL,
		PMLCommand:      defaultPMLCommand,
		ConnectTimeoutS: 10,
		ConnectRetries:  3,
	}
}

// Load reads an inventory from a YAML file, layering it over the package
// defaults. An empty path returns an inventory holding only the defaults.
// GOVMS_* environment variables override the defaults section last.
func Load(path string) (Inventory, error) {
	inv := Inventory{Defaults: Default()}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return inv, err
		}
		if len(data) == 0 {
			return inv, errors.New("inventory file is empty")
		}
		if err := yaml.Unmarshal(data, &inv); err != nil {
			return inv, fmt.Errorf("inventory: %w", err)
		}
	}
	if err := envconfig.Process("govms", &inv.Defaults); err != nil {
		return inv, fmt.Errorf("inventory: environment overrides: %w", err)
	}
	return inv, nil
}

// HostConfig resolves a host entry by alias, merging it over the defaults.
// The alias itself is used as the host address when the entry does not name
// one. An empty alias returns the defaults.
func (inv Inventory) HostConfig(alias string) (Config, error) {
	if alias == "" {
		if inv.Defaults.Host == "" {
			return Config{}, fmt.Errorf("%w: no host selected and no default host", ErrUnknownHost)
		}
		return inv.Defaults, nil
	}
	entry, ok := inv.Hosts[alias]
	if !ok {
		// Allow addressing hosts that are not in the inventory at all.
		entry = Config{Host: alias}
	}
	if entry.Host == "" {
		entry.Host = alias
	}
	return merge(inv.Defaults, entry), nil
}

// All returns the resolved configuration of every inventory host, ordered by
// alias for stable fan-out.
func (inv Inventory) All() []Config {
	aliases := make([]string, 0, len(inv.Hosts))
	for alias := range inv.Hosts {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	configs := make([]Config, 0, len(aliases))
	for _, alias := range aliases {
		cfg, err := inv.HostConfig(alias)
		if err != nil {
			continue
		}
		configs = append(configs, cfg)
	}
	return configs
}

// merge overlays every non-zero field of over onto base.
func merge(base, over Config) Config {
	out := base
	if over.Host != "" {
		out.Host = over.Host
	}
	if over.Port != 0 {
		out.Port = over.Port
	}
	if over.User != "" {
		out.User = over.User
	}
	if over.Password != "" {
		out.Password = over.Password
	}
	if over.TempDir != "" {
		out.TempDir = over.TempDir
	}
	if over.TerminalWidth != 0 {
		out.TerminalWidth = over.TerminalWidth
	}
	if over.Interpreter != "" {
		out.Interpreter = over.Interpreter
	}
	if over.PMLCommand != "" {
		out.PMLCommand = over.PMLCommand
	}
	if over.ConnectTimeoutS != 0 {
		out.ConnectTimeoutS = over.ConnectTimeoutS
	}
	if over.ConnectRetries != 0 {
		out.ConnectRetries = over.ConnectRetries
	}
	return out
}
