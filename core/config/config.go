// Package config loads named connection profiles from YAML. Profile values
// may reference environment variables with {{ env.NAME }} placeholders,
// resolved at load time so secrets stay out of the file itself.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/sqlbridge/sqlbridge/core/connect"
	"github.com/sqlbridge/sqlbridge/core/shared/errors"
)

// Environment variable pattern: {{ env.VARIABLE_NAME }}
var envVarPattern = regexp.MustCompile(`\{\{\s*env\.(\w+)\s*\}\}`)

// Profile describes one named connection in a profiles file.
type Profile struct {
	Engine    string `yaml:"engine" validate:"required"`
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	DBName    string `yaml:"dbname"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	Path      string `yaml:"path"`
	Timeout   int    `yaml:"timeout_seconds"`
	SSLMode   string `yaml:"sslmode"`
	Server    string `yaml:"server"`
	Trusted   bool   `yaml:"trusted_connection"`
	Service   string `yaml:"service_name"`
	Account   string `yaml:"account"`
	Warehouse string `yaml:"warehouse"`
	Schema    string `yaml:"schema"`
	Role      string `yaml:"role"`
}

// File is a parsed profiles file.
type File struct {
	Profiles map[string]Profile `yaml:"profiles" validate:"required,min=1,dive"`
}

var validate = validator.New()

// Load reads, substitutes, parses, and validates a profiles file.
func Load(path string) (*File, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeConfiguration,
			fmt.Sprintf("failed to read profiles file '%s'", path), err)
	}
	return Parse(string(raw))
}

// Parse parses and validates profiles from YAML source.
func Parse(source string) (*File, error) {
	substituted, err := SubstituteEnvVars(source)
	if err != nil {
		return nil, errors.WrapError(errors.ErrCodeConfiguration, "failed to resolve environment placeholders", err)
	}

	var f File
	if err := yaml.Unmarshal([]byte(substituted), &f); err != nil {
		return nil, errors.WrapError(errors.ErrCodeConfiguration, "failed to parse profiles file", err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, errors.WrapError(errors.ErrCodeConfiguration, "invalid profiles file", err)
	}

	// Reject unknown engines at load time rather than at first use.
	for name, p := range f.Profiles {
		if _, err := connect.ParseEngine(p.Engine); err != nil {
			return nil, errors.WrapError(errors.ErrCodeConfiguration,
				fmt.Sprintf("profile '%s'", name), err)
		}
	}
	return &f, nil
}

// Connector builds an unconnected connector from the profile.
func (p Profile) Connector() (connect.Connector, error) {
	engine, err := connect.ParseEngine(p.Engine)
	if err != nil {
		return nil, err
	}
	return connect.New(engine, connect.Params{
		Host:      p.Host,
		Port:      p.Port,
		DBName:    p.DBName,
		User:      p.User,
		Password:  p.Password,
		Path:      p.Path,
		Timeout:   time.Duration(p.Timeout) * time.Second,
		SSLMode:   p.SSLMode,
		Server:    p.Server,
		Trusted:   p.Trusted,
		Service:   p.Service,
		Account:   p.Account,
		Warehouse: p.Warehouse,
		Schema:    p.Schema,
		Role:      p.Role,
	})
}

// Manager builds a Manager holding an unconnected connector per profile.
func (f *File) Manager() (*connect.Manager, error) {
	mgr := connect.NewManager()
	for name, p := range f.Profiles {
		conn, err := p.Connector()
		if err != nil {
			return nil, errors.WrapError(errors.ErrCodeConfiguration,
				fmt.Sprintf("profile '%s'", name), err)
		}
		mgr.Add(name, conn)
	}
	return mgr, nil
}

// SubstituteEnvVars replaces {{ env.VARIABLE_NAME }} placeholders with
// environment variable values. Referencing an unset variable is an error so
// a missing secret surfaces at load time, not as an auth failure later.
func SubstituteEnvVars(value string) (string, error) {
	result := value
	matches := envVarPattern.FindAllStringSubmatch(value, -1)
	seen := make(map[string]bool)

	for _, match := range matches {
		if len(match) < 2 {
			continue
		}
		envVarName := match[1]
		placeholder := match[0]

		if seen[placeholder] {
			continue
		}
		seen[placeholder] = true

		envValue, exists := os.LookupEnv(envVarName)
		if !exists {
			return "", fmt.Errorf("environment variable '%s' not found", envVarName)
		}

		result = strings.ReplaceAll(result, placeholder, envValue)
	}

	return result, nil
}
