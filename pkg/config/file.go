package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LocalFileName is the per-directory overlay file.
const LocalFileName = ".soar-local.yml"

// GetConfigPath returns the path to the global config file
func GetConfigPath() (string, error) {
	if envPath := os.Getenv("SOAR_CONFIG"); envPath != "" {
		return envPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", "soar")
	return filepath.Join(configDir, "config.yaml"), nil
}

// GetLocalConfigPath returns the overlay path in the working directory.
func GetLocalConfigPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return filepath.Join(wd, LocalFileName), nil
}

// Load returns the global configuration. With preferLocal, a local overlay
// in the working directory is decoded on top of it: keys present in the
// local file win, keys absent keep their global value.
func Load(preferLocal bool) (*Config, error) {
	globalPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := decodeFile(globalPath, cfg); err != nil {
		return nil, err
	}
	if !preferLocal {
		return cfg, nil
	}

	localPath, err := GetLocalConfigPath()
	if err != nil {
		return nil, err
	}
	if err := decodeFile(localPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadLocal returns only the local overlay, or defaults if it is missing.
func LoadLocal() (*Config, error) {
	localPath, err := GetLocalConfigPath()
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := decodeFile(localPath, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes the config file at path on top of the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := decodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LocalExists reports whether a local overlay exists in the working directory.
func LocalExists() bool {
	path, err := GetLocalConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// GlobalExists reports whether the global config file exists.
func GlobalExists() bool {
	path, err := GetConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// decodeFile decodes path onto cfg. A missing file leaves cfg untouched.
func decodeFile(path string, cfg *Config) error {
	info, statErr := os.Stat(path)
	if os.IsNotExist(statErr) {
		return nil
	}
	if statErr != nil {
		return fmt.Errorf("failed to stat config file %s: %w", path, statErr)
	}

	// Check file permissions - warn if too open
	mode := info.Mode().Perm()
	if mode&0077 != 0 {
		fmt.Fprintf(os.Stderr, "Warning: Config file %s has permissions %o. Consider changing to 0600 since it stores API keys.\n",
			path, mode)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Save writes cfg to the global config file.
func Save(cfg *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return writeFile(path, cfg)
}

// SaveLocal writes cfg to the local overlay in the working directory.
func SaveLocal(cfg *Config) error {
	path, err := GetLocalConfigPath()
	if err != nil {
		return err
	}
	return writeFile(path, cfg)
}

// SetLocal updates a single key in the local overlay. Keys the overlay
// does not already hold are not written, so they keep their global value.
func SetLocal(key, value string) error {
	scratch := Default()
	if err := Set(scratch, key, value); err != nil {
		return err
	}
	typed, err := lookup(scratch, key)
	if err != nil {
		return err
	}

	path, err := GetLocalConfigPath()
	if err != nil {
		return err
	}
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	section, name, _ := strings.Cut(key, ".")
	sub, _ := doc[section].(map[string]any)
	if sub == nil {
		sub = map[string]any{}
	}
	sub[name] = typed
	doc[section] = sub
	if _, ok := doc["version"]; !ok {
		doc["version"] = CurrentVersion
	}

	data, err := marshalYAML(doc)
	if err != nil {
		return err
	}
	return writeBytes(path, data)
}

// lookup returns the YAML value of a dotted key as it would be encoded.
func lookup(cfg *Config, key string) (any, error) {
	data, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	section, name, _ := strings.Cut(key, ".")
	sub, _ := doc[section].(map[string]any)
	if v, ok := sub[name]; ok {
		return v, nil
	}
	return Get(cfg, key)
}

// readDocument decodes path into a generic document. A missing or empty
// file yields an empty one.
func readDocument(path string) (map[string]any, error) {
	doc := map[string]any{}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func writeFile(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return writeBytes(path, data)
}

func writeBytes(path string, data []byte) error {
	// Create config directory if it doesn't exist
	configDir := filepath.Dir(path)
	if mkdirErr := os.MkdirAll(configDir, 0700); mkdirErr != nil {
		return fmt.Errorf("failed to create config directory: %w", mkdirErr)
	}

	// Write with restricted permissions (0600 = rw-------)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Marshal encodes cfg as YAML with two-space indentation.
func Marshal(cfg *Config) ([]byte, error) {
	return marshalYAML(cfg)
}

func marshalYAML(v any) ([]byte, error) {
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return []byte(buf.String()), nil
}
