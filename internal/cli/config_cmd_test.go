package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aidanlsb/when/internal/config"
)

func TestConfigInitCreatesConfigFile(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runCLI(t, nil, "config", "init", "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("config init returned error: %v", err)
	}

	var data struct {
		Path    string `json:"path"`
		Created bool   `json:"created"`
	}
	env := decodeEnvelope(t, out)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if !data.Created || data.Path != cfgPath {
		t.Fatalf("unexpected init result: %+v", data)
	}

	content, err := os.ReadFile(cfgPath)
	if err != nil {
		t.Fatalf("failed to read created config: %v", err)
	}
	if !strings.Contains(string(content), "# when configuration") {
		t.Fatalf("expected default config header in file, got:\n%s", string(content))
	}

	resetCLIState(t)
	out, err = runCLI(t, nil, "config", "init", "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("second config init returned error: %v", err)
	}
	env = decodeEnvelope(t, out)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Created {
		t.Fatal("expected existing config to be left alone")
	}
}

func TestConfigPathPrintsExplicitPath(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "when.toml")

	out, err := runCLI(t, nil, "config", "path", "--config", cfgPath)
	if err != nil {
		t.Fatalf("config path returned error: %v", err)
	}
	if strings.TrimSpace(out) != cfgPath {
		t.Fatalf("output = %q, want %q", out, cfgPath)
	}
}

func TestConfigSetWritesAndReloads(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCLI(t, nil, "config", "set", "resolve.match", "word", "--config", cfgPath); err != nil {
		t.Fatalf("config set returned error: %v", err)
	}
	resetCLIState(t)
	if _, err := runCLI(t, nil, "config", "set", "resolve.timezone", "UTC", "--config", cfgPath); err != nil {
		t.Fatalf("config set returned error: %v", err)
	}

	loaded, err := config.LoadFrom(cfgPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Resolve.Match != "word" || loaded.Resolve.Timezone != "UTC" {
		t.Fatalf("unexpected config after set: %+v", loaded.Resolve)
	}

	// The saved match mode now applies to resolve.
	resetCLIState(t)
	out, err := runCLI(t, nil, "resolve", "wednesdays", "--config", cfgPath)
	if err != nil {
		t.Fatalf("resolve returned error: %v", err)
	}
	if out != "wednesdays\n" {
		t.Fatalf("output = %q, want passthrough under word matching", out)
	}
}

func TestConfigSetRejectsInvalidValue(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, nil, "config", "set", "resolve.match", "fuzzy", "--config", cfgPath, "--json")
	if err == nil {
		t.Fatal("expected error for invalid match mode")
	}
	env := decodeEnvelope(t, out)
	if env.Error == nil || env.Error.Code != ErrInvalidInput {
		t.Fatalf("expected %s, got %s", ErrInvalidInput, out)
	}
	if _, statErr := os.Stat(cfgPath); !os.IsNotExist(statErr) {
		t.Fatalf("config file should not be written on error, stat err = %v", statErr)
	}
}

func TestConfigSetRejectsInvalidLogLevel(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, nil, "config", "set", "log.level", "chatty", "--config", cfgPath, "--json")
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	env := decodeEnvelope(t, out)
	if env.Error == nil || env.Error.Code != ErrInvalidInput || !strings.Contains(env.Error.Message, "chatty") {
		t.Fatalf("expected %s naming the level, got %s", ErrInvalidInput, out)
	}
}

func TestConfigShowJSON(t *testing.T) {
	resetCLIState(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	content := "[resolve]\nmatch = \"word\"\ntimezone = \"UTC\"\n\n[ui]\naccent = \"39\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := runCLI(t, nil, "config", "show", "--config", cfgPath, "--json")
	if err != nil {
		t.Fatalf("config show returned error: %v", err)
	}

	var data map[string]string
	env := decodeEnvelope(t, out)
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data["match"] != "word" || data["timezone"] != "UTC" || data["accent"] != "39" {
		t.Fatalf("unexpected config show data: %v", data)
	}
}
