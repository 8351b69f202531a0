package testutil

import (
	"os"
	"os/exec"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable or skips the test when it is empty.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s is not set, skipping test", key)
	}
	return value
}

// CommandOrSkip resolves an external tool for integration tests. The path in
// envKey wins; otherwise name is looked up in PATH. The test is skipped when
// neither is available.
func CommandOrSkip(t *testing.T, envKey, name string) string {
	t.Helper()
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	path, err := exec.LookPath(name)
	if err != nil {
		t.Skipf("%s is not available (set %s), skipping test", name, envKey)
	}
	return path
}
