// Package gitutil provides utilities for interacting with git repositories.
package gitutil

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotSet is returned by ConfigValue when git has no value for the key.
var ErrNotSet = errors.New("git config value not set")

// IsGitRepo checks if the given path is inside a git repository.
func IsGitRepo(root string) bool {
	cmd := exec.Command("git", "-C", root, "rev-parse", "--git-dir")
	err := cmd.Run()
	return err == nil
}

// GetRepoRoot returns the root directory of the git repository.
func GetRepoRoot(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	cmd := exec.Command("git", "-C", absPath, "rev-parse", "--show-toplevel")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(out)), nil
}

// IsDirtyWorkingTree checks if there are uncommitted changes.
func IsDirtyWorkingTree(root string) bool {
	cmd := exec.Command("git", "-C", root, "status", "--porcelain")
	out, err := cmd.Output()
	if err != nil {
		return false
	}
	return strings.TrimSpace(string(out)) != ""
}

// ConfigValue returns the value of a git config key as seen from dir,
// which includes the user's global configuration.
func ConfigValue(dir, key string) (string, error) {
	cmd := exec.Command("git", "-C", dir, "config", "--get", key)
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		// git exits 1 when the key is unset.
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			return "", ErrNotSet
		}
		return "", err
	}
	v := strings.TrimSpace(string(out))
	if v == "" {
		return "", ErrNotSet
	}
	return v, nil
}
