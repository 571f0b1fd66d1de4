package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

// ChecksumFile is the integrity manifest written next to config.yaml.
const ChecksumFile = ".checksums"

// ErrNoChecksums is returned by LoadChecksums when no manifest exists.
var ErrNoChecksums = errors.New("checksums file not found (run 'launchpad config lock')")

// ChecksumManifest maps file names to BLAKE3 hashes.
type ChecksumManifest struct {
	Version     int               `yaml:"version"`
	GeneratedAt string            `yaml:"generated_at"`
	Hashes      map[string]string `yaml:"hashes"`
}

// LockReport captures checksum generation details for a config directory.
type LockReport struct {
	ConfigDir    string
	File         string
	ChecksumPath string
	Written      bool
	Hash         string
}

// HashBytes returns the hex BLAKE3-256 digest of data.
func HashBytes(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ComputeBlake3Hash computes the BLAKE3 hash of a file.
func ComputeBlake3Hash(filePath string) (string, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return HashBytes(data), nil
}

// Lock hashes the config file at configPath and writes .checksums beside
// it. With dryRun the hash is computed but nothing is written.
func Lock(configPath string, dryRun bool) (*LockReport, error) {
	absPath, err := ResolvePath(configPath)
	if err != nil {
		return nil, err
	}
	configDir := filepath.Dir(absPath)

	hash, err := ComputeBlake3Hash(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to hash %s: %w", absPath, err)
	}

	report := &LockReport{
		ConfigDir:    configDir,
		File:         filepath.Base(absPath),
		ChecksumPath: filepath.Join(configDir, ChecksumFile),
		Hash:         hash,
	}
	if dryRun {
		return report, nil
	}

	manifest := ChecksumManifest{
		Version:     1,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Hashes:      map[string]string{filepath.Base(absPath): hash},
	}
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checksums: %w", err)
	}
	if err := os.WriteFile(report.ChecksumPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write checksums: %w", err)
	}
	report.Written = true
	return report, nil
}

// LoadChecksums reads the .checksums file from a config directory.
func LoadChecksums(configDir string) (*ChecksumManifest, error) {
	data, err := os.ReadFile(filepath.Join(configDir, ChecksumFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoChecksums
		}
		return nil, fmt.Errorf("failed to read checksums: %w", err)
	}

	var manifest ChecksumManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse checksums: %w", err)
	}
	if manifest.Version != 1 {
		return nil, fmt.Errorf("unsupported checksums version: %d", manifest.Version)
	}
	return &manifest, nil
}

// verifyChecksum checks absPath against its directory's manifest. A missing
// manifest is accepted; a manifest that does not list the file is not.
func verifyChecksum(absPath string) error {
	manifest, err := LoadChecksums(filepath.Dir(absPath))
	if errors.Is(err, ErrNoChecksums) {
		return nil
	}
	if err != nil {
		return err
	}

	name := filepath.Base(absPath)
	expected, ok := manifest.Hashes[name]
	if !ok {
		return fmt.Errorf("%s has no hash in %s (run 'launchpad config lock')", name, ChecksumFile)
	}
	actual, err := ComputeBlake3Hash(absPath)
	if err != nil {
		return fmt.Errorf("failed to compute hash: %w", err)
	}
	if actual != expected {
		return fmt.Errorf("hash mismatch for %s: expected %s, got %s\n"+
			"If you edited this file intentionally, run: launchpad config lock", name, expected, actual)
	}
	return nil
}
