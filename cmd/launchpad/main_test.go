package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func captureOutputWithExitCode(t *testing.T, run func() int) (int, string, string) {
	t.Helper()

	oldStdout := os.Stdout
	oldStderr := os.Stderr

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe stdout failed: %v", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe stderr failed: %v", err)
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	code := run()

	_ = stdoutW.Close()
	_ = stderrW.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	stdoutBytes, _ := io.ReadAll(stdoutR)
	stderrBytes, _ := io.ReadAll(stderrR)

	_ = stdoutR.Close()
	_ = stderrR.Close()

	return code, string(stdoutBytes), string(stderrBytes)
}

func setVersionMetadataForTest(t *testing.T, v, commit, built string) {
	t.Helper()

	origVersion := version
	origCommit := gitCommit
	origBuildDate := buildDate

	version = v
	gitCommit = commit
	buildDate = built

	t.Cleanup(func() {
		version = origVersion
		gitCommit = origCommit
		buildDate = origBuildDate
	})
}

func writeConfigFixture(t *testing.T, dir, target string) string {
	t.Helper()
	configPath := filepath.Join(dir, "config.yaml")
	configYAML := `
service:
  log_level: warn
http:
  listen: 127.0.0.1:0
  video_dir: ` + dir + `
event:
  name: Test Summit
  target: "` + target + `"
  timezone: UTC
page:
  variant: gradient
`
	if err := os.WriteFile(configPath, []byte(configYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return configPath
}

func TestRunCLIRootVersionFlag(t *testing.T) {
	setVersionMetadataForTest(t, "1.2.3", "abc1234567890", "2026-02-12T11:30:00Z")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"--version"})
	})
	if code != 0 {
		t.Fatalf("runCLI() code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "launchpad 1.2.3") {
		t.Fatalf("stdout missing semantic version: %s", stdout)
	}
	if !strings.Contains(stdout, "commit: abc123456789") {
		t.Fatalf("stdout missing short commit: %s", stdout)
	}
	if !strings.Contains(stdout, "built_at: 2026-02-12T11:30:00Z") {
		t.Fatalf("stdout missing build time: %s", stdout)
	}
}

func TestRunVersionJSONOutputIncludesMetadata(t *testing.T) {
	setVersionMetadataForTest(t, "2.0.0-rc.1", "aabbccddeeff001122334455", "2026-02-12T11:30:00-05:00")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runVersion([]string{"--json"})
	})
	if code != 0 {
		t.Fatalf("runVersion() code = %d, stderr: %s", code, stderr)
	}

	var out versionInfo
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("failed to parse version JSON: %v\noutput=%s", err, stdout)
	}
	if out.Version != "2.0.0-rc.1" {
		t.Fatalf("version = %q, want %q", out.Version, "2.0.0-rc.1")
	}
	if out.Commit != "aabbccddeeff" {
		t.Fatalf("commit = %q, want %q", out.Commit, "aabbccddeeff")
	}
	if out.BuildTime != "2026-02-12T16:30:00Z" {
		t.Fatalf("build_time = %q, want %q", out.BuildTime, "2026-02-12T16:30:00Z")
	}
}

func TestRunVersionRejectsArgs(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runVersion([]string{"extra"})
	})
	if code != 1 {
		t.Fatalf("runVersion() code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Usage: launchpad version") {
		t.Fatalf("stderr missing usage: %s", stderr)
	}
}

func TestPrintUsageListsCommandsAndVariants(t *testing.T) {
	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"help"})
	})
	if code != 0 {
		t.Fatalf("help code = %d", code)
	}
	for _, want := range []string{"serve", "watch", "config check", "config lock", "cinematic, gradient"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("usage missing %q: %s", want, stdout)
		}
	}
}

func TestRunCLIUnknownCommand(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runCLI([]string{"launch"})
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Unknown command: launch") {
		t.Fatalf("stderr = %s", stderr)
	}
}

func TestRunCLINoArgs(t *testing.T) {
	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runCLI(nil)
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Fatalf("expected usage on stdout: %s", stdout)
	}
}

func TestRunCommandHelp(t *testing.T) {
	cases := map[string][]string{
		"serve":        {"serve", "--help"},
		"watch":        {"watch", "-h"},
		"config check": {"config", "check", "--help"},
		"config lock":  {"config", "lock", "--help"},
	}
	for name, args := range cases {
		code, stdout, stderr := captureOutputWithExitCode(t, func() int {
			return runCLI(args)
		})
		if code != 0 {
			t.Fatalf("%s help code = %d, stderr: %s", name, code, stderr)
		}
		if !strings.Contains(stdout, "Usage: launchpad "+name) {
			t.Fatalf("%s help missing usage: %s", name, stdout)
		}
	}
}

func TestRunConfigNounHelp(t *testing.T) {
	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"help"})
	})
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	if !strings.Contains(stdout, "Actions: check, lock") {
		t.Fatalf("stdout = %s", stdout)
	}

	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"show"})
	})
	if code != 1 || !strings.Contains(stderr, "Unknown config action: show") {
		t.Fatalf("code = %d, stderr = %s", code, stderr)
	}
}

func TestRunConfigCheckValid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "2099-01-01T09:30:00")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigCheck([]string{"--config", configPath})
	})
	if code != 0 {
		t.Fatalf("runConfigCheck() code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Configuration OK") {
		t.Fatalf("stdout missing OK line: %s", stdout)
	}
	if !strings.Contains(stdout, "target:  2099-01-01T09:30:00Z") {
		t.Fatalf("stdout missing resolved target: %s", stdout)
	}
	if strings.Contains(stdout, "WARN") {
		t.Fatalf("unexpected warnings: %s", stdout)
	}
}

func TestRunConfigCheckJSONWarnsWhenExpired(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "2001-01-01T00:00:00")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigCheck([]string{"--config", configPath, "--json"})
	})
	if code != 0 {
		t.Fatalf("runConfigCheck() code = %d, stderr: %s", code, stderr)
	}

	var out checkResult
	if err := json.Unmarshal([]byte(stdout), &out); err != nil {
		t.Fatalf("failed to parse JSON: %v\n%s", err, stdout)
	}
	if !out.Valid || !out.Expired {
		t.Fatalf("valid = %v, expired = %v", out.Valid, out.Expired)
	}
	if out.Event != "Test Summit" || out.Variant != "gradient" {
		t.Fatalf("unexpected result: %+v", out)
	}
	if len(out.Warnings) != 1 || !strings.Contains(out.Warnings[0], "in the past") {
		t.Fatalf("warnings = %v", out.Warnings)
	}
}

func TestRunConfigCheckInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "next tuesday")

	code, stdout, _ := captureOutputWithExitCode(t, func() int {
		return runConfigCheck([]string{"--config", configPath})
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "Configuration INVALID") {
		t.Fatalf("stdout = %s", stdout)
	}
}

func TestCheckConfigUnknownVariantWarns(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "2099-01-01T00:00:00")
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	data = []byte(strings.Replace(string(data), "variant: gradient", "variant: neon", 1))
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatal(err)
	}

	result := checkConfig(configPath, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if !result.Valid {
		t.Fatalf("expected valid, errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], `"neon" is unknown`) {
		t.Fatalf("warnings = %v", result.Warnings)
	}
}

func TestRunConfigLockDryRunVerbose(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "2099-01-01T00:00:00")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigNoun([]string{"lock", "--config", configPath, "-v", "--dry-run"})
	})
	if code != 0 {
		t.Fatalf("lock code = %d, stderr: %s", code, stderr)
	}

	hashPattern := regexp.MustCompile(`HASH config\.yaml: [a-f0-9]{64}`)
	if !hashPattern.MatchString(stdout) {
		t.Fatalf("stdout missing valid hash output: %s", stdout)
	}
	if !strings.Contains(stdout, "DRY-RUN .checksums:") {
		t.Fatalf("stdout missing dry-run line: %s", stdout)
	}
	if !strings.Contains(stdout, "Dry run completed") {
		t.Fatalf("stdout missing dry-run summary: %s", stdout)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, ".checksums")); !os.IsNotExist(err) {
		t.Fatal(".checksums should not be written in dry-run mode")
	}
}

func TestRunConfigLockThenTamperFailsCheck(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfigFixture(t, tmpDir, "2099-01-01T00:00:00")

	code, stdout, stderr := captureOutputWithExitCode(t, func() int {
		return runConfigLock([]string{"--config", configPath, "--verbose"})
	})
	if code != 0 {
		t.Fatalf("lock code = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stdout, "WROTE .checksums:") || !strings.Contains(stdout, "Successfully locked configuration") {
		t.Fatalf("stdout = %s", stdout)
	}

	code, _, _ = captureOutputWithExitCode(t, func() int {
		return runConfigCheck([]string{"--config", configPath})
	})
	if code != 0 {
		t.Fatalf("check after lock code = %d", code)
	}

	f, err := os.OpenFile(configPath, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = f.WriteString("# edited\n")
	_ = f.Close()

	code, stdout, _ = captureOutputWithExitCode(t, func() int {
		return runConfigCheck([]string{"--config", configPath})
	})
	if code != 1 {
		t.Fatalf("check after edit code = %d, want 1", code)
	}
	if !strings.Contains(stdout, "hash mismatch") {
		t.Fatalf("stdout missing hash mismatch: %s", stdout)
	}
}

func TestRunServeConfigLoadFailure(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runServe([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Failed to load config") {
		t.Fatalf("stderr = %s", stderr)
	}
}

func TestRunWatchConfigLoadFailure(t *testing.T) {
	code, _, stderr := captureOutputWithExitCode(t, func() int {
		return runWatch([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	})
	if code != 1 {
		t.Fatalf("code = %d, want 1", code)
	}
	if !strings.Contains(stderr, "Failed to load config") {
		t.Fatalf("stderr = %s", stderr)
	}
}

func TestNormalizeBuildTimeUTC(t *testing.T) {
	if _, ok := normalizeBuildTimeUTC("unknown"); ok {
		t.Fatal("unknown should not normalize")
	}
	if _, ok := normalizeBuildTimeUTC("yesterday"); ok {
		t.Fatal("garbage should not normalize")
	}
	got, ok := normalizeBuildTimeUTC("2026-02-12T11:30:00+10:00")
	if !ok || got != "2026-02-12T01:30:00Z" {
		t.Fatalf("got %q, %v", got, ok)
	}
}
