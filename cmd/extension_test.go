package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extension script requires a POSIX shell")
	}
	setup(t)
	Global.Currency = "XYZ"
	Global.Verbose = true

	// nw-hello prints its arguments and the configuration it receives.
	dir := t.TempDir()
	script := `#!/bin/sh
echo "args=$*"
echo "` + EnvAssetsFile + `=$` + EnvAssetsFile + `"
echo "` + EnvCurrency + `=$` + EnvCurrency + `"
echo "` + EnvStyle + `=$` + EnvStyle + `"
echo "` + EnvVerbose + `=$` + EnvVerbose + `"
exit 3
`
	if err := os.WriteFile(filepath.Join(dir, "nw-hello"), []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write nw-hello: %v", err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	var stdout, stderr bytes.Buffer
	found, code := runExtension("hello", []string{"a", "b"}, nil, &stdout, &stderr)
	if !found {
		t.Fatal("extension nw-hello not found")
	}
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}

	output := stdout.String()
	for _, want := range []string{
		"args=a b",
		EnvAssetsFile + "=" + Global.AssetsFile,
		EnvCurrency + "=XYZ",
		EnvStyle + "=raw",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, but got:\n%s", want, output)
		}
	}
}

func TestExtensionNotFound(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	if found, code := RunExtension("does-not-exist", nil); found || code != 0 {
		t.Errorf("RunExtension() = %v, %d, want false, 0", found, code)
	}
}
