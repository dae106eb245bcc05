package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScanConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "imprint.yaml")
	content := `storage:
  backend: memory
logging:
  level: error
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunScan(t *testing.T) {
	origCfgFile := cfgFile
	cfgFile = writeScanConfig(t)
	defer func() { cfgFile = origCfgFile }()

	root := t.TempDir()
	files := map[string][]byte{
		"a.json": []byte(`{"a": 1}`),
		"b.txt":  []byte("hello world"),
		"c.bin":  {0x00, 0xFF, 0x00},
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), content, 0644); err != nil {
			t.Fatal(err)
		}
	}

	cmd, buf := newTestCommand()
	if err := runScan(cmd, []string{root}); err != nil {
		t.Fatalf("runScan() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "files:    3") {
		t.Errorf("output missing file count:\n%s", out)
	}
	if !strings.Contains(out, "errors:   0") {
		t.Errorf("output missing error count:\n%s", out)
	}
	if !strings.Contains(out, "scan ") {
		t.Errorf("output missing scan ID line:\n%s", out)
	}
}

func TestRunScanMissingRoot(t *testing.T) {
	origCfgFile := cfgFile
	cfgFile = writeScanConfig(t)
	defer func() { cfgFile = origCfgFile }()

	cmd, _ := newTestCommand()
	err := runScan(cmd, []string{filepath.Join(t.TempDir(), "does-not-exist")})
	if err == nil {
		t.Error("runScan() on missing root should fail")
	}
}
