package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	versionCmd.SetOut(buf)
	versionCmd.Run(versionCmd, nil)

	got := strings.TrimSpace(buf.String())
	if got != version {
		t.Errorf("Expected version output %q, got %q", version, got)
	}
}

func TestConnectionCommandNames(t *testing.T) {
	if testCmd.Use != "test-connection" {
		t.Errorf("Expected command use test-connection, got %q", testCmd.Use)
	}
	if !testCmd.HasAlias("test") {
		t.Error("Expected test to remain available as an alias")
	}
}
