package main

import (
	"strings"
	"testing"
)

func TestGetUserDataDir(t *testing.T) {
	dir := getUserDataDir()
	if dir == "" {
		t.Fatal("user data dir is empty")
	}
	if !strings.Contains(dir, "bindery") {
		t.Errorf("user data dir %q does not look like an app directory", dir)
	}
}
