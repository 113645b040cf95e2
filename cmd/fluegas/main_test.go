package main

import (
	"testing"

	"github.com/combustkit/fluegas/internal/cli"
	"github.com/combustkit/fluegas/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		if version.GetVersion() == "" {
			t.Error("expected version to be non-empty")
		}
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		if root == nil {
			t.Fatal("expected root command to be non-nil")
		}
		if root.Use == "" {
			t.Error("expected root command to have a use string")
		}
	})
}
