package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runWithCapturedConfig выполняет подкоманду с подмененным RunE и возвращает прочитанный --config
func runWithCapturedConfig(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCommand()

	var got string
	for _, sub := range root.Commands() {
		sub.RunE = func(cmd *cobra.Command, _ []string) error {
			got = configPath(cmd)
			return nil
		}
	}
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return got
}

func TestConfigFlag_EverySubcommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"serve", []string{"serve", "--config", "/etc/serve.yaml"}, "/etc/serve.yaml"},
		{"serve with migrate", []string{"serve", "--migrate", "--config=/etc/serve.yaml"}, "/etc/serve.yaml"},
		{"migrate", []string{"migrate", "--config", "/etc/migrate.yaml"}, "/etc/migrate.yaml"},
		{"seed-admin", []string{"seed-admin", "--config", "/etc/seed-admin.yaml"}, "/etc/seed-admin.yaml"},
		{"before subcommand", []string{"--config", "/etc/root.yaml", "migrate"}, "/etc/root.yaml"},
		{"not set", []string{"migrate"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, runWithCapturedConfig(t, tt.args...))
		})
	}
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"serve", "migrate", "seed-admin"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
