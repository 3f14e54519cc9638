package root_test

import (
	"testing"

	"fjacquet/weekledger/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "weekledger", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "CLI tool to record personal expenses")
	assert.Contains(t, root.Cmd.Long, "Monday-to-Sunday summaries")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
	assert.NotNil(t, root.Cmd.PersistentPostRun)
}

func TestRootCommand_Flags(t *testing.T) {
	// Register flags once; main.go normally does this in init()
	if root.Cmd.PersistentFlags().Lookup("format") == nil {
		root.Init()
	}

	formatFlag := root.Cmd.PersistentFlags().Lookup("format")
	assert.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "table", formatFlag.DefValue)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "", outputFlag.DefValue)
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}

	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestRootCommand_PersistentPostRun(t *testing.T) {
	originalContainer := root.AppContainer
	defer func() {
		root.AppContainer = originalContainer
	}()

	// Without a container built during the run there is nothing to
	// flush and the hook must be a no-op.
	root.AppContainer = nil
	testCmd := &cobra.Command{}

	assert.NotPanics(t, func() {
		root.Cmd.PersistentPostRun(testCmd, []string{})
	})
}

func TestCommonFlags_Structure(t *testing.T) {
	flags := root.CommonFlags{
		Format: "json",
		Output: "report.json",
	}

	assert.Equal(t, "json", flags.Format)
	assert.Equal(t, "report.json", flags.Output)
}

func TestSharedFlags_Access(t *testing.T) {
	originalFormat := root.SharedFlags.Format
	originalOutput := root.SharedFlags.Output
	defer func() {
		root.SharedFlags.Format = originalFormat
		root.SharedFlags.Output = originalOutput
	}()

	root.SharedFlags.Format = "yaml"
	root.SharedFlags.Output = "out.yaml"

	assert.Equal(t, "yaml", root.SharedFlags.Format)
	assert.Equal(t, "out.yaml", root.SharedFlags.Output)
}

func TestGlobalVariables_Initialization(t *testing.T) {
	assert.NotNil(t, root.Log)
	assert.NotNil(t, root.Cmd)
	assert.NotNil(t, &root.SharedFlags)
}
