package root_test

import (
	"testing"

	"sales-analytics/cmd/root"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "sales-analytics", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "analyze delimited sales-transaction files")
	assert.Contains(t, root.Cmd.Long, "validates and")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	// Init registers the persistent flags once; guard against redefinition
	// when another test in the binary has already run it.
	if root.Cmd.PersistentFlags().Lookup("input") == nil {
		root.Init()
	}

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)
	assert.Equal(t, "", inputFlag.DefValue)
	assert.NotEmpty(t, inputFlag.Usage)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Equal(t, "", outputFlag.DefValue)
	assert.NotEmpty(t, outputFlag.Usage)
}

func TestRootCommand_Run(t *testing.T) {
	cmd := &cobra.Command{}
	assert.NotPanics(t, func() {
		root.Cmd.Run(cmd, []string{})
	})
}

func TestSharedFlags_Access(t *testing.T) {
	originalInput := root.SharedFlags.Input
	originalOutput := root.SharedFlags.Output
	defer func() {
		root.SharedFlags.Input = originalInput
		root.SharedFlags.Output = originalOutput
	}()

	root.SharedFlags.Input = "sales_data.txt"
	root.SharedFlags.Output = "out"

	assert.Equal(t, "sales_data.txt", root.SharedFlags.Input)
	assert.Equal(t, "out", root.SharedFlags.Output)
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, root.GetLogger())
}
