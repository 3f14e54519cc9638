package list_test

import (
	"testing"

	"fjacquet/weekledger/cmd/list"

	"github.com/stretchr/testify/assert"
)

func TestListCommand_Metadata(t *testing.T) {
	assert.Equal(t, "list", list.Cmd.Use)
	assert.Contains(t, list.Cmd.Short, "List every expense")
	assert.Contains(t, list.Cmd.Long, "newest first")
	assert.NotNil(t, list.Cmd.Run)
}

func TestListCommand_NoOwnFlags(t *testing.T) {
	// list relies on the persistent --format and --output flags only.
	assert.False(t, list.Cmd.Flags().HasFlags())
}
