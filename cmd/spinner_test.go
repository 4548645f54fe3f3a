package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteCallModelShowsSlowHintUntilDone(t *testing.T) {
	model := newRemoteCallModel[int]("Searching job offers...", nil)
	assert.Contains(t, model.View(), "Searching job offers...")
	assert.NotContains(t, model.View(), "still waiting")

	updated, cmd := model.Update(slowRemoteCallMsg{})
	assert.Nil(t, cmd)
	assert.Contains(t, updated.View(), "still waiting on the job board API")

	updated, cmd = updated.Update(remoteResultMsg[int]{value: 7})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.View())

	final, ok := updated.(remoteCallModel[int])
	require.True(t, ok)
	assert.Equal(t, 7, final.value)
}

func TestAwaitRemoteReturnsCallResult(t *testing.T) {
	var output bytes.Buffer

	value, err := awaitRemote(context.Background(), &output, "Loading job offer...", func(context.Context) (string, error) {
		time.Sleep(100 * time.Millisecond)
		return "j-1", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "j-1", value)
	assert.Contains(t, output.String(), "Loading job offer...")
}

func TestAwaitRemoteReturnsCallError(t *testing.T) {
	callErr := errors.New("connection refused")

	_, err := awaitRemote(context.Background(), &bytes.Buffer{}, "Signing in...", func(context.Context) (int, error) {
		return 0, callErr
	})
	require.ErrorIs(t, err, callErr)
}
