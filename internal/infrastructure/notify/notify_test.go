package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_PrefixesTitle(t *testing.T) {
	var titles []string
	n := &Notifier{enabled: true, send: func(title, _, _ string) error {
		titles = append(titles, title)
		return nil
	}}

	require.NoError(t, n.Notify(context.Background(), "Pointer access lost", "grant access"))
	require.NoError(t, n.Notify(context.Background(), "", "plain"))

	assert.Equal(t, []string{"edgedock: Pointer access lost", "edgedock"}, titles)
}

func TestNotifier_DisabledSendsNothing(t *testing.T) {
	n := &Notifier{enabled: false, send: func(string, string, string) error {
		t.Fatal("send called")
		return nil
	}}

	assert.NoError(t, n.Notify(context.Background(), "x", "y"))
}

func TestNotifier_WrapsSendError(t *testing.T) {
	boom := errors.New("no notification daemon")
	n := &Notifier{enabled: true, send: func(string, string, string) error { return boom }}

	err := n.Notify(context.Background(), "x", "y")
	assert.ErrorIs(t, err, boom)
}
