package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gophgallery/internal/client/session"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

func TestRouteNavigator(t *testing.T) {
	var next, out bytes.Buffer
	n := RouteNavigator{Next: session.WriterNavigator{Out: &next}, Out: &out}

	require.NoError(t, n.Navigate(context.Background(), common.LoginRoute))
	assert.Contains(t, out.String(), "Type 'login'")
	assert.Empty(t, next.String())

	require.NoError(t, n.Navigate(context.Background(), "https://auth.example.com/logout"))
	assert.Contains(t, next.String(), "https://auth.example.com/logout")
}
