package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/gophgallery/internal/client/session"
	"github.com/dmitrijs2005/gophgallery/internal/common"
)

// RouteNavigator handles the internal login route in the terminal and
// passes every other target to Next.
type RouteNavigator struct {
	Next session.Navigator
	Out  io.Writer
}

func (n RouteNavigator) Navigate(ctx context.Context, target string) error {
	if target == common.LoginRoute {
		_, err := fmt.Fprintln(n.Out, "You are signed out. Type 'login' to sign in again.")
		return err
	}
	return n.Next.Navigate(ctx, target)
}
