package session

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
)

// Navigator sends the user to a location: a provider URL or an internal
// route such as common.LoginRoute.
type Navigator interface {
	Navigate(ctx context.Context, target string) error
}

// openURL is swapped in tests.
var openURL = browser.OpenURL

// BrowserNavigator opens http(s) targets in the system browser and always
// prints the target to Out, so headless users can follow it by hand.
type BrowserNavigator struct {
	Out io.Writer
}

func (n BrowserNavigator) Navigate(_ context.Context, target string) error {
	fmt.Fprintln(n.Out, "Open:", target)

	if !isWebURL(target) {
		return nil
	}
	if err := openURL(target); err != nil {
		return fmt.Errorf("open browser: %w", err)
	}
	return nil
}

// WriterNavigator only prints the target.
type WriterNavigator struct {
	Out io.Writer
}

func (n WriterNavigator) Navigate(_ context.Context, target string) error {
	_, err := fmt.Fprintln(n.Out, "Open:", target)
	return err
}

func isWebURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
