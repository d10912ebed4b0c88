// Package session owns the authenticated identity of the gallery client.
//
// A Manager drives the authorization-code login flow against the hosted
// identity provider, persists the resulting TokenSet in a Store and decides,
// from the identity token's exp claim alone, whether the user is still
// signed in. Stale sessions are wiped the moment they are detected by
// EnsureFreshSession; IsExpired is the side-effect free variant.
package session
