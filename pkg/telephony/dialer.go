// Package telephony places outbound voice calls through a provider. Two
// implementations exist behind one interface: the real Twilio client and a
// simulator for environments without provider credentials.
package telephony

import "context"

type Call struct {
	SID string
	To  string
}

type Dialer interface {
	// Dial requests an outbound call to the given number. The provider
	// drives the rest of the call through the webhook at callbackURL;
	// Dial does not wait for the call to complete.
	Dial(ctx context.Context, to, callbackURL string) (*Call, error)
	Name() string
}
