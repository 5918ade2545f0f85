package telephony

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// SimulatedDialer stands in for the provider when no credentials are
// configured and simulation is explicitly enabled. No call is placed.
type SimulatedDialer struct {
	now func() time.Time
}

func NewSimulatedDialer() *SimulatedDialer {
	return &SimulatedDialer{now: time.Now}
}

func (d *SimulatedDialer) Dial(ctx context.Context, to, callbackURL string) (*Call, error) {
	sid := fmt.Sprintf("sim_%d", d.now().UnixNano())
	slog.Info("simulated outbound call", "to", to, "call_sid", sid, "callback_url", callbackURL)
	return &Call{SID: sid, To: to}, nil
}

func (d *SimulatedDialer) Name() string {
	return "Simulator"
}
