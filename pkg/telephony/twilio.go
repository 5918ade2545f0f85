package telephony

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type TwilioDialer struct {
	client     *twilio.RestClient
	fromNumber string
}

func NewTwilioDialer(accountSID, authToken, fromNumber string) *TwilioDialer {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &TwilioDialer{client: client, fromNumber: fromNumber}
}

func (d *TwilioDialer) Dial(ctx context.Context, to, callbackURL string) (*Call, error) {
	params := &twilioApi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(d.fromNumber)
	params.SetUrl(callbackURL)

	resp, err := d.client.Api.CreateCall(params)
	if err != nil {
		return nil, fmt.Errorf("twilio create call: %w", err)
	}

	call := &Call{To: to}
	if resp.Sid != nil {
		call.SID = *resp.Sid
	}

	return call, nil
}

func (d *TwilioDialer) Name() string {
	return "Twilio"
}
