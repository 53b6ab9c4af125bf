package notify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/teamboard/backend/internal/config"
)

// Sender delivers a text message to a phone number in E.164 form.
type Sender interface {
	Send(to, body string) error
}

type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

// TwilioSender sends SMS through the Twilio REST API.
type TwilioSender struct {
	api  messageCreator
	from string
}

func NewTwilioSender(cfg config.SMS) *TwilioSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioSender{api: client.Api, from: cfg.From}
}

func (s *TwilioSender) Send(to, body string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio: create message: %w", err)
	}
	return nil
}

var errBadPhone = errors.New("phone number is not a national or E.164 number")

// E164 turns a stored phone number into E.164. National numbers such as
// 01012345678 drop their trunk zero and get countryCode in front.
func E164(phone, countryCode string) (string, error) {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		if len(phone) < 8 || !digitsOnly(phone[1:]) {
			return "", errBadPhone
		}
		return phone, nil
	}

	phone = strings.ReplaceAll(phone, "-", "")
	if len(phone) < 7 || !digitsOnly(phone) {
		return "", errBadPhone
	}
	return "+" + countryCode + strings.TrimPrefix(phone, "0"), nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
