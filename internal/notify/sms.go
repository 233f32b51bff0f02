package notify

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/checkin/pkg/entity"
)

const DefaultCountryPrefix = "+86"

type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
	// CountryPrefix is prepended to numbers without a leading +, +86 when empty
	CountryPrefix string
	Timeout       time.Duration
}

type smsRequest struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text"`
}

type smsResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// SMSNotifier posts messages to an HTTP SMS gateway.
type SMSNotifier struct {
	url    string
	apiKey string
	sender string
	prefix string
	client *http.Client
}

func NewSMSNotifier(cfg SMSConfig) (*SMSNotifier, error) {
	if cfg.GatewayURL == "" {
		return nil, errors.New("creating sms notifier error: empty gateway url")
	}
	if cfg.CountryPrefix == "" {
		cfg.CountryPrefix = DefaultCountryPrefix
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &SMSNotifier{
		url:    cfg.GatewayURL,
		apiKey: cfg.APIKey,
		sender: cfg.Sender,
		prefix: cfg.CountryPrefix,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

func (n *SMSNotifier) Channel() entity.ContactKind {
	return entity.ContactPhone
}

func (n *SMSNotifier) Send(ctx context.Context, contact entity.Contact, msg Message) error {
	if err := checkContact(n, contact); err != nil {
		return err
	}
	body, err := sonic.ConfigDefault.Marshal(smsRequest{
		To:      NormalizePhone(contact.Address, n.prefix),
		From:    n.sender,
		Subject: msg.Subject,
		Text:    msg.Body,
	})
	if err != nil {
		return errors.New("sms encoding error: " + err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return errors.New("sms request error: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return errors.New("sms gateway error: " + err.Error())
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode/100 != 2 {
		return errors.New("sms gateway error: status " + strconv.Itoa(resp.StatusCode) + ": " + strings.TrimSpace(string(raw)))
	}
	var out smsResponse
	if len(raw) > 0 && sonic.ConfigDefault.Unmarshal(raw, &out) == nil && !out.OK && out.Message != "" {
		return errors.New("sms gateway rejected message: " + out.Message)
	}
	return nil
}

// NormalizePhone drops separators and adds prefix to numbers without a country code.
func NormalizePhone(phone, prefix string) string {
	phone = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return prefix + phone
}
