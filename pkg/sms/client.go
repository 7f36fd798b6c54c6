// Package sms provides a client for sending notifications through an HTTP
// SMS gateway.
package sms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents an SMS gateway client used to send notifications.
type Client struct {
	url    string
	apiKey string
	from   string
	client *http.Client
}

// NewClient creates a new SMS Client for the given gateway endpoint.
func NewClient(url, apiKey, from string) *Client {
	return &Client{
		url:    url,
		apiKey: apiKey,
		from:   from,
		client: &http.Client{},
	}
}

// sendMessageRequest represents the gateway's send payload.
type sendMessageRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

// Send delivers a text message to the recipient's phone number. The
// subject is folded into the text since SMS has no subject line.
func (c *Client) Send(to, subject, msg string) error {
	text := msg
	if subject != "" {
		text = fmt.Sprintf("%s: %s", subject, msg)
	}

	reqBody := sendMessageRequest{
		From: c.from,
		To:   to,
		Text: text,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}
