package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

var ErrMailerDisabled = errors.New("mailer is disabled")

type sendMailRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type sendMailResponse struct {
	MailID string `json:"mail_id"`
	Status string `json:"status"`
}

// MailerClient talks to the mail provider over HTTP. Delivery is
// best-effort once; there are no retries, callers log failures and move
// on.
type MailerClient struct {
	url     string
	from    string
	timeout time.Duration
	client  *fasthttp.Client
}

func NewMailerClient(url, from string, timeout time.Duration) *MailerClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &MailerClient{
		url:     url,
		from:    from,
		timeout: timeout,
		client: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxIdleConnDuration: 60 * time.Second,
		},
	}
}

func (c *MailerClient) Send(ctx context.Context, to, subject, body string) error {
	if c.url == "" {
		return ErrMailerDisabled
	}

	payload, err := json.Marshal(sendMailRequest{
		From:    c.from,
		To:      to,
		Subject: subject,
		Body:    body,
	})
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.url + "/api/v1/mail/send")
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	deadline, ok := ctx.Deadline()
	if !ok {
		deadline = time.Now().Add(c.timeout)
	}

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}

	statusCode := resp.StatusCode()
	if statusCode != fasthttp.StatusOK && statusCode != fasthttp.StatusAccepted {
		return fmt.Errorf("mail provider returned status %d: %s", statusCode, resp.Body())
	}

	var result sendMailResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("failed to unmarshal mail response: %w", err)
	}
	if result.Status == "FAILED" {
		return fmt.Errorf("mail provider reported failure for mail %s", result.MailID)
	}
	return nil
}
