package fio

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/imroc/req/v3"
	"github.com/rs/zerolog"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
)

const (
	DefaultBaseURL = "https://fioapi.fio.cz"
	// MaxDateRangeDays is the widest window Fio serves in a single periods request.
	MaxDateRangeDays = 90
	// HomeCurrency is used for rows without a currency column.
	HomeCurrency   = "CZK"
	minTokenLength = 32
	maxBodyInError = 512

	periodsPath     = "/v1/rest/periods/{token}/{from}/{to}/transactions.json"
	lastPath        = "/v1/rest/last/{token}/transactions.json"
	setLastDatePath = "/v1/rest/set-last-date/{token}/{date}/"
)

type Config struct {
	BaseURL         string
	Timeout         time.Duration
	RetryCount      int
	RetryBackoffMin time.Duration
	RetryBackoffMax time.Duration
}

type Client struct {
	cl      *req.Client
	baseURL string
}

// NewClient configures cl with the timeout and retry policy from cfg. Only
// transport failures and 5xx responses are retried; rate limiting and
// authentication failures need the caller to act first.
func NewClient(
	cl *req.Client,
	cfg Config,
) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	if cfg.Timeout > 0 {
		cl.SetTimeout(cfg.Timeout)
	}

	if cfg.RetryCount > 0 {
		cl.SetCommonRetryCount(cfg.RetryCount).
			SetCommonRetryBackoffInterval(cfg.RetryBackoffMin, cfg.RetryBackoffMax).
			SetCommonRetryCondition(func(resp *req.Response, err error) bool {
				if err != nil {
					return true
				}

				return resp.GetStatusCode() >= http.StatusInternalServerError
			}).
			SetCommonRetryHook(func(resp *req.Response, err error) {
				if resp == nil || resp.Request == nil {
					return
				}

				zerolog.Ctx(resp.Request.Context()).Warn().
					Int("status", resp.GetStatusCode()).
					Bool("transport_error", err != nil).
					Msg("retrying fio request")
			})
	}

	return &Client{
		cl:      cl,
		baseURL: baseURL,
	}
}

func (c *Client) MaxDateRangeDays() int {
	return MaxDateRangeDays
}

func (c *Client) FetchByDateRange(
	ctx context.Context,
	token string,
	from time.Time,
	to time.Time,
) ([]*RawTransaction, error) {
	statement, err := c.FetchStatement(ctx, token, from, to)
	if err != nil {
		return nil, err
	}

	return statement.TransactionList.Transaction, nil
}

// FetchStatement returns the statement header together with its transactions.
func (c *Client) FetchStatement(
	ctx context.Context,
	token string,
	from time.Time,
	to time.Time,
) (*Statement, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().
		Str("from", from.Format(time.DateOnly)).
		Str("to", to.Format(time.DateOnly)).
		Msg("fetching fio statement")

	resp, err := c.cl.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"token": token,
			"from":  from.Format(time.DateOnly),
			"to":    to.Format(time.DateOnly),
		}).
		Get(c.baseURL + periodsPath)

	return c.parseStatement(resp, err, token)
}

func (c *Client) FetchSinceLastSync(
	ctx context.Context,
	token string,
) ([]*RawTransaction, error) {
	if err := ValidateToken(token); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Msg("fetching fio transactions since last download")

	resp, err := c.cl.R().
		SetContext(ctx).
		SetPathParam("token", token).
		Get(c.baseURL + lastPath)

	statement, err := c.parseStatement(resp, err, token)
	if err != nil {
		return nil, err
	}

	return statement.TransactionList.Transaction, nil
}

// SetBookmark moves the server side "last download" marker to date, so the next
// FetchSinceLastSync starts after it.
func (c *Client) SetBookmark(
	ctx context.Context,
	token string,
	date time.Time,
) error {
	if err := ValidateToken(token); err != nil {
		return err
	}

	resp, err := c.cl.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"token": token,
			"date":  date.Format(time.DateOnly),
		}).
		Get(c.baseURL + setLastDatePath)

	return c.checkResponse(resp, err, token)
}

func (c *Client) parseStatement(resp *req.Response, err error, token string) (*Statement, error) {
	if err = c.checkResponse(resp, err, token); err != nil {
		return nil, err
	}

	var apiResp Response
	if err = resp.UnmarshalJson(&apiResp); err != nil {
		return nil, errors.Wrapf(common.ErrParsing, "invalid fio response body: %v", err)
	}

	return &apiResp.AccountStatement, nil
}

func (c *Client) checkResponse(resp *req.Response, err error, token string) error {
	if err != nil {
		return errors.Wrapf(common.ErrNetwork, "fio request failed: %s", redact(err.Error(), token))
	}

	if resp.GetStatusCode() == http.StatusOK {
		return nil
	}

	return classifyStatus(resp.GetStatusCode(), redact(truncate(resp.String()), token))
}

func classifyStatus(status int, body string) error {
	var kind error

	switch {
	case status == http.StatusUnauthorized:
		kind = common.ErrAuthentication
	case status == http.StatusBadRequest:
		kind = common.ErrValidation
	case status == http.StatusNotFound:
		kind = common.ErrNotFound
	case status == http.StatusConflict, status == http.StatusTooManyRequests:
		// fio answers 409 when the token is used more than once per 30 seconds
		kind = common.ErrRateLimit
	case status >= http.StatusInternalServerError:
		kind = common.ErrServer
	default:
		kind = common.ErrNetwork
	}

	return errors.Wrapf(kind, "fio api returned status %d: %s", status, body)
}

func ValidateToken(token string) error {
	if strings.TrimSpace(token) == "" {
		return errors.Wrap(common.ErrInvalidToken, "token is empty")
	}

	if len(token) < minTokenLength {
		return errors.Wrapf(common.ErrInvalidToken, "token is shorter than %d characters", minTokenLength)
	}

	return nil
}

func redact(message string, token string) string {
	if token == "" {
		return message
	}

	return strings.ReplaceAll(message, token, "***")
}

func truncate(body string) string {
	if len(body) <= maxBodyInError {
		return body
	}

	return body[:maxBodyInError] + "..."
}
