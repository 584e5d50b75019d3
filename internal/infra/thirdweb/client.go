// Package thirdweb is the HTTP client for the thirdweb wallet-as-a-service API.
package thirdweb

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"walletportal/config"
	deliverycontext "walletportal/internal/delivery/context"
	"walletportal/internal/domain/entity"
	domainerrors "walletportal/internal/domain/errors"
	"walletportal/internal/domain/service"
	"walletportal/internal/errors"
	"walletportal/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/google/go-querystring/query"
	"go.uber.org/fx"
)

const (
	headerClientID      = "x-client-id"
	headerSecretKey     = "x-secret-key"
	headerAuthorization = "Authorization"

	pathInitiateAuth = "/v1/auth/initiate"
	pathCompleteAuth = "/v1/auth/complete"
	pathWalletMe     = "/v1/wallets/me"
	pathWalletUsers  = "/v1/wallets/user"

	// maxErrorBodyBytes bounds how much of a failed response is read for its message.
	maxErrorBodyBytes = 64 << 10
)

// Operation names, used in errors, logs and metrics.
const (
	OpInitiateAuth  = "initiate_auth"
	OpCompleteAuth  = "complete_auth"
	OpGetWalletInfo = "get_wallet"
	OpGetAllUsers   = "list_users"
	OpGetSingleUser = "find_user"
)

// fallbackMessages are surfaced when a failed response carries no usable message.
var fallbackMessages = map[string]string{
	OpInitiateAuth:  "Authentication initiation failed",
	OpCompleteAuth:  "Authentication completion failed",
	OpGetWalletInfo: "Failed to fetch wallet info",
	OpGetAllUsers:   "Failed to fetch users",
	OpGetSingleUser: "Failed to fetch user",
}

// Client calls the provider with two static credentials fixed at construction.
type Client struct {
	baseURL    string
	clientID   string
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *metrics.ProviderMetrics
	schema     *validator.Validate
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithBaseURL points the client at another API host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records every call on m.
func WithMetrics(m *metrics.ProviderMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a provider client. The http.Client has no timeout: an issued call runs to completion.
func NewClient(clientID, secretKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    config.DefaultThirdwebBaseURL,
		clientID:   clientID,
		secretKey:  secretKey,
		httpClient: &http.Client{},
		logger:     slog.New(slog.DiscardHandler),
		schema:     validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Params holds dependencies for the provider client, injected by Fx.
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.ProviderMetrics `optional:"true"`
}

// New builds the provider client from configuration.
func New(params Params) service.WalletProvider {
	return NewClient(
		params.Config.Thirdweb.ClientID,
		params.Config.Thirdweb.SecretKey,
		WithBaseURL(params.Config.Thirdweb.BaseURL),
		WithLogger(params.Logger),
		WithMetrics(params.Metrics),
	)
}

func (c *Client) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

// InitiateAuth asks the provider to email a one-time code to email.
func (c *Client) InitiateAuth(ctx context.Context, email string) (*entity.InitiateAuthResult, error) {
	body := initiateAuthRequest{Method: entity.AuthMethodEmail, Email: email}

	var resp initiateAuthResponse
	if err := c.call(ctx, OpInitiateAuth, http.MethodPost, pathInitiateAuth, nil, body, c.clientHeaders(), &resp); err != nil {
		return nil, err
	}

	return &entity.InitiateAuthResult{
		Method:  entity.AuthMethod(resp.Method),
		Success: resp.Success,
	}, nil
}

// CompleteAuth exchanges the email and one-time code for a session.
func (c *Client) CompleteAuth(ctx context.Context, email, code string) (*entity.AuthSession, error) {
	body := completeAuthRequest{Method: entity.AuthMethodEmail, Email: email, Code: code}

	var resp completeAuthResponse
	if err := c.call(ctx, OpCompleteAuth, http.MethodPost, pathCompleteAuth, nil, body, c.clientHeaders(), &resp); err != nil {
		return nil, err
	}

	return resp.toEntity(), nil
}

// GetWalletInfo returns the wallet of the token's bearer.
func (c *Client) GetWalletInfo(ctx context.Context, token string) (*entity.WalletInfo, error) {
	headers := c.secretHeaders()
	headers.Set(headerAuthorization, "Bearer "+token)

	var resp walletInfoResponse
	if err := c.call(ctx, OpGetWalletInfo, http.MethodGet, pathWalletMe, nil, nil, headers, &resp); err != nil {
		return nil, err
	}

	wallet := resp.Result.toEntity()

	return &wallet, nil
}

// GetAllUsers returns one page of the wallet directory. This is a service-level call with no bearer token.
func (c *Client) GetAllUsers(ctx context.Context, limit, page int) (*entity.UsersPage, error) {
	values, err := query.Values(usersPageQuery{Limit: limit, Page: page})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode directory query")
	}

	var resp usersResponse
	if err := c.call(ctx, OpGetAllUsers, http.MethodGet, pathWalletUsers, values, nil, c.secretHeaders(), &resp); err != nil {
		return nil, err
	}

	return resp.Result.toEntity(), nil
}

// GetSingleUser looks up one wallet by the non-empty fields of q.
func (c *Client) GetSingleUser(ctx context.Context, q entity.UserQuery) (*entity.WalletInfo, error) {
	if q.IsEmpty() {
		c.metrics.Observe(OpGetSingleUser, metrics.OutcomeRejected, 0)

		return nil, domainerrors.ErrEmptySearchQuery
	}

	values, err := query.Values(q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode user query")
	}

	var resp walletInfoResponse
	if err := c.call(ctx, OpGetSingleUser, http.MethodGet, pathWalletUsers, values, nil, c.secretHeaders(), &resp); err != nil {
		return nil, err
	}

	wallet := resp.Result.toEntity()

	return &wallet, nil
}

func (c *Client) clientHeaders() http.Header {
	h := http.Header{}
	h.Set(headerClientID, c.clientID)
	h.Set("Content-Type", "application/json")

	return h
}

func (c *Client) secretHeaders() http.Header {
	h := http.Header{}
	h.Set(headerSecretKey, c.secretKey)

	return h
}

// call performs exactly one round trip and decodes a 2xx body into out, validating its schema.
func (c *Client) call(
	ctx context.Context,
	op, method, path string,
	values url.Values,
	body any,
	headers http.Header,
	out any,
) error {
	start := time.Now()
	outcome := metrics.OutcomeSuccess
	defer func() {
		c.metrics.Observe(op, outcome, time.Since(start))
	}()

	req, err := c.newRequest(ctx, method, path, values, body, headers)
	if err != nil {
		outcome = metrics.OutcomeRejected

		return err
	}

	c.log(ctx).Debug("Calling wallet provider", slog.String("operation", op), slog.String("path", path))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		outcome = metrics.OutcomeTransportError
		c.log(ctx).Warn("Wallet provider unreachable", slog.String("operation", op), slog.Any("error", err))

		return domainerrors.NewProviderTransportError(op, fallbackMessages[op], err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		outcome = metrics.OutcomeProviderError
		providerErr := c.decodeError(op, resp)
		c.log(ctx).Info("Wallet provider rejected request",
			slog.String("operation", op),
			slog.Int("status", resp.StatusCode),
			slog.String("message", providerErr.Message()),
		)

		return providerErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = metrics.OutcomeMalformed

		return domainerrors.NewMalformedResponseError(op, err.Error())
	}

	if err := c.schema.Struct(out); err != nil {
		outcome = metrics.OutcomeMalformed

		return domainerrors.NewMalformedResponseError(op, err.Error())
	}

	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	values url.Values,
	body any,
	headers http.Header,
) (*http.Request, error) {
	target := c.baseURL + path
	if len(values) > 0 {
		target += "?" + values.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	// Issued calls are never cancelled; only request-scoped values are kept.
	req, err := http.NewRequestWithContext(context.WithoutCancel(ctx), method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provider request")
	}
	req.Header = headers

	return req, nil
}

func (c *Client) decodeError(op string, resp *http.Response) *domainerrors.ProviderError {
	message := fallbackMessages[op]

	var body errorBody
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
	if err != nil || json.Unmarshal(raw, &body) != nil {
		return domainerrors.NewProviderError(op, resp.StatusCode, "", message)
	}

	if body.Message != "" {
		message = body.Message
	}

	return domainerrors.NewProviderError(op, resp.StatusCode, body.code(), message)
}
