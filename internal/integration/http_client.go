package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"solarquote/pkg/apperror"

	"github.com/google/uuid"
)

// httpClient is the shared JSON transport of the collaborator clients. Every call is bounded by
// the client timeout.
type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func newHTTPClient(baseURL, token string, timeout time.Duration) httpClient {
	return httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// StatusError is a non-2xx collaborator answer.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("collaborator responded %d: %s", e.StatusCode, e.Body)
}

func (c httpClient) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Codes carried by dependency errors from the collaborator clients.
const (
	CodeIdentityUnavailable = "IDENTITY_SERVICE_UNAVAILABLE"
	CodeWalletDebitFailed   = "WALLET_DEBIT_FAILED"
)

// HTTPIdentityClient reads profiles from the identity service.
type HTTPIdentityClient struct {
	http httpClient
}

func NewHTTPIdentityClient(baseURL, token string, timeout time.Duration) *HTTPIdentityClient {
	return &HTTPIdentityClient{http: newHTTPClient(baseURL, token, timeout)}
}

func (c *HTTPIdentityClient) GetContractorInfo(ctx context.Context, contractorID uuid.UUID) (ContractorInfo, error) {
	var envelope struct {
		Data ContractorInfo `json:"data"`
	}
	if err := c.http.do(ctx, http.MethodGet, "/internal/contractors/"+contractorID.String(), nil, &envelope); err != nil {
		return ContractorInfo{}, translateLookupError(err)
	}
	envelope.Data.ID = contractorID
	return envelope.Data, nil
}

func (c *HTTPIdentityClient) GetUserInfo(ctx context.Context, userID uuid.UUID) (UserInfo, error) {
	var envelope struct {
		Data UserInfo `json:"data"`
	}
	if err := c.http.do(ctx, http.MethodGet, "/internal/users/"+userID.String(), nil, &envelope); err != nil {
		return UserInfo{}, translateLookupError(err)
	}
	envelope.Data.ID = userID
	return envelope.Data, nil
}

// translateLookupError maps a 404 to ErrNotFound and everything else to a dependency error.
func translateLookupError(err error) error {
	var se *StatusError
	if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	return apperror.Dependency(CodeIdentityUnavailable, err)
}

// HTTPWalletClient posts penalty debits to the wallet service.
type HTTPWalletClient struct {
	http httpClient
}

func NewHTTPWalletClient(baseURL, token string, timeout time.Duration) *HTTPWalletClient {
	return &HTTPWalletClient{http: newHTTPClient(baseURL, token, timeout)}
}

func (c *HTTPWalletClient) ApplyPenaltyDebit(ctx context.Context, debit PenaltyDebit) (string, error) {
	var envelope struct {
		Data struct {
			TransactionID string `json:"transaction_id"`
		} `json:"data"`
	}
	payload := map[string]interface{}{
		"contractor_id":  debit.ContractorID,
		"amount":         debit.Amount.StringFixed(2),
		"description":    debit.Description,
		"reference_type": "penalty",
		"reference_id":   debit.PenaltyID,
	}
	if err := c.http.do(ctx, http.MethodPost, "/internal/wallet/penalty-debits", payload, &envelope); err != nil {
		return "", apperror.Dependency(CodeWalletDebitFailed, err)
	}
	return envelope.Data.TransactionID, nil
}
