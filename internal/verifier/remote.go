package verifier

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// RemoteVerifier fragt den externen Auth-Service.
type RemoteVerifier struct {
	client     *http.Client
	baseURL    string
	verifyPath string
	searchPath string
}

func NewRemoteVerifier(baseURL, verifyPath, searchPath string, timeout time.Duration) *RemoteVerifier {
	return &RemoteVerifier{
		client:     &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		verifyPath: verifyPath,
		searchPath: searchPath,
	}
}

// accountPayload akzeptiert beide Feldnamen, die der Auth-Service historisch verwendet.
type accountPayload struct {
	EmployeeID string `json:"employee_id"`
	EmployeeId string `json:"employeeId"`
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Role       string `json:"role"`
}

func (p accountPayload) toAccount() entity.Account {
	id := p.EmployeeID
	if id == "" {
		id = p.EmployeeId
	}
	if id == "" {
		id = p.ID
	}
	return entity.Account{
		ID:       id,
		Username: p.Username,
		Email:    p.Email,
		Role:     entity.AccountRole(p.Role),
	}
}

type verifyResponse struct {
	accountPayload
	User *accountPayload `json:"user"`
}

func (v *RemoteVerifier) Verify(ctx context.Context, token string) (*entity.Account, *app_errors.AppError) {
	body, appErr := v.get(ctx, v.verifyPath, token)
	if appErr != nil {
		return nil, appErr
	}

	var resp verifyResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, malformed(err)
	}

	payload := resp.accountPayload
	if resp.User != nil {
		payload = *resp.User
	}

	account := payload.toAccount()
	if account.ID == "" {
		return nil, malformed(errors.New("verifier response without account id"))
	}

	return &account, nil
}

func (v *RemoteVerifier) SearchUsers(ctx context.Context, token, query string) ([]entity.Account, *app_errors.AppError) {
	body, appErr := v.get(ctx, v.searchPath+"?q="+url.QueryEscape(query), token)
	if appErr != nil {
		if appErr.Code == 503 {
			appErr.MessageKey = "user_search.unavailable"
		}
		return nil, appErr
	}

	var users []accountPayload
	if err := json.Unmarshal(body, &users); err != nil {
		var wrapped struct {
			Users []accountPayload `json:"users"`
		}
		if err := json.Unmarshal(body, &wrapped); err != nil {
			return nil, malformed(err)
		}
		users = wrapped.Users
	}

	out := make([]entity.Account, 0, len(users))
	for _, u := range users {
		if acc := u.toAccount(); acc.ID != "" {
			out = append(out, acc)
		}
	}
	return out, nil
}

func (v *RemoteVerifier) get(ctx context.Context, path, token string) ([]byte, *app_errors.AppError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.baseURL+path, nil)
	if err != nil {
		return nil, app_errors.Internal(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, unavailable(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, unavailable(err)
	}

	switch {
	case resp.StatusCode >= 500:
		return nil, unavailable(fmt.Errorf("verifier responded %d", resp.StatusCode))
	case resp.StatusCode >= 400:
		return nil, invalidToken(fmt.Errorf("verifier responded %d", resp.StatusCode))
	}

	return body, nil
}
