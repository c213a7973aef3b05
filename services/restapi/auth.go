package restapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pkg/errors"

	"github.com/Tahsina2226/course-event-management/core/session"
)

var _ session.AuthAPI = (*Client)(nil)

func (c *Client) Login(ctx context.Context, email, password string) (session.AuthResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp session.AuthResponse
	if err := c.do(ctx, http.MethodPost, "admin/login", nil, body, &resp); err != nil {
		return session.AuthResponse{}, err
	}
	return resp, nil
}

func (c *Client) Register(ctx context.Context, acct session.NewAccount) (session.AuthResponse, error) {
	var resp session.AuthResponse
	if err := c.do(ctx, http.MethodPost, "admin/register", nil, acct, &resp); err != nil {
		return session.AuthResponse{}, err
	}
	return resp, nil
}

// DepartmentLookup fetches the enrollment the backend holds for email.
// It takes the token explicitly: at login time the session is not
// published yet, so the client's own token source cannot serve it.
func (c *Client) DepartmentLookup(ctx context.Context, email, token string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/enroll/"+url.PathEscape(email), nil)
	if err != nil {
		return "", errors.Wrap(err, "building request")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "looking up department")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", decodeError(resp)
	}

	var body struct {
		BatchDepartment string `json:"batch_department"`
	}
	if err := decodeJSON(resp, &body); err != nil {
		return "", err
	}
	return body.BatchDepartment, nil
}
