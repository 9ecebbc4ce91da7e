package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type LoginRequest struct {
	EmployeeID string `json:"employeeId"`
	Password   string `json:"password"`
}

type RegisterRequest struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	OfficialEmail string `json:"officialEmail"`
	Password      string `json:"password"`
}

// Login exchanges credentials for a bearer token. The token is opaque to
// this method; persisting it is the caller's concern.
func (c *Client) Login(ctx context.Context, employeeID, password string) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", false, LoginRequest{
		EmployeeID: employeeID,
		Password:   password,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unexpected login response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return out.Token, nil
}

// Register creates an account and returns the server's confirmation
// message.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/register", false, req)
	if err != nil {
		return "", err
	}

	var out struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unexpected register response: %w", err)
	}
	return out.Msg, nil
}
