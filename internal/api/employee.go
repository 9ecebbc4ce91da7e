package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/vy-hr/portal-go/internal/domain/employee"
)

type UpdateProfileRequest struct {
	ContactNumber   string `json:"contactNumber"`
	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeID    string `json:"employeeId"`
	EmployeeName  string `json:"employeeName"`
	OfficialEmail string `json:"officialEmail"`
	RoleTitle     string `json:"roleTitle"`
	BasicSalary   int    `json:"basicSalary"`
	HRA           int    `json:"hra"`
	Allowances    int    `json:"allowances"`
	Password      string `json:"password"`
}

func (c *Client) Profile(ctx context.Context) (*employee.Employee, error) {
	data, err := c.do(ctx, http.MethodGet, "/employee/profile", true, nil)
	if err != nil {
		return nil, err
	}

	var profile employee.Employee
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("unexpected profile response: %w", err)
	}
	return &profile, nil
}

func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (string, error) {
	data, err := c.do(ctx, http.MethodPut, "/employee/profile", true, req)
	if err != nil {
		return "", err
	}

	var out struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unexpected update response: %w", err)
	}
	return out.Msg, nil
}

// UploadPhoto posts a profile photo as the multipart field "photo" and
// returns the URL the backend stored it under.
func (c *Client) UploadPhoto(ctx context.Context, filename string, photo io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("photo", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, photo); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	data, err := c.doMultipart(ctx, "/employee/profile/photo", mw.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}

	var out struct {
		ProfilePhotoURL string `json:"profilePhotoUrl"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unexpected upload response: %w", err)
	}
	return out.ProfilePhotoURL, nil
}

// Employees lists every employee. Admin only; the server enforces the
// role, the client merely hides the view from non-admins.
func (c *Client) Employees(ctx context.Context) ([]employee.Employee, error) {
	data, err := c.do(ctx, http.MethodGet, "/admin/employees", true, nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Employees []employee.Employee `json:"employees"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("unexpected employees response: %w", err)
	}
	return out.Employees, nil
}

func (c *Client) CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (string, error) {
	data, err := c.do(ctx, http.MethodPost, "/admin/employees", true, req)
	if err != nil {
		return "", err
	}

	var out struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("unexpected create response: %w", err)
	}
	return out.Msg, nil
}
