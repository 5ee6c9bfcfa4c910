package zkteco

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/chronos-hr/attendance-backend-go/internal/config"
)

// ErrDeviceUnavailable is returned when a terminal cannot be reached through
// the gateway, or the gateway itself is down.
var ErrDeviceUnavailable = errors.New("device unavailable")

// AttendanceLog is one raw punch as reported by a terminal. Timestamp is kept
// as the gateway's string form; parsing (and skipping malformed rows) is the
// sync reconciler's job.
type AttendanceLog struct {
	UID       string `json:"uid"`
	Timestamp string `json:"timestamp"`
}

// DeviceInfo mirrors the identity block a ZKTeco terminal reports.
type DeviceInfo struct {
	DeviceVersion   string `json:"device_version"`
	DeviceOSVersion string `json:"device_os_version"`
	Platform        string `json:"platform"`
	FirmwareVersion string `json:"firmware_version"`
	WorkCode        string `json:"work_code"`
	SerialNumber    string `json:"serial_number"`
	DeviceName      string `json:"device_name"`
}

// DeviceUser is an account enrolled on the terminal itself.
type DeviceUser struct {
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Privilege  int    `json:"privilege"`
	CardNumber int64  `json:"card_number"`
}

// Client talks to the device gateway, which speaks the ZKTeco wire protocol
// to the terminals and exposes it as JSON over HTTP.
type Client interface {
	FetchLogs(ctx context.Context, ip string, port int) ([]AttendanceLog, error)
	FetchInfo(ctx context.Context, ip string, port int) (DeviceInfo, error)
	FetchUsers(ctx context.Context, ip string, port int) ([]DeviceUser, error)
}

// APIError represents a gateway error response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gateway error [%d]: %s", e.StatusCode, e.Message)
}

type httpClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.GatewayConfig) Client {
	return &httpClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// FetchLogs implements Client.
func (c *httpClient) FetchLogs(ctx context.Context, ip string, port int) ([]AttendanceLog, error) {
	var logs []AttendanceLog
	if err := c.get(ctx, "/v1/device/logs", ip, port, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// FetchInfo implements Client.
func (c *httpClient) FetchInfo(ctx context.Context, ip string, port int) (DeviceInfo, error) {
	var info DeviceInfo
	if err := c.get(ctx, "/v1/device/info", ip, port, &info); err != nil {
		return DeviceInfo{}, err
	}
	return cleanInfo(info), nil
}

// FetchUsers implements Client.
func (c *httpClient) FetchUsers(ctx context.Context, ip string, port int) ([]DeviceUser, error) {
	var users []DeviceUser
	if err := c.get(ctx, "/v1/device/users", ip, port, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *httpClient) get(ctx context.Context, path string, ip string, port int, out interface{}) error {
	q := url.Values{}
	q.Set("ip", ip)
	q.Set("port", strconv.Itoa(port))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build gateway request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeviceUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%w: gateway could not reach %s:%d", ErrDeviceUnavailable, ip, port)
	default:
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: unparseable gateway response: %v", ErrDeviceUnavailable, err)
	}
	return nil
}

// cleanInfo strips the NUL padding and "~Key=" prefixes the terminals embed
// in their identity strings.
func cleanInfo(info DeviceInfo) DeviceInfo {
	info.DeviceVersion = cleanField(info.DeviceVersion, "")
	info.DeviceOSVersion = cleanField(info.DeviceOSVersion, "~OS=")
	info.Platform = cleanField(info.Platform, "~Platform=")
	info.FirmwareVersion = cleanField(info.FirmwareVersion, "~ZKFPVersion=")
	info.WorkCode = cleanField(info.WorkCode, "WorkCode=")
	info.SerialNumber = cleanField(info.SerialNumber, "~SerialNumber=")
	info.DeviceName = cleanField(info.DeviceName, "~DeviceName=")
	return info
}

func cleanField(value, prefix string) string {
	value = strings.TrimRight(value, "\x00")
	if prefix != "" {
		value = strings.TrimPrefix(value, prefix)
	}
	return value
}
