package fetcher

import (
	"errors"
	"net/url"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "deadline" }
func (timeoutErr) Timeout() bool { return true }

func TestClassifyHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{429, ErrorTypeRateLimit},
		{500, ErrorTypeServer},
		{503, ErrorTypeServer},
		{404, ErrorTypeClient},
		{400, ErrorTypeClient},
		{302, ErrorTypeUnknown},
	}

	for _, tt := range tests {
		got := ClassifyHTTPError(tt.status)
		if got.Type != tt.want {
			t.Errorf("ClassifyHTTPError(%d).Type = %q, want %q", tt.status, got.Type, tt.want)
		}
		if got.StatusCode != tt.status {
			t.Errorf("ClassifyHTTPError(%d).StatusCode = %d", tt.status, got.StatusCode)
		}
	}
}

func TestNewNetworkError_Timeout(t *testing.T) {
	cause := &url.Error{Op: "Post", URL: "http://x", Err: timeoutErr{}}

	err := NewNetworkError(cause)
	if err.Type != ErrorTypeTimeout {
		t.Errorf("Type = %q, want %q", err.Type, ErrorTypeTimeout)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is() did not find the cause")
	}
}

func TestFetchError_Error(t *testing.T) {
	err := ClassifyHTTPError(500)
	want := "server error (status 500): server returned an error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	v := NewValidationError("empty response body", nil)
	if v.Error() != "validation error: empty response body" {
		t.Errorf("Error() = %q", v.Error())
	}
}

func TestResult_Ptr(t *testing.T) {
	if None[int]().Ptr() != nil {
		t.Error("None().Ptr() should be nil")
	}
	p := Some(57).Ptr()
	if p == nil || *p != 57 {
		t.Errorf("Some(57).Ptr() = %v", p)
	}
}
