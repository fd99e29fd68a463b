package responder

import (
	"testing"
	"time"

	"github.com/onereply/onereply/pkg/bus"
)

const (
	testWait = 3 * time.Second
	testTick = 10 * time.Millisecond
)

func TestParseJob(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		wantNumber string
		wantMsgID  string
		wantDevice string
		wantErr    bool
	}{
		{
			name:       "all strings",
			raw:        `{"number":"+15551234567","ID":"m1","deviceID":"3"}`,
			wantNumber: "+15551234567",
			wantMsgID:  "m1",
			wantDevice: "3",
		},
		{
			name:       "numeric id and device",
			raw:        `{"number":"+15551234567","ID":81237123987,"deviceID":3}`,
			wantNumber: "+15551234567",
			wantMsgID:  "81237123987",
			wantDevice: "3",
		},
		{
			name:       "extra fields ignored",
			raw:        `{"number":"+15551234567","ID":"m1","deviceID":"3","foo":"bar"}`,
			wantNumber: "+15551234567",
			wantMsgID:  "m1",
			wantDevice: "3",
		},
		{name: "empty body", raw: ``, wantErr: true},
		{name: "garbage", raw: `not json at all`, wantErr: true},
		{name: "missing number", raw: `{"ID":"m1","deviceID":"3"}`, wantErr: true},
		{name: "missing id", raw: `{"number":"+15551234567","deviceID":"3"}`, wantErr: true},
		{name: "missing device", raw: `{"number":"+15551234567","ID":"m1"}`, wantErr: true},
		{name: "empty device", raw: `{"number":"+15551234567","ID":"m1","deviceID":""}`, wantErr: true},
		{name: "boolean field", raw: `{"number":true,"ID":"m1","deviceID":"3"}`, wantErr: true},
		{name: "zero id", raw: `{"number":"+15551234567","ID":0,"deviceID":"3"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := parseJob(bus.ReplyJob{Raw: []byte(tt.raw)})
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseJob() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if job.Number != tt.wantNumber {
				t.Errorf("Number = %q, want %q", job.Number, tt.wantNumber)
			}
			if job.MessageID != tt.wantMsgID {
				t.Errorf("MessageID = %q, want %q", job.MessageID, tt.wantMsgID)
			}
			if job.DeviceID != tt.wantDevice {
				t.Errorf("DeviceID = %q, want %q", job.DeviceID, tt.wantDevice)
			}
		})
	}
}

func TestShortID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "?????"},
		{"abc", "abc"},
		{"1234567890", "67890"},
	}
	for _, tt := range tests {
		if got := shortID(tt.in); got != tt.want {
			t.Errorf("shortID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
