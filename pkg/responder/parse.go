package responder

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/onereply/onereply/pkg/bus"
)

// parseJob validates a raw queue payload into a complete ReplyJob. The queue
// carries ID and deviceID sometimes as strings and sometimes as bare
// numbers, so both are coerced. A missing or empty field fails the parse.
func parseJob(job bus.ReplyJob) (bus.ReplyJob, error) {
	if len(job.Raw) == 0 {
		// Job was constructed in-process with fields already set.
		if job.Number == "" || job.MessageID == "" || job.DeviceID == "" {
			return job, fmt.Errorf("missing required fields")
		}
		return job, nil
	}

	dec := json.NewDecoder(bytes.NewReader(job.Raw))
	dec.UseNumber()

	var payload map[string]interface{}
	if err := dec.Decode(&payload); err != nil {
		return job, fmt.Errorf("unparsable payload: %w", err)
	}

	job.Number = stringField(payload["number"])
	job.MessageID = stringField(payload["ID"])
	job.DeviceID = stringField(payload["deviceID"])

	if job.Number == "" || job.MessageID == "" || job.DeviceID == "" {
		return job, fmt.Errorf("missing required fields: number=%q ID=%q deviceID=%q",
			job.Number, job.MessageID, job.DeviceID)
	}
	return job, nil
}

func stringField(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		// A literal 0 counts as missing; the string "0" does not.
		if val.String() == "0" {
			return ""
		}
		return val.String()
	default:
		return ""
	}
}

// shortID returns the tail of a message id for compact log correlation.
func shortID(msgID string) string {
	if msgID == "" {
		return "?????"
	}
	if len(msgID) <= 5 {
		return msgID
	}
	return msgID[len(msgID)-5:]
}
