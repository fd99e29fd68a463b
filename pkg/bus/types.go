package bus

// ReplyJob is one inbound message delivery pulled off the external queue.
// Raw carries the untouched payload; the parsed fields are filled in by the
// responder after validation, so a job published by the transport may have
// only Raw and DeliveryID set.
type ReplyJob struct {
	Number     string `json:"number"`
	MessageID  string `json:"ID"`
	DeviceID   string `json:"deviceID"`
	DeliveryID string `json:"delivery_id,omitempty"`
	Raw        []byte `json:"-"`
}
