package responder

// Result classifies what processing one job amounted to. The worker loop
// switches on it for logging; nothing about a job ever propagates past that
// loop.
type Result int

const (
	// ResultInvalid: payload unparsable or a required field missing.
	ResultInvalid Result = iota
	// ResultArchived: number already received its one-time reply.
	ResultArchived
	// ResultDuplicate: this exact message id was seen before.
	ResultDuplicate
	// ResultAlreadyHandled: another worker holds or held the claim for
	// this number (step advanced or claim lost).
	ResultAlreadyHandled
	// ResultReplied: the one-time reply sequence ran for this job.
	ResultReplied
	// ResultStoreError: the shared store failed mid-decision; the job is
	// abandoned without completing the sequence.
	ResultStoreError
)

func (r Result) String() string {
	switch r {
	case ResultInvalid:
		return "invalid"
	case ResultArchived:
		return "archived"
	case ResultDuplicate:
		return "duplicate"
	case ResultAlreadyHandled:
		return "already-handled"
	case ResultReplied:
		return "replied"
	case ResultStoreError:
		return "store-error"
	}
	return "unknown"
}
