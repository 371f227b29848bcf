package engine

// Status is the engine's native result code. StatusOK means the
// operation succeeded; everything else names the step that failed.
// An HTTP error status (404, 500) is not a transfer failure: the
// transfer succeeded and the body is whatever the server sent.
type Status int

const (
	StatusOK Status = iota
	StatusFailedInit
	StatusBadHandle
	StatusUnsupportedProtocol
	StatusURLMalformat
	StatusCouldntResolveHost
	StatusCouldntConnect
	StatusOperationTimedOut
	StatusSendError
	StatusRecvError
	StatusAbortedByCallback
)

var statusNames = map[Status]string{
	StatusOK:                  "no error",
	StatusFailedInit:          "engine initialization failed",
	StatusBadHandle:           "handle is closed or invalid",
	StatusUnsupportedProtocol: "unsupported URL scheme",
	StatusURLMalformat:        "URL is malformed",
	StatusCouldntResolveHost:  "could not resolve host",
	StatusCouldntConnect:      "could not connect to server",
	StatusOperationTimedOut:   "operation timed out",
	StatusSendError:           "failed sending request",
	StatusRecvError:           "failed receiving response body",
	StatusAbortedByCallback:   "transfer aborted by write callback",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown engine status"
}
