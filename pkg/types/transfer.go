package types

// OpKind identifies a file operation requested by the user.
type OpKind int

const (
	OpCopy OpKind = iota
	OpMove
	OpDelete
	OpRename
	OpMkdir
)

// String returns the operation name as shown in status messages.
func (k OpKind) String() string {
	switch k {
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpDelete:
		return "delete"
	case OpRename:
		return "rename"
	case OpMkdir:
		return "mkdir"
	default:
		return "unknown"
	}
}

// TransferRequest is the ephemeral value built for one function-key press.
// Sources come from the active panel's selection; DestDir is the other
// panel's current directory where the operation takes one.
type TransferRequest struct {
	Kind    OpKind
	Sources []string
	DestDir string
	NewName string // rename and mkdir only
}

// TransferResult records the outcome for a single item of a batch.
type TransferResult struct {
	Source      string
	Destination string
	Done        bool
	Error       error
}

// Failed returns the subset of results that carry an error.
func Failed(results []TransferResult) []TransferResult {
	var failed []TransferResult
	for _, r := range results {
		if r.Error != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
