package submitter

// Submitter is whoever performs a submission, identified by address.
type Submitter struct {
	ID     int64
	IP     string
	Banned bool
}
