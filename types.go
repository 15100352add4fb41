package waitly

// EntrySubmission describes a registrant to add to the waitlist. Email
// is required; it is lower-cased and trimmed before transmission. The
// remaining fields are passed through as-is.
type EntrySubmission struct {
	Email          string
	ReferredByCode string
	UTM            map[string]string
	Metadata       map[string]any
}

// Entry is the created registrant record as returned by the API. The
// client does not deep-validate it.
type Entry struct {
	ID    string
	Email string
}
