// Package waitly provides a Go client SDK for the Waitly
// waitlist-management API.
//
// The client wraps three remote operations — creating entries, reading
// the aggregate entry count, and checking email existence — behind a
// request executor with per-request timeouts, exponential-backoff
// retries, and normalized errors.
//
// Basic usage:
//
//	client, err := waitly.New("wl_123", "sk_live_abc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	entry, err := client.CreateEntry(ctx, waitly.EntrySubmission{
//	    Email: "ada@example.com",
//	})
//	if err != nil {
//	    var werr *waitly.Error
//	    if errors.As(err, &werr) && werr.Code == waitly.CodeDuplicateEntry {
//	        // already signed up
//	    }
//	}
//
//	count, err := client.EntryCount(ctx)
package waitly
