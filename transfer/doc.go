// Package transfer provides a minimal HTTP GET client on top of the
// process-wide transfer engine.
//
// A Client owns exactly one engine handle. Constructing the first Client
// initializes the engine; closing the last one releases its pooled
// connections. The handle is reusable: every Get overwrites the previous
// configuration rather than accumulating it.
//
// Basic Usage:
//
//	client, err := transfer.NewClient(
//	    transfer.WithTimeout(30 * time.Second),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	body, err := client.Get(context.Background(), "https://example.com/", map[string]string{
//	    "Accept": "text/html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(body)
//
// Errors:
//
// Every failure is returned as a *Error carrying a message and, when the
// failure came out of the engine, its status code. An HTTP error status
// (404, 500) is not a failure; the transfer succeeded and Get returns
// whatever body the server sent.
//
// Ownership:
//
// Handoff relocates the handle to a new Client and leaves the old one
// empty; an empty Client rejects every operation with a usage error.
// Close releases the handle exactly once.
//
// Thread Safety:
//
// A Client holds mutable per-transfer state on its handle and is NOT
// safe for concurrent use. Serialize calls to Get, or use one Client per
// goroutine. Constructing clients concurrently is safe; the engine
// initializes exactly once.
package transfer
