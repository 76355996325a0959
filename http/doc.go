// Package http is a minimal HTTP/1.1 client that writes requests directly
// onto a socket and parses the raw reply.
//
// Every call opens a fresh TCP connection (or Unix socket), sends one
// request, reads until the server closes the connection and closes it
// again. There is no pooling, TLS, redirect handling or chunked decoding:
// what the server sent is what the Response holds.
//
// Basic Usage:
//
//	client := http.NewClient()
//
//	resp, err := client.Get(context.Background(), "http://example.com/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("Status: %d\n", resp.StatusCode)
//	for _, h := range resp.Headers {
//	    fmt.Printf("%s: %s\n", h.Name, h.Value)
//	}
//
// Form Example:
//
//	payload, err := http.ParsePayload(`{"user": "ana", "lang": "go"}`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	resp, err := client.Post(ctx, "http://example.com/login", payload)
//
// The payload members are sent in order as application/x-www-form-urlencoded
// fields. Values are not percent-encoded.
//
// Status codes:
//
// A peer that closes without sending anything, or a status line without a
// numeric code, is reported as StatusFallback (500) rather than an error.
// Connection failures are returned as errors; use errors.Is with the kinds
// exported here to tell them apart.
//
// Thread Safety:
//
// Client holds configuration only and is safe for concurrent use.
package http
