// Package httpclient is the transport shared by every JewelMusic resource
// group. It attaches authentication and standard headers, serializes JSON
// and multipart bodies, retries transient failures, and translates HTTP
// status codes into the SDK's typed error taxonomy.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api.jewelmusic.art",
//	    Auth:    httpclient.BearerAuth("jm_live_..."),
//	    Retry:   httpclient.DefaultRetryConfig(),
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/tracks/abc",
//	})
//
// Errors carry their classification:
//
//	if httpclient.IsRateLimit(err) { ... }
package httpclient
