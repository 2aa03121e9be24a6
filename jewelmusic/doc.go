// Package jewelmusic is the Go SDK for the JewelMusic platform API.
//
// A Client groups the platform's resources behind one authenticated
// transport:
//
//	client, err := jewelmusic.New(jewelmusic.Config{APIKey: "jm_live_..."})
//	if err != nil {
//		log.Fatal(err)
//	}
//	track, err := client.Tracks.Get(ctx, "trk_123")
//
// Failed calls return a *httpclient.Error classified by kind
// (authentication, validation, rate limit, ...); see the httpclient
// package for the predicates. Webhook signature verification lives in
// the webhook package.
package jewelmusic
