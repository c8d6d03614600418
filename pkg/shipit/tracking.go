package shipit

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentLinks bounds the fan-out of TrackingResource.Links.
const maxConcurrentLinks = 8

// GetTrackingLinkRequest reads the tracking page of one parcel.
func GetTrackingLinkRequest(trackingNumber string) Request[*TrackingLinkResponse] {
	return Request[*TrackingLinkResponse]{
		Name:   "GetTrackingLink",
		Method: http.MethodGet,
		Path:   pathf("/v1/tracking-link", trackingNumber),
		Decode: decodeInto[TrackingLinkResponse]("TrackingLinkResponse"),
	}
}

// QueryTrackingEventsRequest searches tracking events.
func QueryTrackingEventsRequest(query map[string]any) Request[*TrackingEventResponse] {
	return Request[*TrackingEventResponse]{
		Name:   "QueryTrackingEvents",
		Method: http.MethodPost,
		Path:   "/v1/query-tracking-events",
		Body:   rawBody(query),
		Decode: decodeInto[TrackingEventResponse]("TrackingEventResponse"),
	}
}

// TrackingResource reads tracking events and public tracking links.
type TrackingResource struct {
	c *Connector
}

// Query returns the tracking events matching query.
func (r *TrackingResource) Query(ctx context.Context, query map[string]any) (*TrackingEventResponse, error) {
	return Send(ctx, r.c, QueryTrackingEventsRequest(query))
}

// Link returns the tracking page of trackingNumber.
func (r *TrackingResource) Link(ctx context.Context, trackingNumber string) (*TrackingLinkResponse, error) {
	return Send(ctx, r.c, GetTrackingLinkRequest(trackingNumber))
}

// Links fetches the tracking link of every number concurrently. Results
// are in the order of trackingNumbers; the first failure cancels the rest
// and is returned alone.
func (r *TrackingResource) Links(ctx context.Context, trackingNumbers ...string) ([]*TrackingLinkResponse, error) {
	results := make([]*TrackingLinkResponse, len(trackingNumbers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLinks)
	for i, number := range trackingNumbers {
		g.Go(func() error {
			link, err := r.Link(gctx, number)
			if err != nil {
				return err
			}
			results[i] = link
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
