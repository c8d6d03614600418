package shipit

import (
	"context"
	"net/http"
)

// GetAgentsRequest searches pickup points; the filter keys are passed
// through unchanged.
func GetAgentsRequest(filter map[string]any) Request[*AgentsResponse] {
	return Request[*AgentsResponse]{
		Name:   "GetAgents",
		Method: http.MethodPost,
		Path:   "/v1/agents",
		Body:   rawBody(filter),
		Decode: decodeInto[AgentsResponse]("AgentsResponse"),
	}
}

// GetAgentByIDRequest fetches a single pickup point.
func GetAgentByIDRequest(id string) Request[*AgentResponse] {
	return Request[*AgentResponse]{
		Name:   "GetAgentByID",
		Method: http.MethodGet,
		Path:   pathf("/v1/agents", id),
		Decode: decodeInto[AgentResponse]("AgentResponse"),
	}
}

// AgentsResource looks up pickup points.
type AgentsResource struct {
	c *Connector
}

// Get searches pickup points matching filter.
func (r *AgentsResource) Get(ctx context.Context, filter map[string]any) (*AgentsResponse, error) {
	return Send(ctx, r.c, GetAgentsRequest(filter))
}

// GetByID returns the pickup point with the given id.
func (r *AgentsResource) GetByID(ctx context.Context, id string) (*AgentResponse, error) {
	return Send(ctx, r.c, GetAgentByIDRequest(id))
}
