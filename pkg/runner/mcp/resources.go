package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/glossary/pkg/catalog"
)

func registerResources(srv *server.MCPServer, svc *catalog.Service) {
	srv.AddResource(leaderboardsResource(), leaderboardsHandler(svc))
	srv.AddResourceTemplate(recipeTemplate(), recipeHandler(svc))
}

func leaderboardsResource() mcp.Resource {
	return mcp.NewResource(
		"glossary://leaderboards",
		"Leaderboards",
		mcp.WithResourceDescription("Top 5 ingredients, authors and most complex recipes."),
		mcp.WithMIMEType("application/json"),
	)
}

func leaderboardsHandler(svc *catalog.Service) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		l, err := svc.TopLists(ctx)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, l)
	}
}

func recipeTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		"glossary://recipes/{id}",
		"Recipe Details",
		mcp.WithTemplateDescription("Detailed information about a single recipe."),
		mcp.WithTemplateMIMEType("application/json"),
	)
}

func recipeHandler(svc *catalog.Service) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := templateArg(request.Params.Arguments, "id")
		if id == "" {
			return nil, fmt.Errorf("recipe id is required")
		}

		detail, err := svc.Recipe(ctx, id)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{"recipe": detail})
	}
}

// templateArg reads a matched URI template variable, which arrives either as
// a string or a single-element list.
func templateArg(args map[string]any, name string) string {
	switch v := args[name].(type) {
	case string:
		return strings.TrimSpace(v)
	case []string:
		if len(v) > 0 {
			return strings.TrimSpace(v[0])
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
