package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/glossary/pkg/catalog"
)

func registerTools(srv *server.MCPServer, svc *catalog.Service) {
	srv.AddTool(listRecipesTool(), listRecipesHandler(svc))
	srv.AddTool(getRecipeTool(), getRecipeHandler(svc))
	srv.AddTool(authorRecipesTool(), authorRecipesHandler(svc))
	srv.AddTool(topListsTool(), topListsHandler(svc))
	srv.AddTool(listIngredientsTool(), listIngredientsHandler(svc))
	srv.AddTool(recipeCountTool(), recipeCountHandler(svc))
}

func listRecipesTool() mcp.Tool {
	return mcp.NewTool(
		"list_recipes",
		mcp.WithDescription("List one page of recipes, optionally sorted, searched and filtered by ingredients."),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.Min(1),
		),
		mcp.WithString("sort",
			mcp.Description("Sort field."),
			mcp.Enum("name", "author", "ingredients", "skill"),
		),
		mcp.WithString("order",
			mcp.Description("Sort order."),
			mcp.Enum("asc", "desc"),
		),
		mcp.WithString("search",
			mcp.Description("Free-text search applied by the service."),
		),
		mcp.WithString("ingredients",
			mcp.Description("Comma separated ingredient names every recipe must contain."),
		),
	)
}

func listRecipesHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Page        int    `json:"page"`
			Sort        string `json:"sort"`
			Order       string `json:"order"`
			Search      string `json:"search"`
			Ingredients string `json:"ingredients"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		order := strings.ToLower(strings.TrimSpace(args.Order))
		if order != "" && order != "asc" && order != "desc" {
			return mcp.NewToolResultError(fmt.Sprintf("unknown order %q (expected asc or desc)", args.Order)), nil
		}

		page, err := svc.ListRecipes(ctx, catalog.ListOptions{
			Page:        args.Page,
			Sort:        args.Sort,
			Descending:  order == "desc",
			Search:      args.Search,
			Ingredients: strings.Split(args.Ingredients, ","),
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(page)
	}
}

func getRecipeTool() mcp.Tool {
	return mcp.NewTool(
		"get_recipe",
		mcp.WithDescription("Fetch a recipe's details, including similar recipes."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Recipe identifier."),
		),
	)
}

func getRecipeHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		detail, err := svc.Recipe(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(detail)
	}
}

func authorRecipesTool() mcp.Tool {
	return mcp.NewTool(
		"author_recipes",
		mcp.WithDescription("List one page of an author's recipes along with their recipe count."),
		mcp.WithString("author",
			mcp.Required(),
			mcp.Description("Author name, e.g. Jane Doe."),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number, starting at 1."),
			mcp.Min(1),
		),
	)
}

func authorRecipesHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		author, err := request.RequireString("author")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		page := request.GetInt("page", 1)

		out, err := svc.AuthorRecipes(ctx, author, page)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(out)
	}
}

func topListsTool() mcp.Tool {
	return mcp.NewTool(
		"top_lists",
		mcp.WithDescription("Top 5 most common ingredients, most prolific authors and most complex recipes."),
	)
}

func topListsHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		l, err := svc.TopLists(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(l)
	}
}

func listIngredientsTool() mcp.Tool {
	return mcp.NewTool(
		"list_ingredients",
		mcp.WithDescription("List every ingredient name that can be used as a filter."),
	)
}

func listIngredientsHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := svc.Ingredients(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"ingredients": items,
			"count":       len(items),
		})
	}
}

func recipeCountTool() mcp.Tool {
	return mcp.NewTool(
		"recipe_count",
		mcp.WithDescription("Total number of recipes in the catalog."),
	)
}

func recipeCountHandler(svc *catalog.Service) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n, err := svc.Count(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]int{"count": n})
	}
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return result, nil
}
