package mcp

import "github.com/mark3labs/mcp-go/mcp"

func listCategoriesTool() mcp.Tool {
	return mcp.NewTool("list_categories",
		mcp.WithDescription("List block categories with their display labels and block counts."),
	)
}

func listBlocksTool() mcp.Tool {
	return mcp.NewTool("list_blocks",
		mcp.WithDescription("List published blocks, optionally filtered by category, tier, or style. Filters combine with AND."),
		mcp.WithString("category",
			mcp.Description("Category id to filter by, e.g. \"hero\" or \"pricing\"."),
		),
		mcp.WithString("tier",
			mcp.Description("Access tier to filter by: \"free\" or \"pro\"."),
		),
		mcp.WithString("style",
			mcp.Description("Visual style to filter by: \"minimalist\", \"high_brand\", or \"neo_industrial\"."),
		),
	)
}

func searchBlocksTool() mcp.Tool {
	return mcp.NewTool("search_blocks",
		mcp.WithDescription("Search blocks by keyword over name, description, and slug. Case-insensitive."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search term."),
		),
	)
}

func getBlockTool() mcp.Tool {
	return mcp.NewTool("get_block",
		mcp.WithDescription("Get full details for one block: metadata, source, parsed props, available style variants, and install commands."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Block slug, e.g. \"hero-gradient\"."),
		),
	)
}

func getBlockSourceTool() mcp.Tool {
	return mcp.NewTool("get_block_source",
		mcp.WithDescription("Get the raw source for one block, optionally in a specific visual style. Missing variants fall back to the base source."),
		mcp.WithString("slug",
			mcp.Required(),
			mcp.Description("Block slug."),
		),
		mcp.WithString("style",
			mcp.Description("Visual style variant to fetch. Defaults to \"minimalist\"."),
		),
	)
}

func getThemesTool() mcp.Tool {
	return mcp.NewTool("get_themes",
		mcp.WithDescription("List the visual styles with their CSS variable maps."),
	)
}
