package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func sourceProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file, or an http, https or file URL",
	}
}

func integerProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// withOutput adds the properties shared by every tool that produces an image.
func withOutput(props map[string]interface{}) map[string]interface{} {
	props["output"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional path to write the result to. When omitted the result is returned base64-encoded",
	}
	props["format"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"png", "jpeg", "gif", "bmp", "tiff", "webp"},
		"description": "Optional output format. Defaults to the output file extension, then the source format",
	}
	props["quality"] = map[string]interface{}{
		"type":        "integer",
		"description": "Optional quality for lossy formats, 1-100",
	}
	return props
}

func rectProperties(props map[string]interface{}) map[string]interface{} {
	props["x"] = integerProperty("Left edge X coordinate (0-based)")
	props["y"] = integerProperty("Top edge Y coordinate (0-based)")
	props["width"] = integerProperty("Rectangle width in pixels")
	props["height"] = integerProperty("Rectangle height in pixels")
	return props
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Loading and Metadata
		{
			Name:        "bitmap_load",
			Description: "Load an image from a file or URL in any supported format (BMP, PNG, GIF, JPEG, TIFF, WebP, SVG) and return its format, dimensions, pixel layout and frame count.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
				},
				"required": []string{"source"},
			},
		},

		// Pixel Access
		{
			Name:        "bitmap_sample_pixel",
			Description: "Get the exact color at a pixel, with its hex, HSL, luminance and nearest named color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
					"x":      integerProperty("X coordinate (0-based, from left)"),
					"y":      integerProperty("Y coordinate (0-based, from top)"),
					"frame":  integerProperty("Optional frame index for multi-frame images. Default 0"),
				},
				"required": []string{"source", "x", "y"},
			},
		},
		{
			Name:        "bitmap_extract_alpha",
			Description: "Return the alpha channel of a 32 bits per pixel image as base64, one byte per pixel in row order.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
				},
				"required": []string{"source"},
			},
		},

		// Color Analysis
		{
			Name:        "bitmap_color_info",
			Description: "Count the distinct colors of the first frame and list the most frequent ones.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
					"top":    integerProperty("Number of most frequent colors to list. Default 10, 0 lists all"),
				},
				"required": []string{"source"},
			},
		},
		{
			Name:        "bitmap_contains_color",
			Description: "Check whether any pixel of the first frame exactly matches a color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Color name (e.g. \"red\") or hex code (#RGB, #RRGGBB, #AARRGGBB)",
					},
				},
				"required": []string{"source", "color"},
			},
		},

		// Transforms
		{
			Name:        "bitmap_rotate_flip",
			Description: "Rotate every frame clockwise by a multiple of 90 degrees, then flip it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutput(map[string]interface{}{
					"source": sourceProperty(),
					"rotation": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"none", "90", "180", "270"},
						"description": "Clockwise rotation. Default none",
					},
					"flip": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"none", "horizontal", "vertical", "both"},
						"description": "Flip applied after rotation. Default none",
					},
				}),
				"required": []string{"source"},
			},
		},
		{
			Name:        "bitmap_resize",
			Description: "Resize every frame to exactly the given width and height.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutput(map[string]interface{}{
					"source": sourceProperty(),
					"width":  integerProperty("New width in pixels"),
					"height": integerProperty("New height in pixels"),
				}),
				"required": []string{"source", "width", "height"},
			},
		},
		{
			Name:        "bitmap_redact",
			Description: "Fill a rectangle with a solid color in every frame. Pixels outside the rectangle are unchanged.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutput(rectProperties(map[string]interface{}{
					"source": sourceProperty(),
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Fill color name or hex code. Default black",
					},
				})),
				"required": []string{"source", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "bitmap_crop",
			Description: "Cut a rectangle out of every frame. The rectangle is clipped to the image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutput(rectProperties(map[string]interface{}{
					"source": sourceProperty(),
				})),
				"required": []string{"source", "x", "y", "width", "height"},
			},
		},
		{
			Name:        "bitmap_convert",
			Description: "Re-encode an image in another format and optionally re-pack its pixels in another layout.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": withOutput(map[string]interface{}{
					"source": sourceProperty(),
					"layout": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"RGB24", "BGR24", "RGBA32", "ARGB32", "BGRA32", "ABGR32", "Gray8", "Mono1"},
						"description": "Optional pixel layout",
					},
				}),
				"required": []string{"source"},
			},
		},

		// Multi-frame
		{
			Name:        "bitmap_multiframe",
			Description: "Concatenate the frames of several images into one multi-page TIFF or animated GIF.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"sources": map[string]interface{}{
						"type":        "array",
						"items":       sourceProperty(),
						"description": "Images in frame order",
					},
					"container": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"tiff", "gif"},
						"description": "Container format",
					},
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to write the result to",
					},
				},
				"required": []string{"sources", "container"},
			},
		},
		{
			Name:        "bitmap_split_frames",
			Description: "Split a multi-frame image into single-frame images, written to a directory or returned base64-encoded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"source": sourceProperty(),
					"output_dir": map[string]interface{}{
						"type":        "string",
						"description": "Optional directory for frame-NNN files",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Optional format for each frame. Defaults to the source format",
					},
				},
				"required": []string{"source"},
			},
		},

		// OCR
		{
			Name:        "bitmap_ocr",
			Description: "Extract text with word bounding boxes using Tesseract OCR, from the whole first frame or from a rectangle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": rectProperties(map[string]interface{}{
					"source": sourceProperty(),
					"language": map[string]interface{}{
						"type":        "string",
						"description": "Tesseract language code. Default from configuration, normally eng",
					},
				}),
				"required": []string{"source"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
