package server

// Method describes one RPC method for the describe call, so hosts can
// discover the widget surface without out-of-band documentation.
type Method struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	ParamSchema map[string]interface{} `json:"paramSchema,omitempty"`
}

// MethodDefinitions returns the widget method catalog.
func MethodDefinitions() []Method {
	return []Method{
		{
			Name: "widget/create",
			Description: "Create a widget instance from an image source and lens parameters. " +
				"Returns the instance key and the effective (clamped) configuration.",
			ParamSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"image_url": map[string]interface{}{
						"type":        "string",
						"description": "Web URL or base64 data URL of the image",
					},
					"image_base64": map[string]interface{}{
						"type":        "string",
						"description": "Base64-encoded PNG, JPEG or GIF bytes",
					},
					"pixels": map[string]interface{}{
						"type":        "object",
						"description": "Raw pixel buffer: width, height, channels (3 or 4), data_base64",
					},
					"lens_size": map[string]interface{}{
						"type":        "integer",
						"description": "Lens diameter in display pixels (50-500, default 150)",
						"default":     150,
					},
					"zoom_level": map[string]interface{}{
						"type":        "number",
						"description": "Magnification factor (1.0-20.0, default 2.0)",
						"default":     2.0,
					},
					"download_format": map[string]interface{}{
						"type":        "string",
						"description": "Export format: jpg or png (default jpg)",
						"default":     "jpg",
					},
					"lens_shape": map[string]interface{}{
						"type":        "string",
						"description": "Lens outline: circle or square (default circle)",
						"default":     "circle",
					},
					"key": map[string]interface{}{
						"type":        "string",
						"description": "Instance key, unique per concurrently displayed widget; generated when omitted",
					},
					"display_width": map[string]interface{}{
						"type":        "integer",
						"description": "On-screen image width; defaults to the natural width",
					},
					"display_height": map[string]interface{}{
						"type":        "integer",
						"description": "On-screen image height; defaults to the natural height",
					},
				},
			},
		},
		{
			Name: "widget/event",
			Description: "Apply one input event: move {x,y} in display coordinates, " +
				"wheel {delta} (sign selects zoom direction), or hover_end. " +
				"Returns the hovering flag and the effective zoom level.",
			ParamSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key":       map[string]interface{}{"type": "string"},
					"move":      map[string]interface{}{"type": "object"},
					"wheel":     map[string]interface{}{"type": "object"},
					"hover_end": map[string]interface{}{"type": "boolean"},
				},
				"required": []string{"key"},
			},
		},
		{
			Name: "widget/set_zoom",
			Description: "Set the zoom level directly (host slider sync). Values outside " +
				"1.0-20.0 are clamped; re-sending the current value is a no-op.",
			ParamSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"key":        map[string]interface{}{"type": "string"},
					"zoom_level": map[string]interface{}{"type": "number"},
				},
				"required": []string{"key", "zoom_level"},
			},
		},
		{
			Name:        "widget/render_frame",
			Description: "Render the current display view (base image plus lens while hovering) as base64 PNG.",
			ParamSchema: keyOnlySchema(),
		},
		{
			Name: "widget/export",
			Description: "Flatten the base image and lens at native resolution and return the " +
				"download artifact in the configured format. Falls back to a centered lens " +
				"when no pointer position was ever recorded.",
			ParamSchema: keyOnlySchema(),
		},
		{
			Name:        "widget/destroy",
			Description: "Remove a widget instance and free its image.",
			ParamSchema: keyOnlySchema(),
		},
		{
			Name:        "widget/list",
			Description: "List the keys of all registered widget instances.",
		},
	}
}

func keyOnlySchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"key": map[string]interface{}{
				"type":        "string",
				"description": "Widget instance key",
			},
		},
		"required": []string{"key"},
	}
}

// handleDescribe returns the method catalog.
func (s *Server) handleDescribe(req *Request) *Response {
	return &Response{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  map[string]interface{}{"methods": MethodDefinitions()},
	}
}
