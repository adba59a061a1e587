package server

import (
	"context"
	"encoding/json"
	"slices"
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	expectedTools := []string{
		"bitmap_load",
		"bitmap_sample_pixel",
		"bitmap_extract_alpha",
		"bitmap_color_info",
		"bitmap_contains_color",
		"bitmap_rotate_flip",
		"bitmap_resize",
		"bitmap_redact",
		"bitmap_crop",
		"bitmap_convert",
		"bitmap_multiframe",
		"bitmap_split_frames",
		"bitmap_ocr",
	}

	tools := GetToolDefinitions()
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		if _, dup := toolMap[tool.Name]; dup {
			t.Errorf("duplicate tool %s", tool.Name)
		}
		toolMap[tool.Name] = tool
	}
	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range GetToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema["type"] != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", tool.InputSchema["type"])
			}

			props, ok := tool.InputSchema["properties"].(map[string]interface{})
			if !ok {
				t.Fatal("InputSchema properties should be a map")
			}
			required, ok := tool.InputSchema["required"].([]string)
			if !ok || len(required) == 0 {
				t.Fatal("InputSchema should list required properties")
			}
			for _, r := range required {
				if _, ok := props[r]; !ok {
					t.Errorf("required property %q is not defined", r)
				}
			}
			if tool.Name != "bitmap_multiframe" && !slices.Contains(required, "source") {
				t.Error("tool should require 'source'")
			}
		})
	}
}

func TestToolDefinitions_Dispatch(t *testing.T) {
	// Every listed tool must be known to executeTool: with empty arguments it
	// may fail, but never as an unknown tool.
	s := newTestServer(t)
	for _, tool := range GetToolDefinitions() {
		_, err := s.executeTool(context.Background(), tool.Name, json.RawMessage(`{}`))
		if err != nil && err.Error() == "unknown tool: "+tool.Name {
			t.Errorf("%s is listed but not dispatched", tool.Name)
		}
	}
	if _, err := s.executeTool(context.Background(), "bitmap_unknown", json.RawMessage(`{}`)); err == nil {
		t.Error("unknown tools should fail")
	}
}

func TestToolDefinitions_JSON(t *testing.T) {
	data, err := json.Marshal(GetToolDefinitions())
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, d := range decoded {
		if _, ok := d["inputSchema"]; !ok {
			t.Errorf("%v: inputSchema key missing", d["name"])
		}
	}
}
