package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AssetsConfig points at the third-party front-end assets: the rich
// text editor loaded in the admin console and an optional Adobe Fonts
// kit injected on every page.
type AssetsConfig struct {
	TinyMCEScriptURL string `json:"tinymce_script_url" env:"TINYMCE_SCRIPT_URL"`
	TinyMCEAPIKey    string `json:"-" env:"TINYMCE_API_KEY"`
	AdobeFontsURL    string `json:"adobe_fonts_url" env:"ADOBE_FONTS_URL"`
	AdobeFontsKitID  string `json:"adobe_fonts_kit_id" env:"ADOBE_FONTS_KIT_ID"`
}

const editorFallbackScriptURL = "https://cdn.jsdelivr.net/npm/tinymce@6.8.3/tinymce.min.js"

// EditorScriptURL resolves the TinyMCE script source: an explicit
// override wins, then the Tiny Cloud CDN when an API key is present,
// then the keyless jsDelivr build.
func (a AssetsConfig) EditorScriptURL() string {
	if override := strings.TrimSpace(a.TinyMCEScriptURL); override != "" {
		return override
	}
	if key := a.EditorAPIKey(); key != "" {
		return fmt.Sprintf("https://cdn.tiny.cloud/1/%s/tinymce/6/tinymce.min.js", key)
	}
	return editorFallbackScriptURL
}

// EditorAPIKey extracts the TinyMCE API key. Dashboard exports often
// paste the whole credentials JSON blob instead of the bare key, so a
// value that looks like JSON is searched for the usual key fields
// before being taken verbatim.
func (a AssetsConfig) EditorAPIKey() string {
	raw := strings.TrimSpace(a.TinyMCEAPIKey)
	if raw == "" || !strings.HasPrefix(raw, "{") {
		return raw
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}
	for _, candidate := range []string{"apiKey", "api_key", "key", "n"} {
		if value, ok := parsed[candidate].(string); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}
	return raw
}

// FontsCSSURL resolves the Adobe Fonts stylesheet: an explicit URL
// wins over a kit ID; empty means no kit is configured.
func (a AssetsConfig) FontsCSSURL() string {
	if explicit := strings.TrimSpace(a.AdobeFontsURL); explicit != "" {
		return explicit
	}
	if kitID := strings.TrimSpace(a.AdobeFontsKitID); kitID != "" {
		return fmt.Sprintf("https://use.typekit.net/%s.css", kitID)
	}
	return ""
}
