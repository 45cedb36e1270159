// Package config loads the dashboard configuration. Everything has a
// built-in default; a user file only overrides what it names.
package config

// Config controls startup defaults and appearance.
type Config struct {
	// Revset is the initial revision selection of the log.
	Revset string `toml:"revset"`
	// Editor overrides $EDITOR for free-text prompts.
	Editor string `toml:"editor"`
	// ScrollPadding keeps this many log rows visible around the
	// selection while scrolling. Shrinks near the ends of the log.
	ScrollPadding int              `toml:"scroll_padding"`
	AutoRefresh   AutoRefresh      `toml:"auto_refresh"`
	Colors        map[string]Color `toml:"colors"`
}

// AutoRefresh reloads the log when the repository changes on disk,
// e.g. after running jj in another terminal.
type AutoRefresh struct {
	Enabled    bool `toml:"enabled"`
	DebounceMs int  `toml:"debounce_ms"`
}

// Color accepts either a bare color value or a table with attributes:
//
//	"header label" = "blue"
//	"selection" = { bg = "#282a36", bold = true }
type Color struct {
	Fg            string `toml:"fg"`
	Bg            string `toml:"bg"`
	Bold          *bool  `toml:"bold"`
	Italic        *bool  `toml:"italic"`
	Underline     *bool  `toml:"underline"`
	Strikethrough *bool  `toml:"strikethrough"`
	Reverse       *bool  `toml:"reverse"`
}

func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		c.Fg = v
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		c.Bold = boolAttr(v, "bold")
		c.Italic = boolAttr(v, "italic")
		c.Underline = boolAttr(v, "underline")
		c.Strikethrough = boolAttr(v, "strikethrough")
		c.Reverse = boolAttr(v, "reverse")
	}
	return nil
}

func boolAttr(table map[string]any, key string) *bool {
	if b, ok := table[key].(bool); ok {
		return &b
	}
	return nil
}
