package gabanav

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/BrandonKowalski/gabanav/pkg/gabanav/transition"
)

// fileConfig mirrors the TOML layout:
//
//	window_title = "Library"
//	initial_path = "/"
//	min_pan_distance = 60.0
//	edge_width = 24.0
//
//	[default_transition]
//	kind = "slider"          # identity, modal, overlay, slider, reverse_slider, custom:<name>
//	edge_gesture = true
//	duration = "300ms"
//	curve = "ease_in_out"
type fileConfig struct {
	WindowTitle       string           `toml:"window_title"`
	Fullscreen        bool             `toml:"fullscreen"`
	LogPath           string           `toml:"log_path"`
	LogLevel          string           `toml:"log_level"`
	InitialPath       string           `toml:"initial_path"`
	MinPanDistance    *float64         `toml:"min_pan_distance"`
	EdgeWidth         *float64         `toml:"edge_width"`
	TouchDevice       string           `toml:"touch_device"`
	DefaultTransition transitionConfig `toml:"default_transition"`
}

type transitionConfig struct {
	Kind        string `toml:"kind"`
	EdgeGesture *bool  `toml:"edge_gesture"`
	Duration    string `toml:"duration"`
	Curve       string `toml:"curve"`
}

// LoadOptions reads options from a TOML file. Settings missing from the file
// keep their DefaultOptions values. customs names the builders that
// "custom:<name>" transition kinds may refer to.
func LoadOptions(path string, customs map[string]transition.Builder) (Options, error) {
	var cfg fileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Options{}, NewConfigurationError("decode "+path, err)
	}
	return cfg.options(md, customs)
}

// ParseOptions is LoadOptions for TOML already in memory.
func ParseOptions(data string, customs map[string]transition.Builder) (Options, error) {
	var cfg fileConfig
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Options{}, NewConfigurationError("decode", err)
	}
	return cfg.options(md, customs)
}

func (cfg fileConfig) options(md toml.MetaData, customs map[string]transition.Builder) (Options, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Options{}, NewConfigurationError("keys", fmt.Errorf("unknown settings: %s", strings.Join(keys, ", ")))
	}

	opts := DefaultOptions()

	if cfg.WindowTitle != "" {
		opts.WindowTitle = cfg.WindowTitle
	}
	if cfg.LogLevel != "" {
		opts.LogLevel = cfg.LogLevel
	}
	if cfg.InitialPath != "" {
		opts.InitialPath = cfg.InitialPath
	}
	opts.Fullscreen = cfg.Fullscreen
	opts.LogPath = cfg.LogPath
	opts.TouchDevice = cfg.TouchDevice

	if cfg.MinPanDistance != nil {
		if *cfg.MinPanDistance <= 0 {
			return Options{}, NewConfigurationError("min_pan_distance", fmt.Errorf("must be positive, got %v", *cfg.MinPanDistance))
		}
		opts.MinPanDistance = *cfg.MinPanDistance
	}
	if cfg.EdgeWidth != nil {
		if *cfg.EdgeWidth < 0 {
			return Options{}, NewConfigurationError("edge_width", fmt.Errorf("must not be negative, got %v", *cfg.EdgeWidth))
		}
		opts.EdgeWidth = *cfg.EdgeWidth
	}

	def, err := cfg.DefaultTransition.resolve(opts.DefaultTransition, customs)
	if err != nil {
		return Options{}, err
	}
	opts.DefaultTransition = def

	return opts, nil
}

func (tc transitionConfig) resolve(fallback transition.Resolved, customs map[string]transition.Builder) (transition.Resolved, error) {
	var req transition.Request

	if tc.Kind != "" {
		edge := true
		if tc.EdgeGesture != nil {
			edge = *tc.EdgeGesture
		}
		kind, err := transition.ParseKind(tc.Kind, edge, customs)
		if err != nil {
			return transition.Resolved{}, NewConfigurationError("default_transition.kind", err)
		}
		req = req.WithKind(kind)
	}

	if tc.Duration != "" {
		d, err := time.ParseDuration(tc.Duration)
		if err != nil || d < 0 {
			return transition.Resolved{}, NewConfigurationError("default_transition.duration", fmt.Errorf("invalid duration %q", tc.Duration))
		}
		req = req.WithDuration(d)
	}

	if tc.Curve != "" {
		c, err := transition.ParseCurve(tc.Curve)
		if err != nil {
			return transition.Resolved{}, NewConfigurationError("default_transition.curve", err)
		}
		req = req.WithCurve(c)
	}

	return transition.Resolve(req, fallback), nil
}
