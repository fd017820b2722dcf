package carve

import (
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
)

// Config is the file and flag level description of a carving run.
type Config struct {
	Source         string `toml:"source"`
	Destination    string `toml:"destination"`
	Mode           string `toml:"mode"`
	Seams          int    `toml:"seams"`
	SeamColor      string `toml:"seam_color"`
	Window         string `toml:"window"`
	SobelThreshold int    `toml:"sobel_threshold"`
	BlurRadius     int    `toml:"blur_radius"`
	Preview        bool   `toml:"preview"`
	Workers        int    `toml:"workers"`
}

// DefaultConfig returns the configuration used when neither a file nor flags override it.
func DefaultConfig() Config {
	return Config{
		Source:      "-",
		Destination: "-",
		Mode:        ModeRemove.String(),
		SeamColor:   "#ff0000",
		Window:      WindowSymmetric.String(),
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, wrapError(KindIO, err, "unable to read config file %s", path)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, wrapError(KindUnsupported, err, "unable to parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, newError(KindUnsupported, "unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Validate checks every option that can be checked without looking at the image.
// The upper bound of Seams depends on the image width and is enforced by the Processor.
func (c Config) Validate() error {
	if c.Source == "" {
		return newError(KindUnsupported, "a source image is required")
	}
	if c.Destination == "" {
		return newError(KindUnsupported, "a destination is required")
	}
	if c.Seams < 0 {
		return newError(KindOutOfRange, "seam count %d is negative", c.Seams)
	}
	if c.SobelThreshold < 0 || c.SobelThreshold > 255 {
		return newError(KindOutOfRange, "sobel threshold %d outside [0, 255]", c.SobelThreshold)
	}
	if c.BlurRadius < 0 {
		return newError(KindOutOfRange, "blur radius %d is negative", c.BlurRadius)
	}
	if _, err := ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := ParseWindow(c.Window); err != nil {
		return err
	}
	if _, err := ParseColor(c.SeamColor); err != nil {
		return err
	}
	return nil
}

// Processor builds a Processor from a validated configuration.
func (c Config) Processor(logger *log.Logger) (*Processor, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	mode, _ := ParseMode(c.Mode)
	window, _ := ParseWindow(c.Window)
	seamColor, _ := ParseColor(c.SeamColor)

	return &Processor{
		Seams:          c.Seams,
		Mode:           mode,
		SeamColor:      seamColor,
		Window:         window,
		SobelThreshold: c.SobelThreshold,
		BlurRadius:     c.BlurRadius,
		Logger:         logger,
	}, nil
}

// ParseColor converts a hex colour ("#f00" or "#ff0000") into an opaque color.NRGBA.
// An empty string selects DefaultSeamColor.
func ParseColor(s string) (color.NRGBA, error) {
	if s == "" {
		return DefaultSeamColor, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, wrapError(KindUnsupported, err, "invalid seam color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}
