package config

import (
	"encoding/json"
	"os"
)

// Config holds runtime configuration for the local server and app behavior.
// Fields are loaded from a JSON file next to the binary and written back when
// the crop rectangle changes.
type Config struct {
	Debug bool `json:"debug"`
	// Local processing server
	ListenAddr  string `json:"listen_addr"`
	UploadDir   string `json:"upload_dir"`
	MaxUploadMB int64  `json:"max_upload_mb"`
	// Editor behavior
	DefaultQuality int `json:"default_quality"`
	DebounceMillis int `json:"debounce_millis"`

	// Crop rectangle persistence
	CropX int `json:"crop_x"`
	CropY int `json:"crop_y"`
	CropW int `json:"crop_w"`
	CropH int `json:"crop_h"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:          false,
		ListenAddr:     "127.0.0.1:49621",
		UploadDir:      "uploads",
		MaxUploadMB:    10,
		DefaultQuality: 85,
		DebounceMillis: 300,
		CropX:          0,
		CropY:          0,
		CropW:          0,
		CropH:          0,
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = "127.0.0.1:49621"
	}
	if c.UploadDir == "" {
		c.UploadDir = "uploads"
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = 10
	}
	if c.DefaultQuality < 1 || c.DefaultQuality > 100 {
		c.DefaultQuality = 85
	}
	if c.DebounceMillis <= 0 {
		c.DebounceMillis = 300
	}
	if c.CropW < 0 {
		c.CropW = 0
	}
	if c.CropH < 0 {
		c.CropH = 0
	}
	return nil
}

// Load attempts to read configuration from the given JSON file path. If the file does not
// exist it returns DefaultConfig(). On JSON error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	dec := json.NewDecoder(f)
	if err := dec.Decode(cfg); err != nil {
		return cfg, err
	}
	_ = cfg.Validate()
	return cfg, nil
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
