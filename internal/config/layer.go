package config

// layer is one configuration source. A nil field means the source does not
// mention it; a non-nil field overrides whatever lower layers provided.
//
// Struct tags:
//   - json: key in the config file.
//   - env: variable name after [EnvPrefix] (caarlos0/env).
type layer struct {
	Port *uint16 `json:"port" env:"PORT"`
	Path *string `json:"path" env:"PATH"`
	Mode *string `json:"mode" env:"MODE"`
	Zone *int32  `json:"zone" env:"ZONE"`
	Area *string `json:"area" env:"AREA"`
}

func layerFromConfig(cfg Config) *layer {
	return &layer{
		Port: &cfg.Port,
		Path: &cfg.Path,
		Mode: &cfg.Mode,
		Zone: &cfg.Zone,
		Area: &cfg.Area,
	}
}

// resolve turns a merged layer into a Config. Fields still unset fall back to
// the zero value; in practice the defaults layer sets all of them.
func (l *layer) resolve() Config {
	var cfg Config
	if l.Port != nil {
		cfg.Port = *l.Port
	}
	if l.Path != nil {
		cfg.Path = *l.Path
	}
	if l.Mode != nil {
		cfg.Mode = *l.Mode
	}
	if l.Zone != nil {
		cfg.Zone = *l.Zone
	}
	if l.Area != nil {
		cfg.Area = *l.Area
	}
	return cfg
}
