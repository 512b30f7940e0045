// Package config reads the generator's TOML configuration file.
//
// A file describes one crate:
//
//	package = "google_drive3"
//	source = "drive:v3"
//	out_dir = "gen/drive3"
//	overwrite = true
//
//	[http]
//	max_retries = 3
//	timeout = "30s"
//
// Relative source and out_dir paths are resolved against the file's directory.
package config

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"

	"github.com/ggriffiniii/google-apis/internal/discovery"
)

// File is a parsed configuration file.
type File struct {
	Package   string `toml:"package" validate:"omitempty,crate_name"`
	Source    string `toml:"source"`
	OutDir    string `toml:"out_dir"`
	Overwrite *bool  `toml:"overwrite"`
	HTTP      HTTP   `toml:"http"`

	// Path is the file the configuration was read from.
	Path string `toml:"-"`
}

// HTTP configures description fetching.
type HTTP struct {
	MaxRetries *int     `toml:"max_retries" validate:"omitempty,gte=0,lte=10"`
	Timeout    Duration `toml:"timeout" validate:"gte=0"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

var crateName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("crate_name", func(fl validator.FieldLevel) bool {
		return crateName.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// Load reads and validates the configuration file at path.
func Load(path string) (*File, error) {
	var f File
	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.WithHint(
			errors.Newf("config %s: unknown keys: %s", path, strings.Join(keys, ", ")),
			"valid keys are package, source, out_dir, overwrite, http.max_retries and http.timeout")
	}
	if err := f.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	f.Path = path
	dir := filepath.Dir(path)
	f.OutDir = resolve(dir, f.OutDir)
	if !discovery.IsRemote(f.Source) {
		f.Source = resolve(dir, f.Source)
	}
	return &f, nil
}

// Validate checks field values.
func (f *File) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = fe.Namespace() + " failed " + fe.Tag()
	}
	return errors.Newf("invalid values: %s", strings.Join(msgs, "; "))
}

// DiscoveryOptions returns client options with the file's overrides applied to defaults.
func (f *File) DiscoveryOptions() discovery.Options {
	opts := discovery.DefaultOptions()
	if f.HTTP.MaxRetries != nil {
		opts.MaxRetries = *f.HTTP.MaxRetries
	}
	if f.HTTP.Timeout > 0 {
		opts.Timeout = time.Duration(f.HTTP.Timeout)
	}
	return opts
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
