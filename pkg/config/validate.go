package config

import (
	"slices"

	"github.com/alecthomas/chroma/v2/styles"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/matzehuels/oaiview/pkg/errors"
	"github.com/matzehuels/oaiview/pkg/xmltree"
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Defaults.Validate(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "defaults")
	}
	for _, name := range c.Names() {
		ep := c.Endpoints[name]
		if err := ep.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "endpoints.%s", name)
		}
	}
	return nil
}

// Validate validates the defaults section.
func (d *Defaults) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.RankDir, validation.Required, validation.By(rankDir)),
		validation.Field(&d.ImageFormat, validation.Required, validation.In("png", "svg", "jpg", "jpeg")),
		validation.Field(&d.Style, validation.Required, validation.By(knownStyle)),
		validation.Field(&d.MaxRequests, validation.Min(0)),
		validation.Field(&d.Retries, validation.Min(0), validation.Max(32)),
		validation.Field(&d.Timeout, validation.Min(int64(0))),
	)
}

// Validate validates an endpoint entry. The format name is free-form.
func (e *Endpoint) Validate() error {
	return validation.ValidateStruct(e,
		validation.Field(&e.URL, validation.Required, validation.By(func(v any) error {
			return errors.ValidateEndpoint(v.(string))
		})),
	)
}

func knownStyle(v any) error {
	s, _ := v.(string)
	if s == "" || slices.Contains(styles.Names(), s) {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "unknown style %q", s)
}

// rankDir accepts what the --rankdir flag accepts.
func rankDir(v any) error {
	s, _ := v.(string)
	_, err := xmltree.ParseRankDir(s)
	return err
}
