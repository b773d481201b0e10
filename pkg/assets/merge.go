// merge.go — Layer brand overrides onto defaults and validate colors.
package assets

import (
	"fmt"

	"github.com/codzuregroup/storeart/pkg/generator"
	"github.com/hashicorp/go-multierror"
)

// MergeBrand applies each override in order onto base. Only non-empty fields
// override, so later layers (CLI flags) win over earlier ones (brand file).
func MergeBrand(base Brand, overrides ...Brand) Brand {
	for _, over := range overrides {
		if over.AppName != "" {
			base.AppName = over.AppName
		}
		if over.Tagline != "" {
			base.Tagline = over.Tagline
		}
		if over.Primary != "" {
			base.Primary = over.Primary
		}
		if over.Accent != "" {
			base.Accent = over.Accent
		}
	}
	return base
}

// ResolvePalette parses the brand colors. Every invalid color is reported,
// not just the first.
func ResolvePalette(b Brand) (Palette, error) {
	var result *multierror.Error

	primary, err := generator.ParseColor(b.Primary)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("primary: %w", err))
	}
	accent, err := generator.ParseColor(b.Accent)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("accent: %w", err))
	}

	if err := result.ErrorOrNil(); err != nil {
		return Palette{}, err
	}
	return Palette{Primary: primary, Accent: accent}, nil
}
