// validator.go — Cross-check captions against the screenshots on disk.
package assets

import (
	"fmt"
	"sort"
)

// ValidateCaptions reports caption keys that match no screenshot stem.
// Returns warnings (never fatal errors) since an unused caption is harmless.
func ValidateCaptions(captions CaptionMap, stems []string) []string {
	known := make(map[string]struct{}, len(stems))
	for _, s := range stems {
		known[s] = struct{}{}
	}

	var warnings []string
	for key := range captions {
		if _, ok := known[key]; !ok {
			warnings = append(warnings, fmt.Sprintf("caption %q matches no screenshot — ignored", key))
		}
	}
	sort.Strings(warnings)

	return warnings
}
