// Package scoring computes multi-dimensional resume quality scores and
// combines them into an overall 0-100 score and letter grade via role-specific
// weight profiles.
package scoring

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-scorer/internal/types"
)

// roleProfiles is the registry of built-in role weight profiles for the
// 4-axis PRO scorer. Every profile sums to 100.
var roleProfiles = map[string]types.WeightProfile{
	"software_engineer": {
		types.ComponentContentQuality:   25,
		types.ComponentATSCompatibility: 40,
		types.ComponentFormatStructure:  15,
		types.ComponentImpactMetrics:    20,
	},
	"product_manager": {
		types.ComponentContentQuality:   50,
		types.ComponentATSCompatibility: 20,
		types.ComponentFormatStructure:  10,
		types.ComponentImpactMetrics:    20,
	},
	"data_scientist": {
		types.ComponentContentQuality:   30,
		types.ComponentATSCompatibility: 35,
		types.ComponentFormatStructure:  10,
		types.ComponentImpactMetrics:    25,
	},
	"designer": {
		types.ComponentContentQuality:   40,
		types.ComponentATSCompatibility: 20,
		types.ComponentFormatStructure:  30,
		types.ComponentImpactMetrics:    10,
	},
	"marketing": {
		types.ComponentContentQuality:   45,
		types.ComponentATSCompatibility: 20,
		types.ComponentFormatStructure:  15,
		types.ComponentImpactMetrics:    20,
	},
}

// defaultProfile applies when the role is unknown. Keeping an explicit default
// avoids silent zero-weight lookups.
var defaultProfile = types.WeightProfile{
	types.ComponentContentQuality:   35,
	types.ComponentATSCompatibility: 30,
	types.ComponentFormatStructure:  15,
	types.ComponentImpactMetrics:    20,
}

// RoleWeights returns the weight profile for a role. Role names are matched
// case-insensitively with spaces and hyphens treated as underscores; unknown
// roles get the default profile. The returned profile is a copy the caller may
// mutate.
func RoleWeights(role string) types.WeightProfile {
	key := strings.ToLower(strings.TrimSpace(role))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	if profile, ok := roleProfiles[key]; ok {
		return profile.Clone()
	}
	return defaultProfile.Clone()
}

// Roles lists the registered role names in stable order.
func Roles() []string {
	names := make([]string, 0, len(roleProfiles))
	for name := range roleProfiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
