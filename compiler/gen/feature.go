package gen

var (
	// FeatureFallbackUpsert generates CreateOrUpdate as a lookup followed by
	// Update or Create instead of a single INSERT ... ON CONFLICT statement.
	FeatureFallbackUpsert = Feature{
		Name:        "fallback-upsert",
		Stage:       Stable,
		Default:     false,
		Description: "Generates CreateOrUpdate as find-then-write for databases without ON CONFLICT support",
	}

	// FeatureStrictRelations turns the relation diagnostics of entities with
	// composite keys into errors.
	FeatureStrictRelations = Feature{
		Name:        "strict-relations",
		Stage:       Beta,
		Default:     false,
		Description: "Fails generation when relations are declared on an entity with a composite key",
	}

	// FeatureSnapshot records a digest of every entity and skips rewriting
	// files whose entity did not change since the last run.
	FeatureSnapshot = Feature{
		Name:        "snapshot",
		Stage:       Experimental,
		Default:     false,
		Description: "Skips rewriting generated files whose entity declaration did not change",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureFallbackUpsert,
		FeatureStrictRelations,
		FeatureSnapshot,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change or go away.
	Experimental

	// Alpha features are complete but their behavior may still change.
	Alpha

	// Beta features are documented and not expected to change.
	Beta

	// Stable features have been in use for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the georm codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName looks a feature up by name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
