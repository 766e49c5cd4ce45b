package study

// DefaultKnownStreakThreshold is the number of consecutive correct answers
// after which a card is considered known.
const DefaultKnownStreakThreshold = 3

// Params defines the configurable parameters of the mastery rule.
type Params struct {
	// KnownStreakThreshold is the correct streak at which a card becomes known.
	KnownStreakThreshold int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	KnownStreakThreshold int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		KnownStreakThreshold: DefaultKnownStreakThreshold,
	}
}

// NewParams creates a new Params instance with custom configuration.
// Zero or negative values keep the default.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()
	if config.KnownStreakThreshold > 0 {
		params.KnownStreakThreshold = config.KnownStreakThreshold
	}
	return params
}
