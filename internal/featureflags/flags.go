package featureflags

// Flag names evaluated by the engine. Values come from the FEATURE_FLAGS
// config string, e.g. "discovery_shuffle=on,quota_bypass=10%".
const (
	// FlagDiscoveryShuffle randomizes candidate ordering when enabled.
	FlagDiscoveryShuffle = "discovery_shuffle"
	// FlagQuotaBypass skips daily quota enforcement for the bucketed users.
	FlagQuotaBypass = "quota_bypass"
)
