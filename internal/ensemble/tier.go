package ensemble

// SpecialistKind identifies one quality dimension evaluated by a specialist.
type SpecialistKind int

const (
	KindVision SpecialistKind = iota
	KindLayout
	KindSemantic
	KindTextExtract
	KindBrand
	KindAccessibility
)

// AllKinds lists every defined specialist kind in declaration order.
var AllKinds = []SpecialistKind{
	KindVision,
	KindLayout,
	KindSemantic,
	KindTextExtract,
	KindBrand,
	KindAccessibility,
}

func (k SpecialistKind) String() string {
	names := [...]string{
		"vision",
		"layout",
		"semantic",
		"text-extract",
		"brand",
		"accessibility",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// ParseKind maps a kind name back to its SpecialistKind.
// The second return is false for unrecognized names.
func ParseKind(name string) (SpecialistKind, bool) {
	for _, k := range AllKinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// MarshalText implements encoding.TextMarshaler so kinds serialize as their
// names in JSON and YAML.
func (k SpecialistKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are
// rejected so a typo in a weight table surfaces at load time.
func (k *SpecialistKind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return &UnknownKindError{Name: string(text)}
	}
	*k = parsed
	return nil
}

// UnknownKindError reports an unrecognized specialist kind name.
type UnknownKindError struct {
	Name string
}

func (e *UnknownKindError) Error() string {
	return "unknown specialist kind: " + e.Name
}

// Tier is a named specialist selection trading cost and latency for accuracy.
type Tier int

const (
	TierFast Tier = iota
	TierBalanced
	TierPremium
)

func (t Tier) String() string {
	names := [...]string{"fast", "balanced", "premium"}
	if int(t) < len(names) {
		return names[t]
	}
	return "unknown"
}

// AllTiers lists every defined tier in increasing cost order.
var AllTiers = []Tier{TierFast, TierBalanced, TierPremium}

// tierSpecialists is the static tier selection table. Each set is ordered and
// strictly grows with the tier.
var tierSpecialists = map[Tier][]SpecialistKind{
	TierFast:     {KindVision},
	TierBalanced: {KindVision, KindLayout, KindTextExtract},
	TierPremium:  {KindVision, KindLayout, KindSemantic, KindTextExtract, KindBrand},
}

// ParseTier maps a tier name to a Tier. Unrecognized names resolve to
// TierBalanced rather than failing; the second return reports whether the
// name was known.
func ParseTier(name string) (Tier, bool) {
	for _, t := range AllTiers {
		if t.String() == name {
			return t, true
		}
	}
	return TierBalanced, false
}

// ResolveTier returns a copy of the ordered specialist set enabled for a
// tier. Callers may append to the result without affecting the table.
func ResolveTier(t Tier) []SpecialistKind {
	kinds, ok := tierSpecialists[t]
	if !ok {
		kinds = tierSpecialists[TierBalanced]
	}
	out := make([]SpecialistKind, len(kinds))
	copy(out, kinds)
	return out
}
