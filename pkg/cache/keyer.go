package cache

// keyVersion is bumped whenever the cached plan layout changes.
const keyVersion = "v1"

// PlanKeyOpts are the plan settings that are not part of the input hash.
type PlanKeyOpts struct {
	Pattern string `json:"pattern"`
	Clip    string `json:"clip"`
}

// Keyer builds cache keys.
type Keyer interface {
	// PlanKey returns the key of a plan computed from inputs with the given
	// hash and settings.
	PlanKey(inputHash string, opts PlanKeyOpts) string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// PlanKey implements Keyer.
func (DefaultKeyer) PlanKey(inputHash string, opts PlanKeyOpts) string {
	return hashKey("plan:"+keyVersion, inputHash, opts)
}

// ScopedKeyer prefixes every key of another Keyer, giving a shared backend
// such as Redis a private namespace.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a keyer that prepends prefix to the keys of inner.
// A nil inner uses the DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlanKey implements Keyer.
func (k *ScopedKeyer) PlanKey(inputHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(inputHash, opts)
}
