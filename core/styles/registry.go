package styles

import "sync"

var (
	registryMu sync.RWMutex
	registry   = make(map[Variant]Drawer)
)

// Register adds a drawer for a variant. Later registrations replace earlier
// ones, which lets applications override a built-in style.
func Register(v Variant, d Drawer) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[v] = d
}

// Lookup returns the drawer for a variant. Unknown variants fall back to the
// flat-square default so stale stored configuration still renders.
func Lookup(v Variant) Drawer {
	if d, ok := lookup(v); ok {
		return d
	}
	d, _ := lookup(VariantSquare)
	return d
}

func lookup(v Variant) (Drawer, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	d, ok := registry[v]
	return d, ok
}

func init() {
	Register(VariantSquare, squareDrawer{})
	Register(VariantRounded, roundedDrawer{})
	Register(VariantDot, dotDrawer{})
	Register(VariantFluid, fluidDrawer{})
	Register(VariantCircuit, circuitDrawer{})
	Register(VariantHive, hiveDrawer{})
	Register(VariantKinetic, kineticDrawer{})
	Register(VariantStarburst, starburstDrawer{})
	Register(VariantHeart, heartDrawer{})
	Register(VariantGrunge, grungeDrawer{})
}
