package styles

// Variant identifies one of the mutually exclusive rendering styles. The
// values are stable strings because they round-trip through saved
// configurations.
type Variant string

// The ten supported style variants.
const (
	// VariantSquare draws flat squares ("Standard Industrial").
	VariantSquare Variant = "square"
	// VariantRounded draws filled rounded squares ("Modern Soft").
	VariantRounded Variant = "rounded"
	// VariantDot draws isolated circles ("Swiss Dot").
	VariantDot Variant = "dot"
	// VariantFluid draws circles joined to active neighbours by rectangular
	// connectors, producing a continuous blob ("Fluid Ink").
	VariantFluid Variant = "fluid"
	// VariantCircuit draws square nodes with thin traces toward active
	// neighbours ("Cyber Circuit").
	VariantCircuit Variant = "circuit"
	// VariantHive draws tessellating regular hexagons ("The Hive").
	VariantHive Variant = "hive"
	// VariantKinetic draws squares rotated 45 degrees ("Kinetic").
	VariantKinetic Variant = "kinetic"
	// VariantStarburst draws pointed stars ("Starburst").
	VariantStarburst Variant = "starburst"
	// VariantHeart draws heart shapes ("Sweetheart").
	VariantHeart Variant = "heart"
	// VariantGrunge draws squares with per-cell random jitter for a
	// hand-drawn look ("Grunge").
	VariantGrunge Variant = "grunge"
)

// Valid reports whether the variant is registered. Invalid variants still
// render (Lookup falls back to the square default); Valid exists for callers
// that want to warn about stale stored configuration.
func (v Variant) Valid() bool {
	_, ok := lookup(v)
	return ok
}

// Variants returns the registered variants in presentation order.
func Variants() []Variant {
	return []Variant{
		VariantSquare,
		VariantRounded,
		VariantDot,
		VariantFluid,
		VariantCircuit,
		VariantHive,
		VariantKinetic,
		VariantStarburst,
		VariantHeart,
		VariantGrunge,
	}
}

// Decorative reports whether the variant trades scan reliability for visual
// novelty. Decorative variants are not guaranteed to decode; the accepted
// trade-off is documented, not a defect.
func (v Variant) Decorative() bool {
	switch v {
	case VariantCircuit, VariantHive, VariantKinetic, VariantStarburst, VariantHeart, VariantGrunge:
		return true
	default:
		return false
	}
}
