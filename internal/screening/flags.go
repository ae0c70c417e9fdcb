package screening

// FlagDef is one derived clinical indicator: a name plus the criteria
// that decide it. The order of a flag set fixes the column order of
// the flag matrix for the whole run.
type FlagDef struct {
	Name     string
	Criteria CriteriaSpec
}

// Screening flag columns, in matrix order.
const (
	FlagPallor = iota
	FlagIncontinenceLOC
	FlagCollapse
	FlagEyesClosedLong
	FlagHeadache
	FlagSituationalFall
	ScreeningFlagCount
)

// Extended flag columns appended by ExtendedFlags.
const (
	FlagLesion = ScreeningFlagCount + iota
	FlagLipSmacking
	FlagNocturnalOnly
	FlagOnset21
	FlagStaring
	FlagJerks
	FlagTonicClonic
	ExtendedFlagCount
)

// ScreeningFlags returns the six screening flags that drive the
// epilepsy vs non-epilepsy decision. Pattern tokens are normalized
// once, here, with the same normalizer used on answer text.
func ScreeningFlags(n *Normalizer) []FlagDef {
	defs := []FlagDef{
		{
			Name: "pre_ictal_pallor",
			Criteria: CriteriaSpec{
				CategoryBefore: {
					Literal("pale"), Literal("white"), Literal("dizzy"),
					Literal("dissy"), Literal("vertigo"), Compound("light", "head"),
				},
			},
		},
		{
			Name: "incontinence_loss_of_consciousness",
			Criteria: CriteriaSpec{
				CategoryBefore: {Literal("toilet"), Literal("restroom")},
				CategoryDuring: {
					Literal("conscious"), Literal("fall"), Literal("aware"),
					Literal("faint"), Literal("blackout"), Compound("black", "out"),
				},
			},
		},
		{
			Name: "collapse",
			Criteria: CriteriaSpec{
				CategoryDuring: {Literal("collapse"), Literal("droop"), Literal("slump")},
			},
		},
		{
			Name: "eyes_closed_long_event",
			Criteria: CriteriaSpec{
				CategoryDuring: {Literal("eye"), Literal("close"), Literal("shut")},
				CategoryDuration: {
					Literal("7 - 15 minutes"),
					Literal("more than 15 minutes"),
				},
			},
		},
		{
			Name: "severe_headache",
			Criteria: CriteriaSpec{
				CategoryBefore: {
					Literal("headache"), Literal("migraine"), Compound("head", "ache"),
				},
			},
		},
		{
			Name: "situational_fall",
			Criteria: CriteriaSpec{
				CategoryBefore: {Literal("pain"), Literal("cough"), Literal("stand")},
				CategoryDuring: {Literal("fell"), Literal("fall")},
			},
		},
	}
	return normalizeFlags(n, defs)
}

// ExtendedFlags appends the sub-typing flags used by the focal and
// generalized decision blocks. The lesion and onset-age flags have no
// questionnaire source (they come from imaging and clinical records),
// so their criteria carry no categories and evaluate Undefined from
// text alone.
func ExtendedFlags(n *Normalizer) []FlagDef {
	defs := []FlagDef{
		{Name: "grey_matter_lesion", Criteria: CriteriaSpec{}},
		{
			Name: "lip_smacking_chewing",
			Criteria: CriteriaSpec{
				CategoryDuring: {Literal("lip"), Literal("smack"), Literal("chew")},
			},
		},
		{
			Name: "nocturnal_only",
			Criteria: CriteriaSpec{
				CategoryDuring: {Literal("nocturnal"), Literal("night"), Literal("asleep")},
			},
		},
		{Name: "onset_21_or_older", Criteria: CriteriaSpec{}},
		{
			Name: "brief_staring",
			Criteria: CriteriaSpec{
				CategoryDuring: {
					Literal("stare"), Literal("blank"),
					Literal("unresponsive"), Literal("unaware"),
				},
				CategoryDuration: {Literal("second")},
			},
		},
		{
			Name: "jerks",
			Criteria: CriteriaSpec{
				CategoryDuring: {Literal("jerk"), Literal("twitch"), Literal("shake")},
			},
		},
		{
			Name: "tonic_clonic",
			Criteria: CriteriaSpec{
				CategoryDuring: {
					Literal("convulsion"), Compound("stiff", "jerk"), Compound("both", "sides"),
				},
			},
		},
	}
	return append(ScreeningFlags(n), normalizeFlags(n, defs)...)
}

func normalizeFlags(n *Normalizer, defs []FlagDef) []FlagDef {
	for i, def := range defs {
		spec := make(CriteriaSpec, len(def.Criteria))
		for cat, patterns := range def.Criteria {
			normalized := make([]Pattern, len(patterns))
			for j, p := range patterns {
				normalized[j] = p.normalized(n)
			}
			spec[cat] = normalized
		}
		defs[i].Criteria = spec
	}
	return defs
}

// FlagNames returns the column names of a flag set, in order.
func FlagNames(defs []FlagDef) []string {
	names := make([]string, len(defs))
	for i, def := range defs {
		names[i] = def.Name
	}
	return names
}
