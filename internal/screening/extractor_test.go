package screening

import "testing"

func newScreeningExtractor() *Extractor {
	n := NewNormalizer()
	return NewExtractor(NewEvaluator(n, DefaultQuestionSet()), ScreeningFlags(n))
}

func TestExtract_NoAnswersAtAll_AllUndefined(t *testing.T) {
	x := newScreeningExtractor()
	row := x.Extract(newResponses(nil))
	if len(row) != ScreeningFlagCount {
		t.Fatalf("got %d columns, want %d", len(row), ScreeningFlagCount)
	}
	for i, v := range row {
		if v != Undefined {
			t.Errorf("column %d: got %v, want undefined", i, v)
		}
	}
}

func TestExtract_CombinedAnswers(t *testing.T) {
	// Before-event answers carry headache + dizzy + toilet; the during
	// answer carries a split "black out". Expect pallor, incontinence
	// and headache positive, collapse and situational-fall negative.
	x := newScreeningExtractor()
	row := x.Extract(newResponses(map[string]string{
		qBeforeExperience: "I get a headache and somtimes a bit dizzy!",
		qBeforeFeel:       "Usually when I go to the toilet.",
		qDuring:           "Blacking out.",
	}))

	want := []Value{Yes, Yes, No, No, Yes, No}
	for i, v := range row {
		if v != want[i] {
			t.Errorf("column %d: got %v, want %v", i, v, want[i])
		}
	}
}

func TestExtract_DurationOnlyAnswer(t *testing.T) {
	// A patient who only answered the duration question: every flag is
	// undefined except the duration-dependent one, which is judged on
	// the duration text alone.
	x := newScreeningExtractor()
	row := x.Extract(newResponses(map[string]string{qDuration: "a few seconds"}))

	for i, v := range row {
		if i == FlagEyesClosedLong {
			if v != No {
				t.Errorf("eyes-closed flag: got %v, want no", v)
			}
			continue
		}
		if v != Undefined {
			t.Errorf("column %d: got %v, want undefined", i, v)
		}
	}
}

func TestExtract_LongDurationMatches(t *testing.T) {
	x := newScreeningExtractor()
	row := x.Extract(newResponses(map[string]string{
		qDuring:   "My eyes stay shut.",
		qDuration: "more than 15 minutes",
	}))
	if row[FlagEyesClosedLong] != Yes {
		t.Errorf("got %v, want yes", row[FlagEyesClosedLong])
	}
}

func TestExtractAll_PreservesOrder(t *testing.T) {
	x := newScreeningExtractor()
	patients := []Responses{
		newResponses(nil),
		newResponses(map[string]string{qBeforeFeel: "I get dizzy."}),
	}
	matrix := x.ExtractAll(patients)
	if len(matrix) != 2 {
		t.Fatalf("got %d rows, want 2", len(matrix))
	}
	if matrix[0][FlagPallor] != Undefined {
		t.Errorf("row 0 pallor: got %v, want undefined", matrix[0][FlagPallor])
	}
	if matrix[1][FlagPallor] != Yes {
		t.Errorf("row 1 pallor: got %v, want yes", matrix[1][FlagPallor])
	}
}

func TestExtendedFlags_Width(t *testing.T) {
	n := NewNormalizer()
	flags := ExtendedFlags(n)
	if len(flags) != ExtendedFlagCount {
		t.Fatalf("got %d flags, want %d", len(flags), ExtendedFlagCount)
	}
}

func TestExtendedFlags_RecordOnlyFlagsUndefined(t *testing.T) {
	// Lesion and onset-age flags have no questionnaire source and stay
	// undefined even for a fully answered survey.
	n := NewNormalizer()
	x := NewExtractor(NewEvaluator(n, DefaultQuestionSet()), ExtendedFlags(n))
	row := x.Extract(newResponses(map[string]string{
		qDuring: "I stare blankly and my arms jerk.",
	}))
	if row[FlagLesion] != Undefined {
		t.Errorf("lesion: got %v, want undefined", row[FlagLesion])
	}
	if row[FlagOnset21] != Undefined {
		t.Errorf("onset: got %v, want undefined", row[FlagOnset21])
	}
	if row[FlagJerks] != Yes {
		t.Errorf("jerks: got %v, want yes", row[FlagJerks])
	}
}
