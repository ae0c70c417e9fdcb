package screening

import (
	"regexp"
	"testing"
)

func TestLiteral_Substring(t *testing.T) {
	p := Literal("dizzy")
	if !p.Matches("i get dizzy sometimes") {
		t.Error("literal should match as substring")
	}
	if p.Matches("i get a headache") {
		t.Error("literal should not match absent token")
	}
}

func TestCompound_RequiresAllTokens(t *testing.T) {
	p := Compound("black", "out")
	if !p.Matches("blacking out") {
		t.Error("compound should match when all tokens present")
	}
	if !p.Matches("out of it then everything went black") {
		t.Error("compound should match tokens in any order")
	}
	if p.Matches("everything went black") {
		t.Error("compound must not match with only one token present")
	}
	if p.Matches("i pass out") {
		t.Error("compound must not match with only one token present")
	}
}

func TestRegex_Matches(t *testing.T) {
	p := Regex(regexp.MustCompile(`\b\d+ minutes\b`))
	if !p.Matches("about 15 minutes usually") {
		t.Error("regex should match")
	}
	if p.Matches("a few seconds") {
		t.Error("regex should not match")
	}
}

func TestSearch_OrAcrossList(t *testing.T) {
	patterns := []Pattern{Literal("pale"), Literal("dizzy"), Compound("light", "head")}
	if !Search("a bit light headed", patterns) {
		t.Error("search should succeed when any pattern matches")
	}
	if Search("i fall down", patterns) {
		t.Error("search should fail when no pattern matches")
	}
}
