package vocab

import "testing"

func TestContains(t *testing.T) {
	if !PartsOfSpeech.Contains("n") {
		t.Fatal("expected n to be a part of speech")
	}
	if PartsOfSpeech.Contains("q") {
		t.Fatal("q is not a part of speech")
	}
	if !SynsetRelations.Contains("hypernym") {
		t.Fatal("expected hypernym in synset relations")
	}
	if SynsetRelations.Contains("antonym") {
		t.Fatal("antonym is a sense relation, not a synset relation")
	}
	if !SenseRelations.Contains("antonym") {
		t.Fatal("expected antonym in sense relations")
	}
}

func TestNewSet(t *testing.T) {
	s := NewSet("a", "b")
	if len(s) != 2 {
		t.Fatalf("got %d members, want 2", len(s))
	}
	if !s.Contains("a") || !s.Contains("b") || s.Contains("c") {
		t.Fatal("membership mismatch")
	}
}

func TestAdjectival(t *testing.T) {
	for _, pos := range []string{"a", "s"} {
		if !Adjectival(pos) {
			t.Fatalf("%s should be adjectival", pos)
		}
	}
	for _, pos := range []string{"n", "v", "r", ""} {
		if Adjectival(pos) {
			t.Fatalf("%s should not be adjectival", pos)
		}
	}
}
