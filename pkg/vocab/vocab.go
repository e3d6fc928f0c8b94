// Package vocab supplies the closed vocabularies of the Global WordNet
// LMF schema: part-of-speech tags, adjective positions, and the relation
// type sets for synsets and senses.
//
// These are static reference data. The editor consults them for shape
// validation and relation-type checks but never extends them; unknown
// relation types are reported, not rejected.
package vocab

// Set is a membership set of vocabulary values.
type Set map[string]struct{}

// NewSet builds a Set from the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Contains reports whether v is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// PartsOfSpeech are the WN-LMF part-of-speech tags. The core five are
// noun, verb, adjective, adverb and adjective satellite; the rest cover
// phrases, conjunctions, adpositions, other, and unknown.
var PartsOfSpeech = NewSet(
	"n", "v", "a", "r", "s",
	"t", "c", "p", "x", "u",
)

// Adjpositions are the positions an adjectival sense may mark:
// attributive, immediately postnominal, predicative.
var Adjpositions = NewSet("a", "ip", "p")

// SynsetRelations are the relation types defined between synsets.
var SynsetRelations = NewSet(
	"agent", "also", "attribute", "be_in_state", "causes",
	"classified_by", "classifies",
	"co_agent_instrument", "co_agent_patient", "co_agent_result",
	"co_instrument_agent", "co_instrument_patient", "co_instrument_result",
	"co_patient_agent", "co_patient_instrument",
	"co_result_agent", "co_result_instrument", "co_role",
	"direction", "domain_region", "domain_topic",
	"entails", "eq_synonym", "exemplifies",
	"has_domain_region", "has_domain_topic",
	"holo_location", "holo_member", "holo_part", "holo_portion",
	"holo_substance", "holonym",
	"hypernym", "hyponym",
	"in_manner", "instance_hypernym", "instance_hyponym", "instrument",
	"involved", "involved_agent", "involved_direction",
	"involved_instrument", "involved_location", "involved_patient",
	"involved_result", "involved_source_direction",
	"involved_target_direction",
	"is_caused_by", "is_entailed_by", "is_exemplified_by",
	"is_subevent_of",
	"location", "manner_of",
	"mero_location", "mero_member", "mero_part", "mero_portion",
	"mero_substance", "meronym",
	"other", "patient", "restricted_by", "restricts", "result", "role",
	"similar", "source_direction", "state_of", "subevent",
	"target_direction",
)

// SenseRelations are the relation types defined from senses.
var SenseRelations = NewSet(
	"also", "antonym", "derivation",
	"domain_region", "domain_topic", "exemplifies",
	"has_domain_region", "has_domain_topic", "is_exemplified_by",
	"other", "participle", "pertainym",
	"secondary_aspect_ip", "secondary_aspect_pi", "similar",
	"simple_aspect_ip", "simple_aspect_pi",
)

// Adjectival reports whether pos marks an adjectival entry, the only kind
// whose senses may carry an adjposition.
func Adjectival(pos string) bool {
	return pos == "a" || pos == "s"
}
