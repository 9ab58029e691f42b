package identity

import "strings"

// DefaultNicknames maps short forms to their formal expansions. The
// table is hand-curated and inherently partial; deployments extend it
// through Config.Nicknames rather than editing matcher logic. Lookups
// are checked in both directions, so "dan" matches "Daniel" and
// "daniel" matches a roster entry named "Dan".
var DefaultNicknames = map[string][]string{
	"dan":  {"daniel", "danny"},
	"mat":  {"matthew", "matt"},
	"mtt":  {"matthew", "matt"},
	"dave": {"david"},
	"jim":  {"james"},
	"bob":  {"robert"},
	"rob":  {"robert"},
	"mike": {"michael"},
	"joe":  {"joseph"},
	"alex": {"alexander"},
	"will": {"william"},
	"beth": {"elizabeth"},
	"tony": {"anthony"},
	"chris": {"christopher", "christian"},
	"nick": {"nicholas"},
	"rick": {"richard"},
	"sam":  {"samuel", "samantha"},
	"juan": {"juanito", "juanita"},
	"da":   {"dan", "daniel", "dave", "david"},
}

// mergeNicknames layers configured entries over the default table.
func mergeNicknames(extra map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(DefaultNicknames)+len(extra))
	for k, v := range DefaultNicknames {
		merged[strings.ToLower(k)] = v
	}
	for k, v := range extra {
		lowered := make([]string, len(v))
		for i, name := range v {
			lowered[i] = strings.ToLower(name)
		}
		merged[strings.ToLower(k)] = lowered
	}
	return merged
}

// isNickname reports whether a and b (already lowercased) are linked by
// the table in either direction.
func (r *Resolver) isNickname(a, b string) bool {
	for _, formal := range r.nicknames[a] {
		if formal == b {
			return true
		}
	}
	for _, formal := range r.nicknames[b] {
		if formal == a {
			return true
		}
	}
	return false
}
