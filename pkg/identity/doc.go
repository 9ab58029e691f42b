// Package identity resolves free-text assignee names against a roster
// of known users, tolerating nicknames, abbreviations, case, and minor
// misspellings.
//
// Matching runs in priority tiers; the first tier with a result wins:
//
//  1. Exact/contains: case-insensitive equality with the full name or
//     first name, or substring containment either way. Collects every
//     user that qualifies.
//  2. Nickname: a bidirectional table of common nickname/formal-name
//     pairs ("dan" ↔ "Daniel"). Stops at the first user matched.
//
// When neither tier matches, FindMatches returns an empty list and the
// caller decides how to disambiguate. Candidates provides a secondary
// similarity ranking (normalized Levenshtein distance) for review UIs;
// it never gates the tiers above.
//
// All resolution is pure and in-memory: results are recomputed per call
// with no caching, and a Resolver is safe for concurrent use. The
// nickname table is configuration data, extensible without touching
// matcher logic.
package identity
