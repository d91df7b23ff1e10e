package usecase

import "github.com/repoclean/repoclean/internal/domain"

// CheckPrefixSafety decides whether the candidate commits can be dropped
// from a branch without losing any other work. headLog is the branch history
// ordered newest first; candidates are the hashes proposed for deletion.
//
// The deletion is safe iff the candidates are exactly the |C| most recent
// commits on the branch: every candidate must appear within the first |C|
// log entries, with no gap and no intervening non-candidate commit.
//
// When unsafe, the result names the specific commits involved: Missing holds
// candidates absent from the log entirely, Blocking holds non-candidate
// commits that are more recent than the oldest candidate and would be erased
// by the rewrite.
func CheckPrefixSafety(headLog []string, candidates []string) domain.SafetyResult {
	candidateSet := make(map[string]bool, len(candidates))
	for _, sha := range candidates {
		candidateSet[sha] = true
	}
	// position maps each log hash to its index, newest first
	position := make(map[string]int, len(headLog))
	for i, sha := range headLog {
		position[sha] = i
	}
	result := domain.SafetyResult{}
	deepest := -1
	for sha := range candidateSet {
		idx, ok := position[sha]
		if !ok {
			result.Missing = append(result.Missing, sha)
			continue
		}
		if idx > deepest {
			deepest = idx
		}
	}
	// Every non-candidate above the deepest candidate would be erased.
	for i := 0; i <= deepest && i < len(headLog); i++ {
		if !candidateSet[headLog[i]] {
			result.Blocking = append(result.Blocking, headLog[i])
		}
	}
	result.Safe = len(result.Missing) == 0 && len(result.Blocking) == 0
	return result
}
