package applications

// Recommendation values accepted from interviewers.
const (
	RecommendHire   = "hire"
	RecommendMaybe  = "maybe"
	RecommendNoHire = "no-hire"
)

// StatusForRecommendation maps an interviewer recommendation to the next
// application status. Total over all inputs: unknown values land on
// StatusInterviewed so a malformed recommendation never stalls an application.
func StatusForRecommendation(recommendation string) string {
	switch recommendation {
	case RecommendHire:
		return StatusSelected
	case RecommendNoHire:
		return StatusRejected
	case RecommendMaybe:
		return StatusOnHold
	default:
		return StatusInterviewed
	}
}
