package feedback

import "time"

// Ratings run 1-5; zero means the interviewer left the dimension unrated.
type Feedback struct {
	ID                  string    `json:"id"`
	InterviewID         string    `json:"interviewId"`
	CandidateID         string    `json:"candidateId"`
	JobID               string    `json:"jobId"`
	InterviewerID       string    `json:"interviewerId,omitempty"`
	InterviewerName     string    `json:"interviewerName"`
	OverallRating       int       `json:"overallRating"`
	TechnicalSkills     int       `json:"technicalSkills"`
	CommunicationSkills int       `json:"communicationSkills"`
	ProblemSolving      int       `json:"problemSolving"`
	CulturalFit         int       `json:"culturalFit"`
	Strengths           string    `json:"strengths,omitempty"`
	Weaknesses          string    `json:"weaknesses,omitempty"`
	Recommendation      string    `json:"recommendation"`
	AdditionalComments  string    `json:"additionalComments,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
