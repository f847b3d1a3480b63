package feedback

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, fb Feedback) error {
	const query = `
INSERT INTO feedback (
  id, interview_id, candidate_id, job_id, interviewer_id, interviewer_name,
  overall_rating, technical_skills, communication_skills, problem_solving, cultural_fit,
  strengths, weaknesses, recommendation, additional_comments, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.DB.ExecContext(ctx, query,
		fb.ID,
		fb.InterviewID,
		fb.CandidateID,
		fb.JobID,
		nullableText(fb.InterviewerID),
		fb.InterviewerName,
		fb.OverallRating,
		fb.TechnicalSkills,
		fb.CommunicationSkills,
		fb.ProblemSolving,
		fb.CulturalFit,
		nullableText(fb.Strengths),
		nullableText(fb.Weaknesses),
		fb.Recommendation,
		nullableText(fb.AdditionalComments),
		fb.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByInterview(ctx context.Context, interviewID string) (Feedback, error) {
	const query = `
SELECT id, interview_id, candidate_id, job_id, interviewer_id, interviewer_name,
  overall_rating, technical_skills, communication_skills, problem_solving, cultural_fit,
  strengths, weaknesses, recommendation, additional_comments, created_at
FROM feedback
WHERE interview_id = $1
LIMIT 1`
	fb, err := scanFeedback(r.DB.QueryRowContext(ctx, query, interviewID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Feedback{}, ErrNotFound
		}
		return Feedback{}, err
	}
	return fb, nil
}

func (r *PGRepo) ListByCandidate(ctx context.Context, candidateID string) ([]Feedback, error) {
	const query = `
SELECT id, interview_id, candidate_id, job_id, interviewer_id, interviewer_name,
  overall_rating, technical_skills, communication_skills, problem_solving, cultural_fit,
  strengths, weaknesses, recommendation, additional_comments, created_at
FROM feedback
WHERE candidate_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, candidateID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Feedback{}
	for rows.Next() {
		fb, err := scanFeedback(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row rowScanner) (Feedback, error) {
	var fb Feedback
	var interviewerID sql.NullString
	var strengths sql.NullString
	var weaknesses sql.NullString
	var comments sql.NullString
	err := row.Scan(
		&fb.ID,
		&fb.InterviewID,
		&fb.CandidateID,
		&fb.JobID,
		&interviewerID,
		&fb.InterviewerName,
		&fb.OverallRating,
		&fb.TechnicalSkills,
		&fb.CommunicationSkills,
		&fb.ProblemSolving,
		&fb.CulturalFit,
		&strengths,
		&weaknesses,
		&fb.Recommendation,
		&comments,
		&fb.CreatedAt,
	)
	if err != nil {
		return Feedback{}, err
	}
	fb.InterviewerID = interviewerID.String
	fb.Strengths = strengths.String
	fb.Weaknesses = weaknesses.String
	fb.AdditionalComments = comments.String
	return fb, nil
}

func nullableText(value string) any {
	if value == "" {
		return nil
	}
	return value
}
