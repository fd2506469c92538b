package course

import "fmt"

// ErrInvariantViolation indicates an externally supplied Course breaks a
// structural invariant and was rejected at the registry boundary.
type ErrInvariantViolation struct {
	CourseID string
	Reason   string
}

func (e *ErrInvariantViolation) Error() string {
	return fmt.Sprintf("course %q: invariant violation: %s", e.CourseID, e.Reason)
}

// Validate checks the structural invariants a Course must satisfy on
// ingestion. Question and answer content is not inspected; grading semantics
// belong to the external collaborator.
func Validate(c *Course) error {
	if c.ID == "" {
		return &ErrInvariantViolation{Reason: "empty course id"}
	}
	if len(c.Subtopics) == 0 {
		return &ErrInvariantViolation{CourseID: c.ID, Reason: "no subtopics"}
	}
	if len(c.FinalQuiz) == 0 {
		return &ErrInvariantViolation{CourseID: c.ID, Reason: "empty final quiz"}
	}
	if c.CurrentSubtopic < 0 || c.CurrentSubtopic >= len(c.Subtopics) {
		return &ErrInvariantViolation{
			CourseID: c.ID,
			Reason: fmt.Sprintf("currentSubtopic %d out of range [0,%d)",
				c.CurrentSubtopic, len(c.Subtopics)),
		}
	}

	for i, s := range c.Subtopics {
		if err := validateQuestions(c.ID, fmt.Sprintf("subtopic %d quiz", i), s.Quiz); err != nil {
			return err
		}
	}
	return validateQuestions(c.ID, "final quiz", c.FinalQuiz)
}

// validateQuestions enforces the options-iff-mcq rule.
func validateQuestions(courseID, where string, qs []Question) error {
	for i, q := range qs {
		switch q.Kind {
		case KindMultipleChoice:
			if len(q.Options) == 0 {
				return &ErrInvariantViolation{
					CourseID: courseID,
					Reason:   fmt.Sprintf("%s question %d: mcq without options", where, i),
				}
			}
		case KindFreeText:
			if len(q.Options) != 0 {
				return &ErrInvariantViolation{
					CourseID: courseID,
					Reason:   fmt.Sprintf("%s question %d: free-text with options", where, i),
				}
			}
		default:
			return &ErrInvariantViolation{
				CourseID: courseID,
				Reason:   fmt.Sprintf("%s question %d: unknown kind %q", where, i, q.Kind),
			}
		}
	}
	return nil
}
