package decision

import (
	"alert-listener-go/internal/models"
)

const (
	personLabel               = "person"
	personConfidenceThreshold = 0.90
)

// Messages attached to the outgoing alert event
const (
	PersonSpottedText = "person has been spotted! quick, catch them."
	NonPersonText     = "non-person object has been spotted."
)

// Decide maps a classification result to a verdict and message text.
// Pure and deterministic. A nil analysis (classification skipped) degrades
// to the Ok branch.
func Decide(analysis *models.ImageAnalysis) (models.Status, string) {
	if analysis == nil {
		return models.StatusOk, NonPersonText
	}

	for _, tag := range analysis.Tags {
		if tag.Name == personLabel && tag.Confidence >= personConfidenceThreshold {
			return models.StatusError, PersonSpottedText
		}
	}

	return models.StatusOk, NonPersonText
}

// PersonConfidence returns the confidence of the person tag that triggered
// the Error verdict, or 0 when none did
func PersonConfidence(analysis *models.ImageAnalysis) float64 {
	if analysis == nil {
		return 0
	}
	for _, tag := range analysis.Tags {
		if tag.Name == personLabel && tag.Confidence >= personConfidenceThreshold {
			return tag.Confidence
		}
	}
	return 0
}
