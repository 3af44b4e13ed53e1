package model

// Go models that match the score response schema the AI scorer is asked to
// produce. Every field except score is optional; the parser tolerates
// partial output.

type ExperienceEntry struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Start   string   `json:"start"`
	End     string   `json:"end"`
	Bullets []string `json:"bullets"`
}

// AIResult is the parsed form of the model's JSON answer. Score is a
// pointer so a missing or non-numeric score is distinguishable from zero.
type AIResult struct {
	Name              *string           `json:"name"`
	Email             *string           `json:"email"`
	Phone             *string           `json:"phone"`
	Skills            []string          `json:"skills"`
	Experience        []ExperienceEntry `json:"experience"`
	Score             *float64          `json:"score"`
	Rationale         []string          `json:"rationale"`
	RecommendedAction string            `json:"recommendedAction"`
}

// ExtractionResult is the parsed form of the field-extraction answer used
// on the application-upload path.
type ExtractionResult struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Skills          []string `json:"skills"`
	ExperienceYears float64  `json:"experience"`
	Education       string   `json:"education"`
	Location        string   `json:"location"`
}
