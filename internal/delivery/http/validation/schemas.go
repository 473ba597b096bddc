package validation

const stringList = `{"type": "array", "items": {"type": "string", "maxLength": 200}, "maxItems": 200}`

const candidateSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string"},
		"skills": ` + stringList + `,
		"headline": {"type": "string", "maxLength": 300},
		"location": {"type": "string", "maxLength": 300},
		"experiences": {
			"type": "array",
			"maxItems": 100,
			"items": {
				"type": "object",
				"required": ["start_date"],
				"properties": {
					"company": {"type": "string"},
					"position": {"type": "string"},
					"start_date": {"type": "string", "format": "date-time"},
					"end_date": {"type": ["string", "null"], "format": "date-time"},
					"is_current": {"type": "boolean"}
				}
			}
		},
		"education": {
			"type": "array",
			"maxItems": 50,
			"items": {
				"type": "object",
				"properties": {
					"degree": {"type": "string"},
					"field": {"type": "string"},
					"institution": {"type": "string"},
					"graduation_year": {"type": "integer"}
				}
			}
		},
		"projects": {
			"type": "array",
			"maxItems": 100,
			"items": {
				"type": "object",
				"properties": {
					"name": {"type": "string"},
					"technologies": ` + stringList + `
				}
			}
		},
		"soft_skills": {
			"type": "object",
			"additionalProperties": {"type": "number", "minimum": 0, "maximum": 10}
		},
		"technologies": {
			"type": "object",
			"properties": {
				"frontend": ` + stringList + `,
				"backend": ` + stringList + `,
				"database": ` + stringList + `,
				"cloud": ` + stringList + `,
				"tools": ` + stringList + `
			}
		}
	}
}`

const jobSchema = `{
	"type": "object",
	"required": ["title"],
	"properties": {
		"id": {"type": "string"},
		"title": {"type": "string", "minLength": 1, "maxLength": 300},
		"company": {"type": "string"},
		"description": {"type": "string", "maxLength": 50000},
		"requirements": {"type": "string", "maxLength": 50000},
		"responsibilities": {"type": "string", "maxLength": 50000},
		"required_skills": ` + stringList + `,
		"optional_skills": ` + stringList + `,
		"experience_level": {"type": "string"},
		"education": {
			"type": "object",
			"properties": {
				"required_degree": {"type": "string"},
				"preferred_degree": {"type": "string"},
				"field": {"type": "string"},
				"preferred_schools": ` + stringList + `
			}
		},
		"location": {"type": "string"},
		"is_remote": {"type": "boolean"}
	}
}`

const jobContextSchema = `{
	"type": "object",
	"properties": {
		"title": {"type": "string"},
		"description": {"type": "string", "maxLength": 50000},
		"requirements": {"type": "string", "maxLength": 50000},
		"experience_level": {"type": "string"},
		"required_skills": ` + stringList + `,
		"optional_skills": ` + stringList + `,
		"categories": ` + stringList + `,
		"interview_questions": {"type": "array", "items": {"type": "string"}, "maxItems": 100}
	}
}`

const interviewOptionsSchema = `{
	"type": "object",
	"properties": {
		"language": {"type": "string", "enum": ["", "en", "vi"]},
		"seniority": {"type": "string", "enum": ["", "JUNIOR", "MID", "SENIOR"]},
		"must_have_keywords": ` + stringList + `,
		"nice_to_have_keywords": ` + stringList + `,
		"synonyms": {"type": "object", "additionalProperties": ` + stringList + `}
	}
}`

var (
	MatchRequest = MustCompile("match request", `{
	"type": "object",
	"required": ["candidate", "job"],
	"properties": {
		"candidate": `+candidateSchema+`,
		"job": `+jobSchema+`
	}
}`)

	BatchMatchRequest = MustCompile("batch match request", `{
	"type": "object",
	"required": ["candidate", "jobs"],
	"properties": {
		"candidate": `+candidateSchema+`,
		"jobs": {"type": "array", "minItems": 1, "maxItems": 50, "items": `+jobSchema+`}
	}
}`)

	InterviewFeedbackRequest = MustCompile("interview feedback request", `{
	"type": "object",
	"properties": {
		"transcript": {"type": "string", "maxLength": 200000},
		"turns": {
			"type": "array",
			"maxItems": 100,
			"items": {
				"type": "object",
				"required": ["order_index", "question"],
				"properties": {
					"order_index": {"type": "integer", "minimum": 1},
					"question": {"type": "string", "minLength": 1},
					"category": {"type": "string"},
					"answer": {"type": "string", "maxLength": 20000}
				}
			}
		},
		"options": `+interviewOptionsSchema+`,
		"job": `+jobContextSchema+`
	}
}`)

	InterviewOptionsRequest = MustCompile("interview options request", `{
	"type": "object",
	"required": ["job"],
	"properties": {
		"transcript": {"type": "string", "maxLength": 200000},
		"job": `+jobContextSchema+`
	}
}`)

	SessionFeedbackRequest = MustCompile("session feedback request", `{
	"type": "object",
	"properties": {
		"options": `+interviewOptionsSchema+`
	}
}`)
)
