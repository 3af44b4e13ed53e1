package usecase

import "fmt"

// scoringPromptTemplate asks the model for the fixed score schema. The job
// description and resume text are embedded verbatim.
const scoringPromptTemplate = `You are an ATS (Applicant Tracking System) evaluator. Given a job description and a candidate resume, evaluate the resume's match to the job and provide an ATS score.

JOB DESCRIPTION:
%s

CANDIDATE RESUME:
%s

Return ONLY valid JSON matching this schema:
{
  "name": string|null,
  "email": string|null,
  "phone": string|null,
  "skills": [string],
  "experience": [ { company, title, start, end, bullets: [string] } ],
  "score": integer(0-100),
  "rationale": [string up to 3],
  "recommendedAction": string
}

The "score" field is mandatory and must be an integer from 0 to 100. If a field is missing use null or empty array. Do not include explanatory text outside the JSON. If you cannot produce JSON, respond with <<<NO_JSON>>>.`

func scoringPrompt(jobDescription, resumeText string) string {
	return fmt.Sprintf(scoringPromptTemplate, jobDescription, resumeText)
}

// extractionPromptTemplate asks the model for structured candidate fields
// used by the ATS weighted scorer on the application-upload path.
const extractionPromptTemplate = `Analyze this resume text and extract the following information in JSON format:
- name: Full name of the candidate
- email: Email address
- phone: Phone number
- skills: Array of technical skills (extract from skills section or mentioned throughout)
- experience: Years of experience (number, estimate if not explicitly stated)
- education: Highest education level
- location: Current location/city

Resume text:
%s

Return only valid JSON without any additional text or formatting.`

func extractionPrompt(resumeText string) string {
	return fmt.Sprintf(extractionPromptTemplate, resumeText)
}
