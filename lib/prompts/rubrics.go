package prompts

import "career-coach-backend/models"

// Схема ответа, общая для всех рубрик оценки резюме.
// score и breakdown модель считает независимо, сервис их не пересчитывает.
const analysisSchema = `Output JSON format only:
{
    "score": number (0-100),
    "matchLevel": "High" | "Medium" | "Low",
    "summary": "string (brief explanation)",
    "breakdown": {
        "hardSkills": number (0-100),
        "experience": number (0-100),
        "languages": number (0-100),
        "education": number (0-100),
        "softSkills": number (0-100),
        "format": number (0-100)
    },
    "hardSkillsAnalysis": {
        "missingKeywords": ["string"],
        "matchedKeywords": ["string"]
    },
    "experienceAnalysis": { "feedback": "string" },
    "softSkillsAnalysis": { "feedback": "string" },
    "formattingAnalysis": { "issues": ["string"] },
    "redFlags": ["string"],
    "improvementPlan": ["string"]
}`

const knockoutSchemaExtra = `,
    "killerQuestionsCheck": { "passed": boolean, "reason": "string" }`

const strictAtsRubric = `Role: Expert ATS Scanner and Recruiter Algorithm.
Task: Analyze the provided CV against the Job Description.
Strictly evaluate keyword matching, formatting, and relevance. Be harsh appropriately.`

const knockoutRubric = `Role: ATS with mandatory knockout rules.
Task: Analyze the provided CV against the Job Description.
First extract the mandatory requirements (killer questions) from the Job Description.
If any mandatory requirement is not met by the CV, the candidate fails the knockout
check regardless of other scores: set killerQuestionsCheck.passed to false, explain
the failed requirement in killerQuestionsCheck.reason and cap score at 30.
Otherwise evaluate keyword matching, formatting, and relevance.`

const europassRubric = `Role: Europass CV Quality Coach.
Task: Review the provided CV against the Job Description and the Europass guidelines.
Evaluate structure, completeness of sections, clarity of dated experience entries and
language levels. Be constructive: every issue must come with actionable advice.`

var rubricTexts = map[models.CvRubric]string{
	models.CvRubricStrictATS: strictAtsRubric,
	models.CvRubricKnockout:  knockoutRubric,
	models.CvRubricEuropass:  europassRubric,
}

// cvAuditRubric — текст рубрики с описанием схемы ответа.
// Неизвестная рубрика трактуется как strict_ats.
func cvAuditRubric(rubric models.CvRubric) string {
	text, exist := rubricTexts[rubric]
	if !exist {
		text = strictAtsRubric
	}
	schema := analysisSchema
	if rubric == models.CvRubricKnockout {
		schema = analysisSchema[:len(analysisSchema)-2] + knockoutSchemaExtra + "\n}"
	}
	return text + "\n\n" + schema
}
