package prompts

import (
	"fmt"
	"strings"

	"career-coach-backend/models"
	interviewapimodels "career-coach-backend/models/api/interview"
	psychoapimodels "career-coach-backend/models/api/psychometric"
)

// лимиты обрезки входных текстов, в символах
const (
	cvAuditTextLimit     = 4000
	interviewContextLimit = 3000
	psychoCvLimit         = 1500
	psychoJdLimit         = 1000
)

// Prompt — пара инструкций для запроса к провайдеру
type Prompt struct {
	SystemInstruction string
	UserPrompt        string
}

const cvAuditSysPromt = "You are an ATS Scoring Engine. Output only JSON."

// BuildCvAudit — промт оценки резюме против вакансии по выбранной рубрике
func BuildCvAudit(cvText, jobDescription string, rubric models.CvRubric) Prompt {
	userPromt := fmt.Sprintf(`%s

Job Description:
"%s"

CV Text:
"%s"`,
		cvAuditRubric(rubric),
		TruncateRunes(jobDescription, cvAuditTextLimit),
		TruncateRunes(cvText, cvAuditTextLimit),
	)
	return Prompt{
		SystemInstruction: cvAuditSysPromt,
		UserPrompt:        userPromt,
	}
}

const cvRewriteSysPromt = "You are a STAR Method CV rewriter. Output JSON only."

const cvRewriteTemplate = `Role: Expert CV Writer and Career Coach.
Task: Rewrite weak bullet points in the provided CV using the STAR Method (Situation, Task, Action, Result).

Input CV:
"%s"

Instructions:
1. Identify the 3-5 weakest or most vague experience bullet points.
2. Rewrite them to be quantifiable and impact-driven.
3. Keep the tone professional and executive.

Output JSON only:
{
    "improvements": [
        { "original": "string", "improved": "string" }
    ],
    "general_advice": "Brief summary of changes made."
}`

// BuildCvRewrite — промт переписывания резюме по методу STAR
func BuildCvRewrite(cvText string) Prompt {
	return Prompt{
		SystemInstruction: cvRewriteSysPromt,
		UserPrompt:        fmt.Sprintf(cvRewriteTemplate, TruncateRunes(cvText, cvAuditTextLimit)),
	}
}

const interviewHardcoreTone = "You are 'Alex', a strict and skeptical senior recruiter. You interrupt when answers are vague. You demand examples (STAR method). You are not here to make friends, but to find the best candidate."
const interviewCoachTone = "You are 'Alex', a helpful and encouraging career coach. You guide the candidate to give better answers."

const interviewInstructions = `Instructions:
1. Start by introducing yourself briefly and asking the first question directly related to a weak point in the CV.
2. Keep your responses short (max 2-3 sentences) to allow for a fluid voice conversation.
3. If the user gives a weak answer, challenge them.
4. Focus on technical skills match and behavioral fit.

IMPORTANT: Do not break character. Do not say "I am an AI". Act exactly like the recruiter.`

// BuildInterviewTurn — промт очередной реплики интервьюера.
// История диалога разворачивается в текст, т.к. не все провайдеры
// принимают массив сообщений.
func BuildInterviewTurn(cvText, jobDescription string, mode models.InterviewMode, history []interviewapimodels.ChatMessage) Prompt {
	tone := interviewHardcoreTone
	if mode == models.InterviewModeCoach {
		tone = interviewCoachTone
	}
	sys := fmt.Sprintf(`%s

Candidate CV:
"%s"

Job Description:
"%s"

%s`,
		tone,
		TruncateRunes(cvText, interviewContextLimit),
		TruncateRunes(jobDescription, interviewContextLimit),
		interviewInstructions,
	)

	if len(history) == 0 {
		return Prompt{
			SystemInstruction: sys,
			UserPrompt:        "Begin the interview now.",
		}
	}

	var sb strings.Builder
	sb.WriteString("Conversation so far:\n")
	for _, msg := range history {
		label := "Candidate"
		if msg.Role == "assistant" {
			label = "Interviewer"
		}
		sb.WriteString(label)
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}
	sb.WriteString("\nReply with the interviewer's next line only.")
	return Prompt{
		SystemInstruction: sys,
		UserPrompt:        sb.String(),
	}
}

const interviewFeedbackSysPromt = "You are an interview coach. Output a short plain-text assessment, 1-2 sentences."

const interviewFeedbackTemplate = `The candidate just answered an interview question.

Question: "%s"
Answer: "%s"

Give brief feedback on the answer: structure (STAR), specificity and relevance.`

// BuildInterviewFeedback — промт краткой оценки последнего ответа кандидата
func BuildInterviewFeedback(question, answer string) Prompt {
	return Prompt{
		SystemInstruction: interviewFeedbackSysPromt,
		UserPrompt: fmt.Sprintf(interviewFeedbackTemplate,
			TruncateRunes(question, interviewContextLimit),
			TruncateRunes(answer, interviewContextLimit)),
	}
}

const psychoSysPromt = "You are a Psychometric API. Return JSON only."

const psychoTemplate = `Actúa como Headhunter Senior. Analiza:
1. Contexto del Candidato (CV Resumido): %s...
2. Puesto Objetivo: %s...
3. Psicometría Realizada:
   - DASS-21 (Salud Mental 0-42): [Stress:%d, Anxiety:%d, Depression:%d] (Normal: <10, Severo: >20)
   - Flow State (Rendimiento 1-5): [Avg:%.2f] (Alto: >4.0)
   - Big 5 (Personalidad 1-5): [O:%.2f, C:%.2f, E:%.2f, A:%.2f, N:%.2f]

Genera un JSON con:
{
  "porcentaje_match": (Integer 0-100),
  "analisis_brechas": ["List of 3 distinct missing skills or traits"],
  "ajuste_cultural": "Analysis based on Big 5 vs typical culture for this role",
  "prediccion_performance": "Analysis based on Flow State score",
  "guia_entrevista": ["Question 1 (Probe Weakness)", "Question 2 (Verify Strength)", "Question 3 (Cultural Fit)"]
}`

// BuildPsychometricReport — промт итогового отчёта по психометрии
func BuildPsychometricReport(cvText, jobDescription string, scores psychoapimodels.ScoreSet) Prompt {
	return Prompt{
		SystemInstruction: psychoSysPromt,
		UserPrompt: fmt.Sprintf(psychoTemplate,
			TruncateRunes(cvText, psychoCvLimit),
			TruncateRunes(jobDescription, psychoJdLimit),
			scores.Dass.Stress, scores.Dass.Anxiety, scores.Dass.Depression,
			scores.Flow.Average,
			scores.Big5.Openness, scores.Big5.Conscientiousness, scores.Big5.Extraversion,
			scores.Big5.Agreeableness, scores.Big5.Neuroticism,
		),
	}
}

// TruncateRunes — префиксная обрезка по символам, безопасная для UTF-8
func TruncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
