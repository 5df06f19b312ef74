package models

// Tier — тариф пользователя, определяет полноту выдаваемого отчёта
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// ParseTier — неизвестные значения трактуем как free
func ParseTier(value string) Tier {
	if Tier(value) == TierPro {
		return TierPro
	}
	return TierFree
}

func (t Tier) IsPro() bool {
	return t == TierPro
}

// Complexity — условная сложность запроса, определяет выбор модели
type Complexity string

const (
	ComplexityMedium  Complexity = "medium"
	ComplexityHard    Complexity = "hard"
	ComplexityComplex Complexity = "complex"
)

type AiProviderName string

const (
	AiProviderAuto      AiProviderName = "auto"
	AiProviderYandexGPT AiProviderName = "yandexgpt"
	AiProviderOllama    AiProviderName = "ollama"
	AiProviderGemini    AiProviderName = "gemini"
)

type AssessmentKind string

const (
	AssessmentCvAudit            AssessmentKind = "cv_audit"
	AssessmentCvRewrite          AssessmentKind = "cv_rewrite"
	AssessmentInterviewTurn      AssessmentKind = "interview_turn"
	AssessmentPsychometricReport AssessmentKind = "psychometric_report"
)

var assessmentKindHumanName = map[AssessmentKind]string{
	AssessmentCvAudit:            "Аудит резюме",
	AssessmentCvRewrite:          "Переработка резюме",
	AssessmentInterviewTurn:      "Тренировка интервью",
	AssessmentPsychometricReport: "Психометрический отчёт",
}

func (k AssessmentKind) ToHuman() string {
	if human, exist := assessmentKindHumanName[k]; exist {
		return human
	}
	return string(k)
}

// CvRubric — вариант рубрики оценки резюме
type CvRubric string

const (
	CvRubricStrictATS CvRubric = "strict_ats"
	CvRubricKnockout  CvRubric = "knockout"
	CvRubricEuropass  CvRubric = "europass"
)

var cvRubricHumanName = map[CvRubric]string{
	CvRubricStrictATS: "Жёсткий ATS-фильтр",
	CvRubricKnockout:  "ATS с правилами отсева",
	CvRubricEuropass:  "Europass-коуч",
}

func (r CvRubric) ToHuman() string {
	if human, exist := cvRubricHumanName[r]; exist {
		return human
	}
	return string(r)
}

// InterviewMode — тон интервьюера в ролевой игре
type InterviewMode string

const (
	InterviewModeHardcore InterviewMode = "hardcore"
	InterviewModeCoach    InterviewMode = "coach"
)
