package scoring

import (
	"fmt"
	"math"

	psychoapimodels "career-coach-backend/models/api/psychometric"
)

// Наборы вопросов DASS-21, по 7 пунктов на шкалу, не пересекаются
var dassDimensions = map[string][]int{
	"stress":     {1, 6, 8, 11, 12, 14, 18},
	"anxiety":    {2, 4, 7, 9, 15, 19, 20},
	"depression": {3, 5, 10, 13, 16, 17, 21},
}

// ComputeDASS21 — сумма ответов шкалы, умноженная на 2.
// Отсутствующий ответ считается нулём. Диапазон каждой шкалы [0,42].
func ComputeDASS21(answers psychoapimodels.AnswerMap) psychoapimodels.DassScores {
	scores := map[string]int{}
	for dim, qIDs := range dassDimensions {
		sum := 0
		for _, id := range qIDs {
			sum += answers[fmt.Sprintf("dass_%d", id)]
		}
		scores[dim] = sum * 2
	}
	return psychoapimodels.DassScores{
		Stress:     scores["stress"],
		Anxiety:    scores["anxiety"],
		Depression: scores["depression"],
	}
}

// ComputeFlow — 9 измерений по 4 последовательных вопроса (1..36).
// Отсутствующий ответ считается нейтральным (3). Значения в [1,5].
func ComputeFlow(answers psychoapimodels.AnswerMap) psychoapimodels.FlowScores {
	perDimension := map[string]float64{}
	totalSum := 0
	totalCount := 0
	for dim := 1; dim <= 9; dim++ {
		dimSum := 0
		start := (dim-1)*4 + 1
		end := dim * 4
		for q := start; q <= end; q++ {
			val, ok := answers[fmt.Sprintf("flow_%d", q)]
			if !ok {
				val = 3
			}
			dimSum += val
			totalSum += val
			totalCount++
		}
		perDimension[fmt.Sprintf("dim_%d", dim)] = round2(float64(dimSum) / 4)
	}
	return psychoapimodels.FlowScores{
		Average:      round2(float64(totalSum) / float64(totalCount)),
		PerDimension: perDimension,
	}
}

var big5Traits = []string{"openness", "conscientiousness", "extraversion", "agreeableness", "neuroticism"}

// ComputeBig5 — 5 черт по 10 последовательных вопросов (1..50).
// Чётные позиции в общей нумерации реверсируются как 6-v,
// отсутствующий ответ считается нейтральным (3). Средние в [1,5].
func ComputeBig5(answers psychoapimodels.AnswerMap) psychoapimodels.Big5Scores {
	scores := map[string]float64{}
	qIndex := 1
	for _, trait := range big5Traits {
		sum := 0
		for i := 0; i < 10; i++ {
			val, ok := answers[fmt.Sprintf("big5_%d", qIndex)]
			if !ok {
				val = 3
			}
			if qIndex%2 == 0 {
				val = 6 - val
			}
			sum += val
			qIndex++
		}
		scores[trait] = round2(float64(sum) / 10)
	}
	return psychoapimodels.Big5Scores{
		Openness:          scores["openness"],
		Conscientiousness: scores["conscientiousness"],
		Extraversion:      scores["extraversion"],
		Agreeableness:     scores["agreeableness"],
		Neuroticism:       scores["neuroticism"],
	}
}

// ComputeScoreSet — полный набор баллов по ответам опросника
func ComputeScoreSet(answers psychoapimodels.AnswerMap) psychoapimodels.ScoreSet {
	return psychoapimodels.ScoreSet{
		Dass: ComputeDASS21(answers),
		Flow: ComputeFlow(answers),
		Big5: ComputeBig5(answers),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
