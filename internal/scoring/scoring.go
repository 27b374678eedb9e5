// Package scoring computes the 0-100 priority score of a task.
package scoring

import (
	"adhd-task-assistant/internal/model"
	"adhd-task-assistant/pkg/datemath"
)

// Score returns the composite priority of task at tc.
func Score(task model.Task, tc TimeContext) float64 {
	return Composite(Breakdown(task, tc))
}

// Breakdown returns every sub-score of task at tc.
func Breakdown(task model.Task, tc TimeContext) SubScores {
	hour := tc.Now.Hour()
	return SubScores{
		Urgency:          urgency(task, tc),
		Importance:       importance(task),
		EnergyMatch:      energyMatch(task, hour),
		Dopamine:         task.DopamineScore * 100,
		TimeOptimization: timeOptimization(task, hour),
		Interest:         interest(task),
		Context:          contextScore(task, hour),
	}
}

// Composite combines sub-scores with the fixed weights, clamped to [0,100].
func Composite(s SubScores) float64 {
	total := WeightUrgency*s.Urgency +
		WeightImportance*s.Importance +
		WeightEnergyMatch*s.EnergyMatch +
		WeightDopamine*s.Dopamine +
		WeightTimeOptimization*s.TimeOptimization +
		WeightInterest*s.Interest +
		WeightContext*s.Context
	return clamp(total)
}

// Apply returns a copy of task with its derived score fields filled in.
func Apply(task model.Task, tc TimeContext) model.Task {
	out := task.Clone()
	sub := Breakdown(task, tc)
	out.UrgencyScore = sub.Urgency
	out.ImportanceScore = sub.Importance
	out.PriorityScore = Composite(sub)
	return out
}

// ScoreFromIntent scores a createTask intent before any Task exists.
// Relative due dates are resolved in tc.Now's location.
func ScoreFromIntent(intent model.TaskIntent, tc TimeContext) float64 {
	resolver := datemath.NewParserInLocation(tc.Now.Location())
	return Score(model.NewTaskFromIntent(intent, tc.Now, resolver), tc)
}

func urgency(task model.Task, tc TimeContext) float64 {
	switch {
	case IsOverdue(task, tc.Now):
		return 100
	case IsDueToday(task, tc.Now):
		return 90
	case IsDueSoon(task, tc.Now):
		return 80
	}
	if v, ok := priorityUrgency[task.Priority]; ok {
		return v
	}
	return priorityUrgency[model.PriorityMedium]
}

func importance(task model.Task) float64 {
	base, ok := categoryImportance[task.Category]
	if !ok {
		base = categoryImportance[model.CategoryPersonal]
	}
	if task.IsRecurring {
		base += 10
	}
	if task.DueDate != nil {
		base += 10
	}
	return clamp(base)
}

func energyMatch(task model.Task, hour int) float64 {
	switch {
	case inHighEnergyBand(hour):
		if task.EnergyLevel >= 4 {
			return 80
		}
		return 60
	case inMediumEnergyBand(hour):
		if task.EnergyLevel == 3 {
			return 80
		}
		return 60
	default:
		if task.EnergyLevel <= 2 {
			return 80
		}
		return 40
	}
}

func timeOptimization(task model.Task, hour int) float64 {
	if task.EstimatedMinutes <= 15 && !inHighEnergyBand(hour) {
		return 80
	}
	if InOptimalWindow(task.Category, hour) {
		return 90
	}
	return 50
}

func interest(task model.Task) float64 {
	if task.Category == model.CategoryCreative || task.Category == model.CategoryLearning {
		return 80
	}
	return 60
}

func contextScore(task model.Task, hour int) float64 {
	if task.Category == model.CategoryWork && hour >= 9 && hour <= 17 {
		return 90
	}
	if task.Category == model.CategoryPersonal && hour >= 17 {
		return 90
	}
	return 50
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > model.MaxScore {
		return model.MaxScore
	}
	return v
}
