package scoring

import (
	"time"

	"adhd-task-assistant/internal/model"
)

// TimeContext is the clock and the user's declared energy at scoring time.
type TimeContext struct {
	Now         time.Time
	EnergyLevel int
}

// SubScores holds every factor of the composite, each in [0,100].
type SubScores struct {
	Urgency          float64 `json:"urgency"`
	Importance       float64 `json:"importance"`
	EnergyMatch      float64 `json:"energyMatch"`
	Dopamine         float64 `json:"dopamine"`
	TimeOptimization float64 `json:"timeOptimization"`
	Interest         float64 `json:"interest"`
	Context          float64 `json:"context"`
}

// Composite weights. They sum to 1.
const (
	WeightUrgency          = 0.25
	WeightImportance       = 0.20
	WeightEnergyMatch      = 0.15
	WeightDopamine         = 0.15
	WeightTimeOptimization = 0.10
	WeightInterest         = 0.10
	WeightContext          = 0.05
)

// Energy bands by hour of day, inclusive.
const (
	highEnergyStart   = 9
	highEnergyEnd     = 11
	mediumEnergyStart = 17
	mediumEnergyEnd   = 20
)

const dueSoonWindow = 24 * time.Hour

var priorityUrgency = map[model.Priority]float64{
	model.PriorityUrgent: 95,
	model.PriorityHigh:   75,
	model.PriorityMedium: 50,
	model.PriorityLow:    25,
}

var categoryImportance = map[model.Category]float64{
	model.CategoryUrgent:      95,
	model.CategoryHealth:      85,
	model.CategoryWork:        80,
	model.CategoryLearning:    75,
	model.CategoryPersonal:    70,
	model.CategorySocial:      65,
	model.CategoryCreative:    60,
	model.CategoryMaintenance: 55,
}

type hourRange struct {
	start, end int
}

// optimalHours are the inclusive hour windows in which a category fits best.
// Urgent tasks are always in window.
var optimalHours = map[model.Category][]hourRange{
	model.CategoryWork:        {{9, 17}},
	model.CategoryCreative:    {{10, 12}, {19, 22}},
	model.CategoryLearning:    {{9, 11}, {15, 17}},
	model.CategorySocial:      {{17, 22}},
	model.CategoryHealth:      {{7, 9}, {18, 20}},
	model.CategoryMaintenance: {{16, 18}},
	model.CategoryPersonal:    {{17, 23}},
}
