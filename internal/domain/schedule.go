package domain

// ScheduledTask is a dated, timed and identified entry of a user's schedule.
type ScheduledTask struct {
	ID          string      `json:"id" yaml:"id"`
	TaskID      string      `json:"taskId" yaml:"taskId"`
	Title       string      `json:"title" yaml:"title"`
	Category    string      `json:"category" yaml:"category"`
	Date        string      `json:"date" yaml:"date"`
	StartTime   string      `json:"startTime" yaml:"startTime"`
	EndTime     string      `json:"endTime" yaml:"endTime"`
	Phase       CyclePhase  `json:"phase" yaml:"phase"`
	EnergyLevel EnergyLevel `json:"energyLevel" yaml:"energyLevel"`
	EnergyType  EnergyType  `json:"energyType,omitempty" yaml:"energyType,omitempty"`
	IsProject   bool        `json:"isProject,omitempty" yaml:"isProject,omitempty"`
	Repeats     bool        `json:"repeats,omitempty" yaml:"repeats,omitempty"`
}

// ScheduleConflict is a maximal group of same-date tasks linked by pairwise
// time overlap. TimeRange spans the pair that opened the cluster.
type ScheduleConflict struct {
	Tasks     []ScheduledTask `json:"tasks"`
	Date      string          `json:"date"`
	TimeRange string          `json:"timeRange"`
}

// Task is an entry of the user's task list.
type Task struct {
	ID              string          `json:"id" yaml:"id"`
	Title           string          `json:"title" yaml:"title"`
	Category        string          `json:"category" yaml:"category"`
	IsFixed         bool            `json:"isFixed" yaml:"isFixed"`
	Duration        string          `json:"duration" yaml:"duration"`
	Date            string          `json:"date,omitempty" yaml:"date,omitempty"`
	StartTime       string          `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime         string          `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	Deadline        string          `json:"deadline,omitempty" yaml:"deadline,omitempty"`
	RepeatFrequency RepeatFrequency `json:"repeatFrequency,omitempty" yaml:"repeatFrequency,omitempty"`
	IsProject       bool            `json:"isProject,omitempty" yaml:"isProject,omitempty"`
}

// DefaultCycleLength is the cycle length assumed when none is stored.
const DefaultCycleLength = 28

// Snapshot is the persisted state of one user.
type Snapshot struct {
	UserID         string          `json:"-"`
	CycleDay       int             `json:"cycleDay"`
	LastPeriodDate string          `json:"lastPeriodDate,omitempty"`
	CycleLength    int             `json:"cycleLength,omitempty"`
	Tasks          []Task          `json:"tasks"`
	Schedule       []ScheduledTask `json:"schedule"`
}
