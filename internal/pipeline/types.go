// Package pipeline computes the Life Morale Index.
//
// Scoring is a fixed, stateless sequence of stages: calibration, dimension
// aggregation, time allocation, quality mapping, optional cross-lift, the
// time-weighted raw score, and the RI and life-condition adjustments. The
// sequence runs once for the current ratings and once for the scenario
// ratings against the same week. Score is a pure function of its input
// and config.
package pipeline

import "encoding/json"

// Dimension is one of the five psychological groupings of the answers.
type Dimension int

const (
	Fulfillment Dimension = iota
	Connection
	Autonomy
	Vitality
	Peace
	numDimensions
)

// AnswerCount is the number of answers the questionnaire defines.
const AnswerCount = 24

// dimensionRanges holds the [start, end) answer indices of each dimension.
var dimensionRanges = [numDimensions][2]int{
	Fulfillment: {0, 5},
	Connection:  {5, 10},
	Autonomy:    {10, 15},
	Vitality:    {15, 20},
	Peace:       {20, 24},
}

var dimensionNames = [numDimensions]string{
	Fulfillment: "Fulfillment",
	Connection:  "Connection",
	Autonomy:    "Autonomy",
	Vitality:    "Vitality",
	Peace:       "Peace",
}

// Dimensions lists every dimension in questionnaire order.
func Dimensions() []Dimension {
	return []Dimension{Fulfillment, Connection, Autonomy, Vitality, Peace}
}

func (d Dimension) String() string {
	if d < 0 || d >= numDimensions {
		return "Unknown"
	}
	return dimensionNames[d]
}

// Range returns the first answer index of the dimension and one past its last.
func (d Dimension) Range() (start, end int) {
	r := dimensionRanges[d]
	return r[0], r[1]
}

// Category is one of the nine fixed time-allocation labels.
type Category int

const (
	Sleep Category = iota
	Work
	Commute
	Relationships
	Leisure
	Gym
	Chores
	Growth
	Other
	numCategories
)

var categoryNames = [numCategories]string{
	Sleep:         "Sleep",
	Work:          "Work",
	Commute:       "Commute",
	Relationships: "Relationships",
	Leisure:       "Leisure",
	Gym:           "Gym",
	Chores:        "Chores",
	Growth:        "Growth",
	Other:         "Other",
}

// Categories lists every category in canonical order.
func Categories() []Category {
	out := make([]Category, numCategories)
	for i := range out {
		out[i] = Category(i)
	}
	return out
}

func (c Category) String() string {
	if c < 0 || c >= numCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

// ParseCategory resolves an exact category label.
func ParseCategory(label string) (Category, bool) {
	for i, name := range categoryNames {
		if name == label {
			return Category(i), true
		}
	}
	return 0, false
}

// Answer is one rated questionnaire item.
type Answer struct {
	Score         Value  `json:"score" yaml:"score"`
	ScenarioScore Value  `json:"scenarioScore" yaml:"scenarioScore"`
	Note          string `json:"note,omitempty" yaml:"note,omitempty"`
}

// TimeRow is one caller-supplied time allocation entry.
type TimeRow struct {
	Category string `json:"category" yaml:"category"`
	Hours    Value  `json:"hours" yaml:"hours"`
	RI       Value  `json:"ri" yaml:"ri"`
}

// Input is everything a single scoring call needs besides the base config.
type Input struct {
	Answers []Answer         `json:"answers"`
	TimeMap []TimeRow        `json:"timeMap"`
	ELI     Value            `json:"eli"`
	Config  *ConfigOverrides `json:"config,omitempty"`
}

// DimensionAverages holds one average per dimension; None means no data.
type DimensionAverages [numDimensions]Value

// Get returns the average for d.
func (a DimensionAverages) Get(d Dimension) Value { return a[d] }

// MarshalJSON encodes the averages as an object keyed by dimension name.
func (a DimensionAverages) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.byName())
}

// MarshalYAML mirrors MarshalJSON.
func (a DimensionAverages) MarshalYAML() (interface{}, error) {
	return a.byName(), nil
}

func (a DimensionAverages) byName() map[string]Value {
	m := make(map[string]Value, numDimensions)
	for _, d := range Dimensions() {
		m[d.String()] = a[d]
	}
	return m
}

// Contributor is one answer surfaced as a drainer or uplifter.
type Contributor struct {
	Index int     `json:"index" yaml:"index"`
	Score float64 `json:"score" yaml:"score"`
	Note  string  `json:"note" yaml:"note"`
}

// Run is the result of one pass of the pipeline (current or scenario).
type Run struct {
	Calibrated   []Value           `json:"calibrated" yaml:"calibrated"`
	Dimensions   DimensionAverages `json:"dimensions" yaml:"dimensions"`
	Qualities    BucketQualities   `json:"qualities" yaml:"qualities"`
	SleepQuality float64           `json:"sleepQuality" yaml:"sleepQuality"`
	RawLMS       float64           `json:"rawLMS" yaml:"rawLMS"`
	RIAdjusted   float64           `json:"riAdjusted" yaml:"riAdjusted"`
	FinalLMI     float64           `json:"finalLMI" yaml:"finalLMI"`
}

// Output is the full result of Score.
type Output struct {
	Current         Run           `json:"current" yaml:"current"`
	Scenario        Run           `json:"scenario" yaml:"scenario"`
	AwakeHours      float64       `json:"awakeHours" yaml:"awakeHours"`
	OtherAwakeHours float64       `json:"otherAwakeHours" yaml:"otherAwakeHours"`
	NetRI           float64       `json:"netRI" yaml:"netRI"`
	ELI             float64       `json:"eli" yaml:"eli"`
	LMC             float64       `json:"lmc" yaml:"lmc"`
	TopDrainers     []Contributor `json:"topDrainers" yaml:"topDrainers"`
	TopUplifters    []Contributor `json:"topUplifters" yaml:"topUplifters"`
}
