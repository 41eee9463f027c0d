package pipeline

import "math"

// HoursPerWeek is the length of the scored week.
const HoursPerWeek = 168.0

// Defaults for categories the caller leaves out.
const (
	DefaultSleepHours = 49.0
	NeutralRI         = 5.0
)

// Allocation is the resolved hours and RI of one category.
type Allocation struct {
	Hours float64 `json:"hours"`
	RI    float64 `json:"ri"`
}

// TimeAllocation is the week resolved onto the nine fixed categories.
type TimeAllocation struct {
	byCategory [numCategories]Allocation

	// AwakeHours is 168 minus sleep, never negative.
	AwakeHours float64
	// OtherAwakeHours is the awake time outside Work, Commute, Gym,
	// Relationships and Leisure, never negative. It stands in for
	// Chores, Growth and Other together.
	OtherAwakeHours float64
}

// Get returns the resolved allocation of c.
func (t TimeAllocation) Get(c Category) Allocation { return t.byCategory[c] }

// ResolveTime builds the fixed category table from the caller's rows.
// Rows with unknown labels are ignored. When a category appears more
// than once the first row wins. Missing categories get 0 hours (Sleep:
// 49) and a neutral RI. Out-of-range hours and RI pass through as given;
// Validate reports them.
func ResolveTime(rows []TimeRow) TimeAllocation {
	var t TimeAllocation
	var seen [numCategories]bool
	for _, c := range Categories() {
		t.byCategory[c] = defaultAllocation(c)
	}
	for _, row := range rows {
		c, ok := ParseCategory(row.Category)
		if !ok || seen[c] {
			continue
		}
		seen[c] = true
		def := defaultAllocation(c)
		t.byCategory[c] = Allocation{
			Hours: row.Hours.Or(def.Hours),
			RI:    row.RI.Or(def.RI),
		}
	}

	t.AwakeHours = math.Max(0, HoursPerWeek-t.byCategory[Sleep].Hours)
	tracked := 0.0
	for _, c := range trackedCategories {
		tracked += t.byCategory[c].Hours
	}
	t.OtherAwakeHours = math.Max(0, t.AwakeHours-tracked)
	return t
}

// trackedCategories are the awake categories scored on their own; all
// other awake time falls into the residual bucket.
var trackedCategories = [...]Category{Work, Commute, Gym, Relationships, Leisure}

func defaultAllocation(c Category) Allocation {
	if c == Sleep {
		return Allocation{Hours: DefaultSleepHours, RI: NeutralRI}
	}
	return Allocation{Hours: 0, RI: NeutralRI}
}
