package pipeline

import "sort"

// TopContributors is how many drainers and uplifters are reported.
const TopContributors = 3

// ExtractDrainersUplifters ranks the answered raw current scores. The
// lowest three are drainers, the highest three uplifters. Ties keep
// questionnaire order.
func ExtractDrainersUplifters(answers []Answer) (drainers, uplifters []Contributor) {
	answered := make([]Contributor, 0, len(answers))
	for i, a := range answers {
		if s, ok := a.Score.Get(); ok {
			answered = append(answered, Contributor{Index: i, Score: s, Note: a.Note})
		}
	}

	asc := make([]Contributor, len(answered))
	copy(asc, answered)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Score < asc[j].Score })

	desc := make([]Contributor, len(answered))
	copy(desc, answered)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].Score > desc[j].Score })

	return head(asc, TopContributors), head(desc, TopContributors)
}

func head(c []Contributor, n int) []Contributor {
	if len(c) > n {
		c = c[:n]
	}
	return c
}
