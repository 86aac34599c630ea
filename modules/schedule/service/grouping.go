package service

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sarigr/uni-schedule/modules/schedule/entity"
)

// CourseGroup pairs a catalog course with its placed sessions, ready for
// display or export.
type CourseGroup struct {
	Course   entity.Course       `json:"course"`
	Sessions []entity.Assignment `json:"sessions"`
}

// NewCollator builds the locale-aware title comparator. Unknown locale tags
// degrade to the undetermined language, which compares case-insensitively.
func NewCollator(locale string) *collate.Collator {
	return collate.New(language.Make(locale), collate.IgnoreCase)
}

// GroupByCourse partitions assignments by course and orders everything
// deterministically: sessions by day then slot-registry position (assignments
// whose slot left the registry sort last), scheduled courses first by title,
// unscheduled courses appended, likewise by title. Pure function of its
// inputs; it is recomputed per call, never cached.
func GroupByCourse(state *entity.ScheduleState, col *collate.Collator) []CourseGroup {
	byCourse := make(map[string][]entity.Assignment, len(state.Courses))
	for _, a := range state.Assignments {
		byCourse[a.CourseID] = append(byCourse[a.CourseID], a)
	}

	slotRank := func(slotID string) int {
		if idx := state.SlotIndex(slotID); idx >= 0 {
			return idx
		}
		return len(state.Slots) // sentinel: unknown slots sort last
	}

	scheduled := make([]CourseGroup, 0, len(state.Courses))
	unscheduled := make([]CourseGroup, 0)
	for _, course := range state.Courses {
		sessions := make([]entity.Assignment, 0, len(byCourse[course.ID]))
		sessions = append(sessions, byCourse[course.ID]...)
		sort.Slice(sessions, func(i, j int) bool {
			di, dj := sessions[i].Day.Index(), sessions[j].Day.Index()
			if di != dj {
				return di < dj
			}
			ri, rj := slotRank(sessions[i].SlotID), slotRank(sessions[j].SlotID)
			if ri != rj {
				return ri < rj
			}
			return sessions[i].ID < sessions[j].ID
		})

		group := CourseGroup{Course: course, Sessions: sessions}
		if len(sessions) > 0 {
			scheduled = append(scheduled, group)
		} else {
			unscheduled = append(unscheduled, group)
		}
	}

	byTitle := func(groups []CourseGroup) {
		sort.Slice(groups, func(i, j int) bool {
			if cmp := col.CompareString(groups[i].Course.Title, groups[j].Course.Title); cmp != 0 {
				return cmp < 0
			}
			return groups[i].Course.ID < groups[j].Course.ID
		})
	}
	byTitle(scheduled)
	byTitle(unscheduled)

	return append(scheduled, unscheduled...)
}
