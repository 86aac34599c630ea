package service

import (
	"fmt"
	"html"
	"strings"

	"github.com/sarigr/uni-schedule/modules/schedule/entity"
	scheduleService "github.com/sarigr/uni-schedule/modules/schedule/service"
)

var dayNames = map[entity.Day]string{
	entity.DayMon: "Monday",
	entity.DayTue: "Tuesday",
	entity.DayWed: "Wednesday",
	entity.DayThu: "Thursday",
	entity.DayFri: "Friday",
}

// badge returns the two-letter class-type marker shown in grid cells.
func badge(t entity.ClassType) string {
	if t == entity.ClassTypeLab {
		return "LB"
	}
	return "TH"
}

// esc escapes user-supplied text before interpolation. The document is opened
// directly in a browser, so every interpolated field goes through here.
func esc(s string) string {
	return html.EscapeString(s)
}

type palette struct {
	bg, fg, muted, border, cellBg, emptyBg, accent, badgeBg string
}

func themePalette(theme string) palette {
	if theme == "dark" {
		return palette{
			bg:      "#15181e",
			fg:      "#e8eaf0",
			muted:   "#9aa3b2",
			border:  "#2c3240",
			cellBg:  "#1d2129",
			emptyBg: "#181b22",
			accent:  "#6ea8fe",
			badgeBg: "#2c3a55",
		}
	}
	return palette{
		bg:      "#ffffff",
		fg:      "#1f2430",
		muted:   "#6b7280",
		border:  "#d7dbe3",
		cellBg:  "#f7f8fa",
		emptyBg: "#fcfcfd",
		accent:  "#1d4ed8",
		badgeBg: "#dbe5ff",
	}
}

// renderScheduleDocument serializes the schedule into a complete, styled,
// self-contained HTML document: no external stylesheets, scripts or fetches,
// printable as-is. It never fails on valid in-memory state; an empty schedule
// renders the placeholder.
func renderScheduleDocument(state *entity.ScheduleState, groups []scheduleService.CourseGroup, theme string) string {
	p := themePalette(theme)

	var b strings.Builder
	b.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	b.WriteString("<title>Weekly Schedule</title>\n")
	writeStyles(&b, p)
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Weekly Schedule</h1>\n")

	if len(state.Courses) == 0 && len(state.Assignments) == 0 {
		b.WriteString("<p class=\"empty-state\">No entries yet — the schedule is empty.</p>\n")
	} else {
		writeGrid(&b, state)
		writeCourseList(&b, state, groups)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeStyles(b *strings.Builder, p palette) {
	fmt.Fprintf(b, `<style>
:root {
  --bg: %s; --fg: %s; --muted: %s; --border: %s;
  --cell-bg: %s; --empty-bg: %s; --accent: %s; --badge-bg: %s;
}
* { box-sizing: border-box; }
body {
  margin: 24px auto; max-width: 960px; padding: 0 16px;
  background: var(--bg); color: var(--fg);
  font: 15px/1.5 -apple-system, "Segoe UI", Roboto, sans-serif;
}
h1 { font-size: 1.5rem; }
h2 { font-size: 1.15rem; margin-top: 2rem; }
table { width: 100%%; border-collapse: collapse; margin-top: 1rem; }
th, td { border: 1px solid var(--border); padding: 8px; text-align: left; vertical-align: top; }
th { background: var(--cell-bg); }
td.filled { background: var(--cell-bg); }
td.empty { background: var(--empty-bg); color: var(--muted); text-align: center; }
.slot-label { white-space: nowrap; color: var(--muted); }
.badge {
  display: inline-block; padding: 0 6px; margin-left: 6px;
  border-radius: 4px; background: var(--badge-bg); color: var(--accent);
  font-size: 0.75rem; font-weight: 600;
}
.room { display: block; color: var(--muted); font-size: 0.85rem; }
.course { margin: 1rem 0; padding: 12px; border: 1px solid var(--border); border-radius: 6px; }
.course h3 { margin: 0 0 4px; font-size: 1rem; }
.course a { color: var(--accent); }
.course .meta { color: var(--muted); font-size: 0.9rem; }
.course ul { margin: 8px 0 0; padding-left: 20px; }
.empty-state { margin-top: 2rem; padding: 24px; text-align: center; color: var(--muted); border: 1px dashed var(--border); border-radius: 6px; }
@media (max-width: 640px) {
  body { margin: 12px auto; }
  table { font-size: 0.85rem; }
  th, td { padding: 4px; }
}
@media print {
  body { margin: 0; max-width: none; background: #fff; color: #000; }
  .course { break-inside: avoid; }
  table { page-break-inside: auto; }
  tr { page-break-inside: avoid; }
}
</style>
`, p.bg, p.fg, p.muted, p.border, p.cellBg, p.emptyBg, p.accent, p.badgeBg)
}

func writeGrid(b *strings.Builder, state *entity.ScheduleState) {
	b.WriteString("<table>\n<thead>\n<tr><th>Time</th>")
	for _, day := range entity.Weekdays {
		fmt.Fprintf(b, "<th>%s</th>", dayNames[day])
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, slot := range state.Slots {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<th class=\"slot-label\">%s</th>", esc(slot.Label))
		for _, day := range entity.Weekdays {
			assignment := state.AssignmentAt(day, slot.ID)
			if assignment == nil {
				b.WriteString("<td class=\"empty\">—</td>")
				continue
			}
			title := ""
			if course := state.CourseByID(assignment.CourseID); course != nil {
				title = course.Title
			}
			room := assignment.Room
			if room == "" {
				room = "—"
			}
			fmt.Fprintf(b, "<td class=\"filled\">%s<span class=\"badge\">%s</span><span class=\"room\">%s</span></td>",
				esc(title), badge(assignment.ClassType), esc(room))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func writeCourseList(b *strings.Builder, state *entity.ScheduleState, groups []scheduleService.CourseGroup) {
	b.WriteString("<h2>Courses</h2>\n")
	for _, group := range groups {
		b.WriteString("<div class=\"course\">\n")
		fmt.Fprintf(b, "<h3>%s</h3>\n", esc(group.Course.Title))
		if group.Course.DefaultProfessors != "" {
			fmt.Fprintf(b, "<div class=\"meta\">%s</div>\n", esc(group.Course.DefaultProfessors))
		}
		if group.Course.CourseURL != "" {
			fmt.Fprintf(b, "<div class=\"meta\"><a href=\"%s\">%s</a></div>\n",
				esc(group.Course.CourseURL), esc(group.Course.CourseURL))
		}
		if len(group.Sessions) == 0 {
			b.WriteString("<div class=\"meta\">Not scheduled</div>\n")
		} else {
			b.WriteString("<ul>\n")
			for _, session := range group.Sessions {
				slotLabel := session.SlotID
				if slot := state.SlotByID(session.SlotID); slot != nil {
					slotLabel = slot.Label
				}
				line := fmt.Sprintf("%s, %s — %s", dayNames[session.Day], slotLabel, badge(session.ClassType))
				if session.Room != "" {
					line += ", " + session.Room
				}
				if session.Professors != "" {
					line += ", " + session.Professors
				}
				fmt.Fprintf(b, "<li>%s</li>\n", esc(line))
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("</div>\n")
	}
}
