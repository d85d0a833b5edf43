package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/teamform/teamform/internal/formation"
	"github.com/teamform/teamform/internal/tsv"
)

type styles struct {
	heading lipgloss.Style
	project lipgloss.Style
	muted   lipgloss.Style
	bad     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		project: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		bad:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func renderOutcome(w io.Writer, o formation.Outcome) error {
	st := newStyles(w)
	var b strings.Builder

	section := func(title string, entries []formation.Entry) {
		fmt.Fprintf(&b, "%s (%d)\n", st.heading.Render(title), len(entries))
		for i, e := range entries {
			line := fmt.Sprintf("  %2d. %s  %s", i+1, st.project.Render(e.AssignedProject), strings.Join(e.TeamMembers, ", "))
			if e.SubmissionTime != "" {
				line += "  " + st.muted.Render(e.SubmissionTime)
			}
			b.WriteString(line + "\n")
		}
	}

	section("Valid teams", o.Result.ValidTeams)
	section("Invalid teams", o.Result.InvalidTeams)
	section("Other teams", o.Result.OtherTeams)

	if len(o.Result.UnassignedStudents) > 0 {
		fmt.Fprintf(&b, "%s %s\n", st.bad.Render("Unassigned:"), strings.Join(o.Result.UnassignedStudents, ", "))
	}
	b.WriteString(st.muted.Render(fmt.Sprintf("%d participants mentioned, %d placed, unique projects: %t",
		o.Summary.ParticipantsMentioned, o.Summary.ParticipantsPlaced, o.Summary.UniqueProjects)) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func renderReport(w io.Writer, rep tsv.Report) error {
	st := newStyles(w)
	var b strings.Builder

	fmt.Fprintf(&b, "%s rows: %d, valid: %d, invalid: %d, header skipped: %t\n",
		st.bad.Render("Validation failed."), rep.RowsTotal, rep.RowsValid, rep.RowsInvalid, rep.SkippedHeader)
	for _, e := range rep.Errors {
		fmt.Fprintf(&b, "  line %d, column %d (%s): %s", e.Line, e.Column, e.Field, e.Message)
		if e.Value != "" {
			fmt.Fprintf(&b, " %s", st.muted.Render(fmt.Sprintf("%q", e.Value)))
		}
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
