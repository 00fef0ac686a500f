// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkttrail/api-schema/src/config"
	"github.com/pkttrail/api-schema/src/schema"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func render(w io.Writer, format string, results []result) error {
	switch format {
	case config.OutputJSON:
		return renderJSON(w, results)
	case config.OutputTable:
		_, err := io.WriteString(w, renderTable(results))
		return err
	default:
		return renderText(w, results)
	}
}

func renderJSON(w io.Writer, results []result) error {
	if results == nil {
		results = []result{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// renderText writes one status line per message, followed by one indented
// line per violation:
//
//	a.json: init-request: invalid
//	  params.agentUUID [payload]: required
func renderText(w io.Writer, results []result) error {
	var b strings.Builder
	for _, r := range results {
		status := "ok"
		if !r.Valid {
			status = "invalid"
		}
		fmt.Fprintf(&b, "%s: %s: %s\n", r.Source, r.Kind, status)
		if r.Error != "" {
			fmt.Fprintf(&b, "  %s\n", r.Error)
		}
		for _, v := range r.Violations {
			fmt.Fprintf(&b, "  %s [%s]: %s\n", v.Field, v.Class, v.Reason)
		}
		for _, v := range r.SchemaViolations {
			fmt.Fprintf(&b, "  %s [%s, json-schema]: %s\n", v.Field, v.Class, v.Reason)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func newMarkdownTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
}

// renderTable renders one row per violation, or a single row for a valid
// or malformed message.
func renderTable(results []result) string {
	if len(results) == 0 {
		return "No messages to display\n"
	}

	var buf strings.Builder
	table := newMarkdownTable(&buf)
	table.Header([]string{"Source", "Kind", "Status", "Field", "Class", "Reason"})

	var rows [][]string
	for _, r := range results {
		kind := r.Kind.String()
		switch {
		case r.Valid:
			rows = append(rows, []string{r.Source, kind, "ok", "", "", ""})
			continue
		case r.Error != "":
			rows = append(rows, []string{r.Source, kind, "malformed", "", "", r.Error})
		}
		for _, v := range r.Violations {
			rows = append(rows, []string{r.Source, kind, "invalid", v.Field, v.Class.String(), v.Reason})
		}
		for _, v := range r.SchemaViolations {
			rows = append(rows, []string{r.Source, kind, "invalid", v.Field, v.Class.String() + " (json-schema)", v.Reason})
		}
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

// renderKinds lists every message kind with its method and direction.
func renderKinds() string {
	var buf strings.Builder
	table := newMarkdownTable(&buf)
	table.Header([]string{"Kind", "Method", "Direction"})

	title := cases.Title(language.English)

	var rows [][]string
	for _, k := range schema.Kinds() {
		method := k.Method()
		switch k {
		case schema.KindStatusNotification:
			method = "any (" + schema.MethodAgentStatus + ")"
		case schema.KindErrorResponse:
			method = schema.MethodAgentInit + ", " + schema.MethodAgentKeepAlive
		}
		rows = append(rows, []string{k.String(), method, title.String(string(k.Direction()))})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
