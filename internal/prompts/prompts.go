// Package prompts provides the MCP prompts offered by the server, and
// centralizes the tool descriptions used throughout the Tana MCP server.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/jsonrpc"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Prompt names.
const (
	CreateTaskPrompt           = "create-task"
	CreateProjectPrompt        = "create-project"
	CreateMeetingNotesPrompt   = "create-meeting-notes"
	CreateKnowledgeEntryPrompt = "create-knowledge-entry"
)

// Definition pairs a prompt with its handler.
type Definition struct {
	Prompt  *mcp.Prompt
	Handler mcp.PromptHandler
}

// section is an optional labelled block of a rendered prompt.
type section struct {
	arg   string
	label string
	list  bool
}

type template struct {
	name         string
	description  string
	args         []*mcp.PromptArgument
	intro        func(args map[string]string) string
	sections     []section
	instructions string
}

var templates = []template{
	{
		name:        CreateTaskPrompt,
		description: "Create a task in Tana with optional due date, priority and tags",
		args: []*mcp.PromptArgument{
			{Name: "title", Description: "Task title", Required: true},
			{Name: "description", Description: "Task details"},
			{Name: "dueDate", Description: "Due date, ISO 8601 (e.g. 2024-01-15)"},
			{Name: "priority", Description: "Priority, e.g. high, medium or low"},
			{Name: "tags", Description: "Comma-separated tags"},
		},
		intro: func(args map[string]string) string {
			return fmt.Sprintf(TaskPromptTemplate, args["title"])
		},
		sections: []section{
			{arg: "description", label: "Description"},
			{arg: "dueDate", label: "Due date"},
			{arg: "priority", label: "Priority"},
			{arg: "tags", label: "Tags", list: true},
		},
		instructions: TaskPromptInstructions,
	},
	{
		name:        CreateProjectPrompt,
		description: "Create a project in Tana with goals, dates and team members",
		args: []*mcp.PromptArgument{
			{Name: "name", Description: "Project name", Required: true},
			{Name: "description", Description: "Project summary"},
			{Name: "goals", Description: "Comma-separated goals"},
			{Name: "startDate", Description: "Start date, ISO 8601"},
			{Name: "endDate", Description: "End date, ISO 8601"},
			{Name: "team", Description: "Comma-separated team members"},
		},
		intro: func(args map[string]string) string {
			return fmt.Sprintf(ProjectPromptTemplate, args["name"])
		},
		sections: []section{
			{arg: "description", label: "Description"},
			{arg: "goals", label: "Goals", list: true},
			{arg: "startDate", label: "Start date"},
			{arg: "endDate", label: "End date"},
			{arg: "team", label: "Team", list: true},
		},
		instructions: ProjectPromptInstructions,
	},
	{
		name:        CreateMeetingNotesPrompt,
		description: "Record meeting notes in Tana with attendees, agenda and action items",
		args: []*mcp.PromptArgument{
			{Name: "title", Description: "Meeting title", Required: true},
			{Name: "date", Description: "Meeting date, ISO 8601", Required: true},
			{Name: "attendees", Description: "Comma-separated attendees"},
			{Name: "agenda", Description: "Comma-separated agenda items"},
			{Name: "notes", Description: "Free-form notes"},
			{Name: "actionItems", Description: "Comma-separated action items"},
		},
		intro: func(args map[string]string) string {
			return fmt.Sprintf(MeetingNotesPromptTemplate, args["title"], args["date"])
		},
		sections: []section{
			{arg: "attendees", label: "Attendees", list: true},
			{arg: "agenda", label: "Agenda", list: true},
			{arg: "notes", label: "Notes"},
			{arg: "actionItems", label: "Action items", list: true},
		},
		instructions: MeetingNotesPromptInstructions,
	},
	{
		name:        CreateKnowledgeEntryPrompt,
		description: "Capture a knowledge base entry in Tana with sources and related topics",
		args: []*mcp.PromptArgument{
			{Name: "topic", Description: "Entry topic", Required: true},
			{Name: "content", Description: "Entry content", Required: true},
			{Name: "category", Description: "Category"},
			{Name: "sources", Description: "Comma-separated sources or URLs"},
			{Name: "related", Description: "Comma-separated related topics"},
		},
		intro: func(args map[string]string) string {
			return fmt.Sprintf(KnowledgeEntryPromptTemplate, args["topic"], args["content"])
		},
		sections: []section{
			{arg: "category", label: "Category"},
			{arg: "sources", label: "Sources", list: true},
			{arg: "related", label: "Related topics", list: true},
		},
		instructions: KnowledgeEntryPromptInstructions,
	},
}

// Definitions returns every prompt the server offers.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(templates))
	for _, t := range templates {
		defs = append(defs, Definition{
			Prompt: &mcp.Prompt{
				Name:        t.name,
				Description: t.description,
				Arguments:   t.args,
			},
			Handler: t.handler(),
		})
	}
	return defs
}

// Register adds every prompt to server and returns their names.
func Register(server *mcp.Server) []string {
	defs := Definitions()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		server.AddPrompt(def.Prompt, def.Handler)
		names = append(names, def.Prompt.Name)
	}
	return names
}

func (t template) handler() mcp.PromptHandler {
	return func(_ context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		var args map[string]string
		if req.Params != nil {
			args = req.Params.Arguments
		}

		text, err := t.render(args)
		if err != nil {
			return nil, err
		}

		return &mcp.GetPromptResult{
			Description: t.description,
			Messages: []*mcp.PromptMessage{
				{Role: "user", Content: &mcp.TextContent{Text: text}},
			},
		}, nil
	}
}

// render fills the template. Required arguments must be non-blank.
func (t template) render(args map[string]string) (string, error) {
	trimmed := make(map[string]string, len(args))
	for k, v := range args {
		trimmed[k] = strings.TrimSpace(v)
	}

	for _, arg := range t.args {
		if arg.Required && trimmed[arg.Name] == "" {
			return "", &jsonrpc.Error{
				Code:    jsonrpc.CodeInvalidParams,
				Message: fmt.Sprintf("prompt %s: missing required argument %q", t.name, arg.Name),
			}
		}
	}

	var b strings.Builder
	b.WriteString(t.intro(trimmed))

	var details []string
	for _, s := range t.sections {
		value := trimmed[s.arg]
		if value == "" {
			continue
		}
		if !s.list {
			details = append(details, fmt.Sprintf("- %s: %s", s.label, value))
			continue
		}
		items := SplitList(value)
		if len(items) == 0 {
			continue
		}
		details = append(details, fmt.Sprintf("- %s:", s.label))
		for _, item := range items {
			details = append(details, "  - "+item)
		}
	}
	if len(details) > 0 {
		b.WriteString("\n\nDetails:\n")
		b.WriteString(strings.Join(details, "\n"))
	}

	b.WriteString("\n\n")
	b.WriteString(t.instructions)
	return b.String(), nil
}

// SplitList splits a comma-separated argument, dropping blank items.
func SplitList(value string) []string {
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
