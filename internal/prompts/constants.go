// Package prompts contains all prompt strings and descriptions used by the tools.
package prompts

// Node creation tool descriptions
const (
	// CreatePlainNodeToolDescription is the description for the create_plain_node tool
	CreatePlainNodeToolDescription = `Create a plain text node in Tana.

- name is the node's text
- description adds a description line below the name
- supertags applies tags by ID, optionally filling their fields (fields maps field ID to value)
- targetNodeId inserts the node under an existing node. Without it the node goes to the Library

Returns the created node, including the ID Tana assigned to it.`

	// CreateReferenceNodeToolDescription is the description for the create_reference_node tool
	CreateReferenceNodeToolDescription = `Create a reference to an existing Tana node.

- referenceId is the ID of the node to reference
- targetNodeId is where the reference is placed. Without it the reference goes to the Library

Reference nodes cannot carry a name, description, supertags or children.`

	// CreateDateNodeToolDescription is the description for the create_date_node tool
	CreateDateNodeToolDescription = `Create a date node in Tana.

- date must be ISO 8601: 2024-01-15, 2024-01-15T09:30 or 2024-01-15T09:30:00Z
- description and supertags work as for plain nodes
- targetNodeId inserts the node under an existing node`

	// CreateURLNodeToolDescription is the description for the create_url_node tool
	CreateURLNodeToolDescription = `Create a URL node in Tana.

- url must be an absolute URL including its scheme, e.g. https://tana.inc
- description and supertags work as for plain nodes
- targetNodeId inserts the node under an existing node

Invalid URLs are rejected without contacting Tana.`

	// CreateCheckboxNodeToolDescription is the description for the create_checkbox_node tool
	CreateCheckboxNodeToolDescription = `Create a checkbox (boolean) node in Tana.

- name is the checkbox label
- checked sets the initial state
- description and supertags work as for plain nodes
- targetNodeId inserts the node under an existing node`

	// CreateFileNodeToolDescription is the description for the create_file_node tool
	CreateFileNodeToolDescription = `Upload a file to Tana as a file node.

- fileData is the file content, base64 encoded
- filename is the name shown in Tana
- contentType is the MIME type, e.g. application/pdf or image/png
- description and supertags work as for plain nodes
- targetNodeId inserts the node under an existing node`

	// CreateFieldNodeToolDescription is the description for the create_field_node tool
	CreateFieldNodeToolDescription = `Set a field value on a Tana node.

- attributeId is the field definition's ID
- children are the field values, in order. Each child has the same shape as the node argument of create_node_structure
- targetNodeId is the node that receives the field

Field nodes cannot carry a name, description or supertags.`

	// CreateNodeStructureToolDescription is the description for the create_node_structure tool
	CreateNodeStructureToolDescription = `Create a node together with any number of nested children in a single request.

A node is an object with:
- dataType: plain (default), reference, date, url, boolean or file
- name, description, supertags and children for every data type except reference
- id for reference nodes
- value for boolean nodes (required)
- file, filename and contentType for file nodes
- type: "field" together with attributeId and children to set a field value

Every nested node is checked against the same rules before anything is sent. The first invalid node is reported with its position, e.g. node.children[2].children[0].`

	// CreateNodesToolDescription is the description for the create_nodes tool
	CreateNodesToolDescription = `Create several sibling nodes in one request.

- nodes is a list of 1 to 100 nodes, each with the same shape as the node argument of create_node_structure
- targetNodeId inserts all of them under an existing node

Either every node is created or the whole call fails. Results are returned in the order submitted.`

	// SetNodeNameToolDescription is the description for the set_node_name tool
	SetNodeNameToolDescription = `Rename an existing Tana node.

- nodeId is the node to rename
- newName is the new text

Tana does not always echo the renamed node. In that case the result only contains nodeId.`

	// CreateSupertagToolDescription is the description for the create_supertag tool
	CreateSupertagToolDescription = `Define a new supertag in Tana.

- name is the tag name, without a leading #
- description explains what the tag is for
- targetNodeId defaults to the workspace schema (SCHEMA)

Returns the new tag's node. Use its nodeId in the supertags argument of other tools.`

	// CreateFieldToolDescription is the description for the create_field tool
	CreateFieldToolDescription = `Define a new field in Tana.

- name is the field name
- description explains what the field holds
- targetNodeId defaults to the workspace schema (SCHEMA)

Returns the new field's node. Use its nodeId as attributeId in create_field_node, or as a key in supertag fields.`
)

// Prompt templates. Each is filled with fmt-style arguments; optional
// sections are appended separately.
const (
	// TaskPromptTemplate introduces a task; the argument is the title
	TaskPromptTemplate = `Create a task in Tana titled %q.`

	// ProjectPromptTemplate introduces a project; the argument is the project name
	ProjectPromptTemplate = `Create a project in Tana named %q.`

	// MeetingNotesPromptTemplate introduces meeting notes; the arguments are title and date
	MeetingNotesPromptTemplate = `Create meeting notes in Tana for %q held on %s.`

	// KnowledgeEntryPromptTemplate introduces a knowledge entry; the arguments are topic and content
	KnowledgeEntryPromptTemplate = `Create a knowledge base entry in Tana about %q.

Content:
%s`

	// TaskPromptInstructions closes the task prompt
	TaskPromptInstructions = `Use create_node_structure with a plain node named after the task. Add the due date as a date node child and the remaining details as plain children. If a task supertag exists, apply it; otherwise consider creating one with create_supertag.`

	// ProjectPromptInstructions closes the project prompt
	ProjectPromptInstructions = `Use create_node_structure with a plain node for the project. Put each goal and team member under it as a child node, and the dates as date node children. Keep the goals in the order given.`

	// MeetingNotesPromptInstructions closes the meeting notes prompt
	MeetingNotesPromptInstructions = `Use create_node_structure with a plain node for the meeting, a date node child for the date, and one child per attendee, agenda item and note. Create each action item as a boolean node child with value false so it can be checked off later.`

	// KnowledgeEntryPromptInstructions closes the knowledge entry prompt
	KnowledgeEntryPromptInstructions = `Use create_node_structure with a plain node for the topic and the content as its description or children. Add sources as url node children when they are URLs, and related topics as reference nodes when their IDs are known.`
)

// ServerInstructions is sent to clients when they initialize a session.
const ServerInstructions = `This server writes to a Tana workspace through the Tana Input API. It can create nodes of every type, rename nodes, and define supertags and fields. It cannot read, search, move or delete nodes, so keep the IDs returned by earlier calls if you need to build on them.

Up to 100 nodes can be created per request. Read tana://reference/node-types for the node formats accepted by create_node_structure and create_nodes.`
