package resources

// APIDocumentation is served at tana://api/documentation.
const APIDocumentation = `# Tana Input API

The Input API is write-only: it creates nodes and renames existing ones. It
cannot read, search, move or delete nodes.

## Request

    POST https://europe-west1-tagr-prod.cloudfunctions.net/addToNodeV2
    Authorization: Bearer <API token>
    Content-Type: application/json

    {
      "targetNodeId": "optional parent node ID",
      "nodes": [ ...up to 100 nodes... ]
    }

Without targetNodeId, nodes are added to the Library. Use "SCHEMA" to add
supertag and field definitions to the workspace schema.

Renaming uses the same endpoint:

    { "targetNodeId": "node ID", "setName": "new name" }

## Response

    { "children": [ { "nodeId": "...", "name": "...", "children": [...] } ] }

One entry per submitted node, in submission order. Rename responses do not
always include the node.

## Limits

- At most 100 nodes per request, counted at the top level
- API tokens are created per workspace in Tana under Settings > API tokens
- The API rate-limits aggressive callers with HTTP 429. Wait and retry later
`

// NodeTypesReference is served at tana://reference/node-types.
const NodeTypesReference = `# Node types

Every node except reference and field nodes accepts:

- name: the node text
- description: a line shown below the name
- supertags: [{"id": "tag ID", "fields": {"field ID": "value"}}]
- children: nested nodes, in order

## plain (default)

    {"name": "Buy milk"}

dataType may be omitted or set to "plain".

## reference

    {"dataType": "reference", "id": "target node ID"}

Nothing else may be set.

## date

    {"dataType": "date", "name": "2024-01-15"}

name must be ISO 8601: a date, a date with time (2024-01-15T09:30) or a
full timestamp with zone (2024-01-15T09:30:00Z).

## url

    {"dataType": "url", "name": "https://tana.inc"}

name must be an absolute URL including the scheme.

## boolean

    {"dataType": "boolean", "name": "Done?", "value": false}

value is required.

## file

    {"dataType": "file", "file": "<base64>", "filename": "report.pdf", "contentType": "application/pdf"}

## field

    {"type": "field", "attributeId": "field ID", "children": [{"name": "value"}]}

Sets a field on the parent node. children are the values. name,
description and supertags are not allowed.
`

// CommonPatterns is served at tana://examples/common-patterns.
const CommonPatterns = `# Common patterns

## Task with a due date

create_node_structure:

    {
      "node": {
        "name": "Write quarterly report",
        "supertags": [{"id": "<task tag ID>"}],
        "children": [
          {"type": "field", "attributeId": "<due date field ID>", "children": [
            {"dataType": "date", "name": "2024-03-31"}
          ]}
        ]
      }
    }

## Define a tag with a field, then use it

1. create_supertag {"name": "book"} returns the tag's nodeId
2. create_field {"name": "Author"} returns the field's nodeId
3. create_plain_node:

    {"name": "Dune", "supertags": [{"id": "<book ID>", "fields": {"<Author ID>": "Frank Herbert"}}]}

## Checklist

create_nodes:

    {
      "targetNodeId": "<parent ID>",
      "nodes": [
        {"dataType": "boolean", "name": "Pack", "value": false},
        {"dataType": "boolean", "name": "Book hotel", "value": true}
      ]
    }

## Link to an existing node

create_reference_node {"referenceId": "<node ID>", "targetNodeId": "<parent ID>"}

## Rename

set_node_name {"nodeId": "<node ID>", "newName": "New title"}
`
