// Package docs describes the HTTP API as an OpenAPI 3.0 document.
package docs

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

const (
	Title   = "Simple Notes API"
	Version = "1.0.0"
)

type Document struct {
	OpenAPI    string              `json:"openapi" yaml:"openapi"`
	Info       Info                `json:"info" yaml:"info"`
	Servers    []Server            `json:"servers" yaml:"servers"`
	Tags       []Tag               `json:"tags" yaml:"tags"`
	Paths      map[string]PathItem `json:"paths" yaml:"paths"`
	Components Components          `json:"components" yaml:"components"`
}

type Info struct {
	Title       string `json:"title" yaml:"title"`
	Version     string `json:"version" yaml:"version"`
	Description string `json:"description" yaml:"description"`
}

type Server struct {
	URL         string `json:"url" yaml:"url"`
	Description string `json:"description" yaml:"description"`
}

type Tag struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
}

type PathItem struct {
	Get    *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post   *Operation `json:"post,omitempty" yaml:"post,omitempty"`
	Put    *Operation `json:"put,omitempty" yaml:"put,omitempty"`
	Delete *Operation `json:"delete,omitempty" yaml:"delete,omitempty"`
}

type Operation struct {
	Summary     string              `json:"summary" yaml:"summary"`
	Tags        []string            `json:"tags" yaml:"tags"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	RequestBody *RequestBody        `json:"requestBody,omitempty" yaml:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	In          string  `json:"in" yaml:"in"`
	Name        string  `json:"name" yaml:"name"`
	Required    bool    `json:"required" yaml:"required"`
	Description string  `json:"description" yaml:"description"`
	Schema      *Schema `json:"schema" yaml:"schema"`
}

type RequestBody struct {
	Required bool                 `json:"required" yaml:"required"`
	Content  map[string]MediaType `json:"content" yaml:"content"`
}

type Response struct {
	Description string               `json:"description" yaml:"description"`
	Content     map[string]MediaType `json:"content,omitempty" yaml:"content,omitempty"`
}

type MediaType struct {
	Schema *Schema `json:"schema" yaml:"schema"`
}

type Schema struct {
	Ref        string             `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type       string             `json:"type,omitempty" yaml:"type,omitempty"`
	Format     string             `json:"format,omitempty" yaml:"format,omitempty"`
	Example    interface{}        `json:"example,omitempty" yaml:"example,omitempty"`
	Required   []string           `json:"required,omitempty" yaml:"required,omitempty"`
	Properties map[string]*Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty" yaml:"items,omitempty"`
}

type Components struct {
	Schemas map[string]*Schema `json:"schemas" yaml:"schemas"`
}

func ref(name string) *Schema {
	return &Schema{Ref: "#/components/schemas/" + name}
}

func jsonContent(schema *Schema) map[string]MediaType {
	return map[string]MediaType{"application/json": {Schema: schema}}
}

func dataEnvelope(schema *Schema) *Schema {
	return &Schema{
		Type:       "object",
		Properties: map[string]*Schema{"data": schema},
	}
}

var errorResponse = Response{
	Content: jsonContent(ref("Error")),
}

func withDescription(r Response, description string) Response {
	r.Description = description
	return r
}

// New builds the API document for a server reachable at serverURL.
func New(serverURL string) *Document {
	idParam := Parameter{
		In:          "path",
		Name:        "id",
		Required:    true,
		Description: "Note id",
		Schema:      &Schema{Type: "integer"},
	}

	noteBody := &RequestBody{
		Required: true,
		Content: jsonContent(&Schema{
			Type: "object",
			Properties: map[string]*Schema{
				"title":   {Type: "string"},
				"content": {Type: "string"},
			},
		}),
	}
	createBody := &RequestBody{
		Required: true,
		Content: jsonContent(&Schema{
			Type:     "object",
			Required: []string{"title"},
			Properties: map[string]*Schema{
				"title":   {Type: "string"},
				"content": {Type: "string"},
			},
		}),
	}

	return &Document{
		OpenAPI: "3.0.0",
		Info: Info{
			Title:       Title,
			Version:     Version,
			Description: "CRUD API for a simple notes app",
		},
		Servers: []Server{{URL: serverURL, Description: "Local"}},
		Tags: []Tag{
			{Name: "Health", Description: "Service health checks"},
			{Name: "Notes", Description: "Notes CRUD operations"},
		},
		Paths: map[string]PathItem{
			"/": {
				Get: &Operation{
					Summary: "Health endpoint",
					Tags:    []string{"Health"},
					Responses: map[string]Response{
						"200": {Description: "Service health check passed", Content: jsonContent(ref("Health"))},
					},
				},
			},
			"/notes": {
				Get: &Operation{
					Summary: "List all notes",
					Tags:    []string{"Notes"},
					Responses: map[string]Response{
						"200": {Description: "Array of notes", Content: jsonContent(dataEnvelope(&Schema{Type: "array", Items: ref("Note")}))},
					},
				},
				Post: &Operation{
					Summary:     "Create a new note",
					Tags:        []string{"Notes"},
					RequestBody: createBody,
					Responses: map[string]Response{
						"201": {Description: "Created note", Content: jsonContent(dataEnvelope(ref("Note")))},
						"400": withDescription(errorResponse, "Validation error"),
					},
				},
			},
			"/notes/{id}": {
				Put: &Operation{
					Summary:     "Update a note by id",
					Tags:        []string{"Notes"},
					Parameters:  []Parameter{idParam},
					RequestBody: noteBody,
					Responses: map[string]Response{
						"200": {Description: "Updated note", Content: jsonContent(dataEnvelope(ref("Note")))},
						"400": withDescription(errorResponse, "Validation error"),
						"404": withDescription(errorResponse, "Note not found"),
					},
				},
				Delete: &Operation{
					Summary:    "Delete a note by id",
					Tags:       []string{"Notes"},
					Parameters: []Parameter{idParam},
					Responses: map[string]Response{
						"204": {Description: "Note deleted"},
						"400": withDescription(errorResponse, "Validation error"),
						"404": withDescription(errorResponse, "Note not found"),
					},
				},
			},
		},
		Components: Components{
			Schemas: map[string]*Schema{
				"Note": {
					Type: "object",
					Properties: map[string]*Schema{
						"id":        {Type: "integer", Example: 1},
						"title":     {Type: "string", Example: "My Note"},
						"content":   {Type: "string", Example: "Optional content"},
						"createdAt": {Type: "string", Format: "date-time"},
						"updatedAt": {Type: "string", Format: "date-time"},
					},
				},
				"Error": {
					Type: "object",
					Properties: map[string]*Schema{
						"error":   {Type: "string", Example: "ValidationError"},
						"message": {Type: "string"},
					},
				},
				"Health": {
					Type: "object",
					Properties: map[string]*Schema{
						"status":      {Type: "string", Example: "ok"},
						"message":     {Type: "string", Example: "Service is healthy"},
						"timestamp":   {Type: "string", Format: "date-time"},
						"environment": {Type: "string", Example: "development"},
					},
				},
			},
		},
	}
}

func (d *Document) YAML() ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi yaml: %w", err)
	}
	return out, nil
}

func (d *Document) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode openapi json: %w", err)
	}
	return out, nil
}
