package message

import (
	"lspwire/src/internal/common"
	"lspwire/src/internal/errors"
	"lspwire/src/internal/types"
	"lspwire/src/wire/settings"
)

// Workspace is a root folder handed to the server at initialization
type Workspace struct {
	URI  string `yaml:"uri" json:"uri"`
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// ConfigLookup resolves the workspace_config registered for a filetype.
// The returned value may be any shape settings.Normalize accepts.
type ConfigLookup interface {
	WorkspaceConfig(filetype string) (any, bool)
}

// Initialize is the first request of a session
type Initialize struct {
	request
	processID  int
	workspaces []Workspace
}

// NewInitialize requires at least one workspace; the first one becomes rootUri
func NewInitialize(processID int, workspaces []Workspace) (*Initialize, error) {
	if len(workspaces) == 0 {
		return nil, errors.NewMissingRequiredFieldError(types.MethodInitialize, "workspace")
	}
	if err := requireField(types.MethodInitialize, "workspace.uri", workspaces[0].URI); err != nil {
		return nil, err
	}
	return &Initialize{
		processID:  processID,
		workspaces: append([]Workspace(nil), workspaces...),
	}, nil
}

// Method returns "initialize"
func (*Initialize) Method() string { return types.MethodInitialize }

// RootURI returns the workspace URI sent as rootUri
func (m *Initialize) RootURI() string { return m.workspaces[0].URI }

// Payload returns processId, client capabilities and rootUri
func (m *Initialize) Payload() map[string]any {
	return map[string]any{
		"processId": m.processID,
		"capabilities": map[string]any{
			"workspace":    map[string]any{"configuration": true},
			"textDocument": map[string]any{},
		},
		"rootUri": m.RootURI(),
	}
}

// Initialized acknowledges the initialize response
type Initialized struct {
	notification
}

// NewInitialized creates the initialized notification
func NewInitialized() *Initialized { return &Initialized{} }

// Method returns "initialized"
func (*Initialized) Method() string { return types.MethodInitialized }

// Payload is always an empty object
func (*Initialized) Payload() map[string]any { return map[string]any{} }

// DidChangeConfiguration pushes the settings registered for one filetype
type DidChangeConfiguration struct {
	notification
	filetype string
	settings any
}

// NewDidChangeConfiguration looks up and normalizes the workspace config
// for filetype. A nil lookup or an unregistered filetype sends {}.
func NewDidChangeConfiguration(filetype string, lookup ConfigLookup) (*DidChangeConfiguration, error) {
	m := &DidChangeConfiguration{filetype: filetype, settings: map[string]any{}}
	if lookup == nil {
		return m, nil
	}
	raw, ok := lookup.WorkspaceConfig(filetype)
	if !ok {
		common.WireLogger.Debug("No workspace config registered for filetype %q", filetype)
		return m, nil
	}
	tree, err := settings.Normalize(raw)
	if err != nil {
		return nil, err
	}
	m.settings = tree
	return m, nil
}

// Method returns "workspace/didChangeConfiguration"
func (*DidChangeConfiguration) Method() string { return types.MethodWorkspaceDidChangeConfiguration }

// Filetype returns the filetype the settings were resolved for
func (m *DidChangeConfiguration) Filetype() string { return m.filetype }

// Settings returns the normalized settings tree
func (m *DidChangeConfiguration) Settings() any { return m.settings }

// Payload wraps the normalized settings
func (m *DidChangeConfiguration) Payload() map[string]any {
	return map[string]any{"settings": m.settings}
}
