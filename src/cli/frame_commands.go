package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"lspwire/src/config"
	"lspwire/src/internal/common"
	"lspwire/src/internal/types"
	"lspwire/src/wire"
	"lspwire/src/wire/idgen"
)

// frameContext carries the resolved inputs of one frame command
type frameContext struct {
	cfg  *config.Config
	opts *options
	enc  *wire.Encoder
}

type frameFunc func(fc *frameContext) (idgen.CorrelationID, []byte, error)

// methodAliases maps the short names accepted on the command line
var methodAliases = map[string]string{
	"initialize":    types.MethodInitialize,
	"initialized":   types.MethodInitialized,
	"configuration": types.MethodWorkspaceDidChangeConfiguration,
	"didOpen":       types.MethodTextDocumentDidOpen,
	"didSave":       types.MethodTextDocumentDidSave,
	"didChange":     types.MethodTextDocumentDidChange,
	"completion":    types.MethodTextDocumentCompletion,
	"definition":    types.MethodTextDocumentDefinition,
	"format":        types.MethodTextDocumentFormatting,
	"rename":        types.MethodTextDocumentRename,
	"signature":     types.MethodTextDocumentSignatureHelp,
	"hover":         types.MethodTextDocumentHover,
}

var frameBuilders = map[string]frameFunc{
	types.MethodInitialize: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		workspaces, err := workspaceFolders(fc.opts.root)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Initialize(processID(fc.opts), workspaces)
	},
	types.MethodInitialized: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		return fc.enc.Initialized()
	},
	types.MethodWorkspaceDidChangeConfiguration: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		return fc.enc.DidChangeConfiguration(resolveFiletype(fc.cfg, fc.opts))
	},
	types.MethodTextDocumentDidOpen: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, text, err := fc.document(true)
		if err != nil {
			return "", nil, err
		}
		languageID := resolveLanguageID(fc.cfg, fc.opts, resolveFiletype(fc.cfg, fc.opts))
		return fc.enc.DidOpen(string(docURI), string(languageID), fc.opts.version, text)
	},
	types.MethodTextDocumentDidSave: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, text, err := fc.document(true)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.DidSave(string(docURI), fc.opts.version, text)
	},
	types.MethodTextDocumentDidChange: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, text, err := fc.document(true)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.DidChange(string(docURI), fc.opts.version, text)
	},
	types.MethodTextDocumentCompletion: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Completion(string(docURI), fc.opts.line, fc.opts.offset)
	},
	types.MethodTextDocumentDefinition: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Definition(string(docURI), fc.opts.line, fc.opts.offset)
	},
	types.MethodTextDocumentFormatting: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Format(string(docURI))
	},
	types.MethodTextDocumentRename: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Rename(string(docURI), fc.opts.line, fc.opts.offset, fc.opts.name)
	},
	types.MethodTextDocumentSignatureHelp: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Signature(string(docURI), fc.opts.line, fc.opts.offset)
	},
	types.MethodTextDocumentHover: func(fc *frameContext) (idgen.CorrelationID, []byte, error) {
		docURI, _, err := fc.document(false)
		if err != nil {
			return "", nil, err
		}
		return fc.enc.Hover(string(docURI), fc.opts.line, fc.opts.offset)
	},
}

func (fc *frameContext) document(withText bool) (string, string, error) {
	docURI, err := documentURI(fc.opts)
	if err != nil || !withText {
		return string(docURI), "", err
	}
	text, err := documentText(fc.opts)
	if err != nil {
		return "", "", err
	}
	return string(docURI), text, nil
}

// resolveMethod accepts a full method name or one of methodAliases
func resolveMethod(name string) (string, frameFunc, error) {
	method := name
	if full, ok := methodAliases[name]; ok {
		method = full
	}
	build, ok := frameBuilders[method]
	if !ok {
		known := make([]string, 0, len(methodAliases))
		for alias := range methodAliases {
			known = append(known, alias)
		}
		sort.Strings(known)
		return "", nil, fmt.Errorf("unknown method %q (known: %s)", name, strings.Join(known, ", "))
	}
	return method, build, nil
}

func runFrameCmd(cmd *cobra.Command, opts *options, name string) error {
	method, build, err := resolveMethod(name)
	if err != nil {
		return err
	}

	cfg, err := loadConfigForCLI(opts.configPath)
	if err != nil {
		return err
	}

	fc := &frameContext{cfg: cfg, opts: opts, enc: newEncoder(cfg, opts.sequential)}
	id, frame, err := build(fc)
	if err != nil {
		return fmt.Errorf("failed to frame %s: %w", method, err)
	}

	logFrame(method, id, frame)
	_, err = cmd.OutOrStdout().Write(frame)
	return err
}

func runHandshakeCmd(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfigForCLI(opts.configPath)
	if err != nil {
		return err
	}

	workspaces, err := workspaceFolders(opts.root)
	if err != nil {
		return err
	}

	filetype := resolveFiletype(cfg, opts)
	var doc wire.Document
	if opts.file != "" {
		docURI, err := documentURI(opts)
		if err != nil {
			return err
		}
		text, err := documentText(opts)
		if err != nil {
			return err
		}
		doc = wire.Document{
			URI:        string(docURI),
			LanguageID: string(resolveLanguageID(cfg, opts, filetype)),
			Version:    1,
			Text:       text,
		}
	}

	frames, err := newEncoder(cfg, opts.sequential).Handshake(processID(opts), workspaces, filetype, doc)
	if err != nil {
		return fmt.Errorf("failed to frame handshake: %w", err)
	}
	return writeFrames(cmd.OutOrStdout(), frames)
}

func writeFrames(w io.Writer, frames []wire.Frame) error {
	for _, f := range frames {
		logFrame(f.Method, f.ID, f.Bytes)
		if _, err := w.Write(f.Bytes); err != nil {
			return fmt.Errorf("failed to write %s frame: %w", f.Method, err)
		}
	}
	return nil
}

func logFrame(method string, id idgen.CorrelationID, frame []byte) {
	if id == "" {
		common.CLILogger.Debug("Framed notification %s (%d bytes)", method, len(frame))
		return
	}
	common.CLILogger.Info("Framed request %s id=%s (%d bytes)", method, id, len(frame))
}
