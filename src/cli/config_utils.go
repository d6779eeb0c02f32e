package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"lspwire/src/config"
	"lspwire/src/internal/common"
	"lspwire/src/wire"
	"lspwire/src/wire/idgen"
	"lspwire/src/wire/message"
)

// loadConfigForCLI loads the --config file, the default file or built-in
// defaults, in that order
func loadConfigForCLI(configPath string) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func newEncoder(cfg *config.Config, sequential bool) *wire.Encoder {
	var ids idgen.Generator
	if sequential {
		ids = idgen.NewSequence("")
	}
	return wire.NewEncoder(ids, cfg)
}

// documentURI resolves --uri or --file to a document URI. Paths are made
// absolute before conversion.
func documentURI(opts *options) (protocol.DocumentURI, error) {
	if opts.uri != "" {
		return protocol.DocumentURI(opts.uri), nil
	}
	if opts.file == "" {
		return "", nil
	}
	abs, err := common.ResolvePath(opts.file)
	if err != nil {
		return "", err
	}
	return protocol.DocumentURI(uri.File(abs)), nil
}

// workspaceFolders returns the single workspace rooted at --root or the
// working directory
func workspaceFolders(root string) ([]message.Workspace, error) {
	abs, err := common.ResolveWorkspaceRoot(root)
	if err != nil {
		return nil, err
	}
	return []message.Workspace{{
		URI:  string(uri.File(abs)),
		Name: filepath.Base(abs),
	}}, nil
}

// resolveFiletype prefers --filetype and falls back to extension detection
func resolveFiletype(cfg *config.Config, opts *options) string {
	if opts.filetype != "" {
		return opts.filetype
	}
	if opts.file == "" {
		return ""
	}
	filetype, ok := cfg.DetectFiletype(opts.file)
	if !ok {
		common.CLILogger.Debug("No filetype matches %s", opts.file)
	}
	return filetype
}

// resolveLanguageID prefers --language-id and falls back to the configured
// language of the filetype
func resolveLanguageID(cfg *config.Config, opts *options, filetype string) protocol.LanguageIdentifier {
	if opts.languageID != "" {
		return protocol.LanguageIdentifier(opts.languageID)
	}
	return protocol.LanguageIdentifier(cfg.LanguageID(filetype))
}

// documentText reads --text-file, or --file when no text file is given
func documentText(opts *options) (string, error) {
	path := opts.textFile
	if path == "" {
		path = opts.file
	}
	if path == "" {
		return "", nil
	}
	path, err := common.ExpandPath(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document text: %w", err)
	}
	return string(data), nil
}

func processID(opts *options) int {
	if opts.pid != 0 {
		return opts.pid
	}
	return os.Getpid()
}
