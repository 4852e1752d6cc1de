package domain

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"go/token"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"synver.dev/pkg/synver/internal/adapter"
	m "synver.dev/pkg/synver/internal/model"
)

const (
	goModFile       = "go.mod"
	versionFile     = "VERSION"
	versionConstant = "Version"
)

// LoadOptions controls which files of an artifact take part in a comparison.
type LoadOptions struct {
	Exclude      []string // regular expressions matched against slash-separated relative paths
	IncludeTests bool
}

// Loader turns an artifact path into its extracted members and digest.
type Loader interface {
	Load(ctx context.Context, root m.Path, opts LoadOptions) (m.Artifact, error)
}

type loader struct {
	fs     adapter.SourceFSAdapter
	goFile adapter.GoFileAdapter
}

// NewLoader constructs a Loader backed by the provided adapters.
func NewLoader(fs adapter.SourceFSAdapter, goFile adapter.GoFileAdapter) Loader {
	return &loader{fs: fs, goFile: goFile}
}

// sourceFile is a file selected for the artifact, with its path relative to
// the artifact root.
type sourceFile struct {
	full m.Path
	rel  string
}

func (l *loader) Load(ctx context.Context, root m.Path, opts LoadOptions) (m.Artifact, error) {
	excludes, err := compileExcludes(opts.Exclude)
	if err != nil {
		return m.Artifact{}, err
	}

	info, err := l.fs.FileInfo(ctx, root)
	if err != nil {
		slog.Error("Failed to stat artifact", "root", root, "error", err)
		return m.Artifact{}, fmt.Errorf("artifact %s: %w", root, err)
	}

	dir := root

	var files []sourceFile

	if info.IsDir() {
		files, err = l.collect(ctx, root, excludes)
		if err != nil {
			return m.Artifact{}, err
		}
	} else {
		dir = m.Path(filepath.Dir(string(root)))
		files = []sourceFile{{full: root, rel: filepath.Base(string(root))}}
	}

	digest, err := l.digest(ctx, files, !info.IsDir(), opts.IncludeTests)
	if err != nil {
		return m.Artifact{}, err
	}

	modulePath := l.modulePath(ctx, dir)

	members, declared, err := l.extract(ctx, files, modulePath, opts)
	if err != nil {
		return m.Artifact{}, err
	}

	if declared == "" && info.IsDir() {
		declared = l.versionFile(ctx, dir)
	}

	slog.Debug("loaded artifact", "root", root, "files", len(files), "members", len(members),
		"module", modulePath, "declaredVersion", declared)

	return m.Artifact{
		Root:            root,
		Members:         members,
		Digest:          digest,
		DeclaredVersion: declared,
	}, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

// collect lists every file of the tree, skipping VCS, vendor and testdata
// directories, hidden or underscore-prefixed directories, and excluded paths.
func (l *loader) collect(ctx context.Context, root m.Path, excludes []*regexp.Regexp) ([]sourceFile, error) {
	var files []sourceFile

	err := l.fs.Walk(ctx, root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := l.fs.RelPath(ctx, root, m.Path(p))
		if err != nil {
			return err
		}

		slashRel := filepath.ToSlash(string(rel))

		if info.IsDir() {
			if slashRel != "." && skipDir(info.Name()) {
				return filepath.SkipDir
			}

			return nil
		}

		for _, re := range excludes {
			if re.MatchString(slashRel) {
				return nil
			}
		}

		files = append(files, sourceFile{full: m.Path(p), rel: slashRel})

		return nil
	})
	if err != nil {
		slog.Error("Failed to walk artifact", "root", root, "error", err)
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].rel < files[j].rel
	})

	return files, nil
}

func skipDir(name string) bool {
	switch name {
	case ".git", "vendor", "testdata", "node_modules":
		return true
	}

	return strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

// digest hashes the sorted (path, content hash) list, so renames and
// non-Go files such as embedded resources change it too. Test files count
// only when they are extracted. A single file hashes under ".", leaving its
// name out.
func (l *loader) digest(ctx context.Context, files []sourceFile, single, includeTests bool) (string, error) {
	h := sha256.New()

	for _, file := range files {
		if !includeTests && isTestFile(file.rel) {
			continue
		}

		sum, err := l.fs.HashFile(ctx, file.full)
		if err != nil {
			slog.Error("Failed to hash file", "path", file.full, "error", err)
			return "", fmt.Errorf("hash %s: %w", file.full, err)
		}

		rel := file.rel
		if single {
			rel = "."
		}

		fmt.Fprintf(h, "%s\x00%s\n", rel, sum)
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

func (l *loader) modulePath(ctx context.Context, dir m.Path) string {
	data, err := l.fs.ReadFile(ctx, l.fs.JoinPath(ctx, string(dir), goModFile))
	if err != nil {
		return ""
	}

	return l.goFile.ModulePath(data)
}

func (l *loader) versionFile(ctx context.Context, dir m.Path) string {
	data, err := l.fs.ReadFile(ctx, l.fs.JoinPath(ctx, string(dir), versionFile))
	if err != nil {
		return ""
	}

	return strings.TrimSpace(string(data))
}

// extract parses the Go files and collects their members. It also returns
// the value of a string Version const/var declared in the root package.
func (l *loader) extract(ctx context.Context, files []sourceFile, modulePath string, opts LoadOptions) ([]m.Member, string, error) {
	fileSet := token.NewFileSet()
	members := make([]m.Member, 0)
	declared := ""

	for _, file := range files {
		if !isGoSource(file.rel, opts.IncludeTests) {
			continue
		}

		src, err := l.fs.ReadFile(ctx, file.full)
		if err != nil {
			slog.Error("Failed to read source", "path", file.full, "error", err)
			return nil, "", fmt.Errorf("read %s: %w", file.full, err)
		}

		parsed, err := l.goFile.Parse(fileSet, file.rel, src)
		if err != nil {
			slog.Error("Failed to parse source", "path", file.full, "error", err)
			return nil, "", fmt.Errorf("parse %s: %w", file.full, err)
		}

		relDir := path.Dir(file.rel)
		scope := packageScope(modulePath, relDir, parsed.Name.Name)

		extracted, err := l.goFile.ExtractMembers(fileSet, parsed, scope)
		if err != nil {
			return nil, "", err
		}

		if declared == "" && relDir == "." {
			declared = declaredVersion(extracted)
		}

		members = append(members, extracted...)
	}

	return members, declared, nil
}

func isGoSource(rel string, includeTests bool) bool {
	if path.Ext(rel) != ".go" {
		return false
	}

	return includeTests || !isTestFile(rel)
}

func isTestFile(rel string) bool {
	return strings.HasSuffix(rel, "_test.go")
}

// packageScope derives a location-independent qualifier for a package.
func packageScope(modulePath, relDir, pkgName string) adapter.PackageScope {
	var qualifier string

	switch {
	case modulePath != "":
		qualifier = path.Join(modulePath, relDir)
	case relDir == ".":
		qualifier = pkgName
	default:
		qualifier = relDir
	}

	importable := pkgName != "main"

	for _, segment := range strings.Split(qualifier, "/") {
		if segment == "internal" {
			importable = false
		}
	}

	return adapter.PackageScope{Qualifier: qualifier, Importable: importable}
}

func declaredVersion(members []m.Member) string {
	for _, member := range members {
		if member.Kind != m.KindProperty || member.Name != versionConstant || !member.Getter.Present() {
			continue
		}

		value, err := strconv.Unquote(string(member.Getter.Code()))
		if err != nil {
			continue
		}

		if _, err := m.ParseVersion(value); err == nil {
			return value
		}
	}

	return ""
}

// ErrNoVersion is returned when neither an explicit version nor declared
// version metadata is available.
var ErrNoVersion = errors.New("no version given and none declared by the base artifact")

// ResolveVersion picks the starting version: the explicit override when set,
// otherwise the version declared by the base artifact.
func ResolveVersion(explicit string, base m.Artifact) (m.Version, error) {
	text := strings.TrimSpace(explicit)
	if text == "" {
		text = base.DeclaredVersion
	}

	if text == "" {
		return m.Version{}, ErrNoVersion
	}

	return m.ParseVersion(text)
}
