package runner

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// nixExtension is the file extension discovery looks for when walking
// directories.
const nixExtension = ".nix"

// sniffLimit bounds how much of an extensionless file is read for
// language detection.
const sniffLimit = 16 * 1024

// Discover resolves opts.Paths into a sorted, deduplicated list of Nix
// files. Directories are walked recursively for *.nix files; files
// named explicitly are always considered, with extensionless ones
// accepted only when content detection identifies them as Nix.
func Discover(ctx context.Context, opts Options) ([]string, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, err
	}
	exclude := opts.effectiveConfig().Ignore

	seen := make(map[string]struct{})
	var files []string
	add := func(path string) {
		if _, ok := seen[path]; !ok {
			seen[path] = struct{}{}
			files = append(files, path)
		}
	}

	for _, input := range opts.effectivePaths() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("discovery cancelled: %w", err)
		}

		abs := input
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(workDir, input)
		}
		abs = filepath.Clean(abs)

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if info.IsDir() {
			walked, err := walkDirectory(ctx, abs, workDir, exclude)
			if err != nil {
				return nil, err
			}
			for _, f := range walked {
				add(f)
			}
			continue
		}
		if excluded(abs, workDir, exclude) {
			continue
		}
		if isNixFile(abs) {
			add(abs)
		}
	}

	sort.Strings(files)
	return files, nil
}

func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return wd, nil
	}
	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}
	return abs, nil
}

func walkDirectory(ctx context.Context, root, workDir string, exclude []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil {
			if os.IsPermission(walkErr) {
				return nil
			}
			return walkErr
		}

		if entry.IsDir() {
			// Hidden directories and excluded subtrees are pruned, not
			// descended into.
			if path != root && strings.HasPrefix(entry.Name(), ".") {
				return filepath.SkipDir
			}
			if path != root && excluded(path, workDir, exclude) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), nixExtension) {
			return nil
		}
		if excluded(path, workDir, exclude) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// excluded matches the path's working-directory-relative form against
// the exclude globs. A pattern matches the path itself or any of its
// ancestor directories.
func excluded(path, workDir string, exclude []string) bool {
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	for _, pattern := range exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(rel)); ok {
			return true
		}
		for dir := rel; dir != "." && dir != "/"; dir = filepath.Dir(dir) {
			if ok, _ := filepath.Match(pattern, dir); ok {
				return true
			}
		}
	}
	return false
}

// isNixFile accepts *.nix by extension and sniffs anything else named
// explicitly on the command line.
func isNixFile(path string) bool {
	if strings.EqualFold(filepath.Ext(path), nixExtension) {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)
	n, _ := f.Read(buf)
	return enry.GetLanguage(filepath.Base(path), buf[:n]) == "Nix"
}
